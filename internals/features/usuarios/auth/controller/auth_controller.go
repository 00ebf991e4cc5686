package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/features/usuarios/auth/dto"
	"colegio_backend/internals/features/usuarios/auth/service"
	helper "colegio_backend/internals/helpers"
)

type AuthController struct {
	Service *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{Service: service.NewAuthService(db)}
}

var validate = validator.New()

func loginError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrCredencialesInvalidas):
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuario o contraseña incorrectos")
	case errors.Is(err, service.ErrUsuarioInactivo):
		return helper.JsonError(c, fiber.StatusForbidden, "El usuario está inactivo")
	case errors.Is(err, service.ErrRefreshInvalido):
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesión inválida o expirada")
	default:
		log.Printf("[ERROR] auth: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error de autenticación")
	}
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, pair, roles, err := ctrl.Service.Login(req.Username, req.Password, c.Get("User-Agent"), c.IP())
	if err != nil {
		return loginError(c, err)
	}
	return helper.JsonOK(c, "Sesión iniciada", dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		UserID:       helper.FormatID(user.UserID),
		Username:     user.Username,
		Roles:        roles,
	})
}

// 🟢 POST /api/auth/login-dni — acceso de tutores por documento
func (ctrl *AuthController) LoginDNI(c *fiber.Ctx) error {
	var req dto.LoginDNIRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, pair, roles, err := ctrl.Service.LoginDNI(req.DNI, req.Password, c.Get("User-Agent"), c.IP())
	if err != nil {
		return loginError(c, err)
	}
	return helper.JsonOK(c, "Sesión iniciada", dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		UserID:       helper.FormatID(user.UserID),
		Username:     user.Username,
		Roles:        roles,
	})
}

// 🟢 POST /api/auth/refresh — rota el refresh token
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, pair, roles, err := ctrl.Service.Refresh(req.RefreshToken, c.Get("User-Agent"), c.IP())
	if err != nil {
		return loginError(c, err)
	}
	return helper.JsonOK(c, "Sesión renovada", dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		UserID:       helper.FormatID(user.UserID),
		Username:     user.Username,
		Roles:        roles,
	})
}

// 🛑 POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := ctrl.Service.Logout(req.RefreshToken); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo cerrar la sesión")
	}
	return helper.JsonOK(c, "Sesión cerrada", nil)
}

// 🟢 GET /api/u/me — identidad del token vigente
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID := helper.GetUserIDFromLocals(c)
	username, _ := c.Locals(helper.LocUserName).(string)

	cursos := helper.GetCursosACargoFromLocals(c)
	cursosStr := make([]string, 0, len(cursos))
	for _, id := range cursos {
		cursosStr = append(cursosStr, helper.FormatID(id))
	}

	return helper.JsonOK(c, "", dto.MeResponse{
		UserID:       helper.FormatID(userID),
		Username:     username,
		Roles:        helper.GetRolesFromLocals(c),
		CursosACargo: cursosStr,
	})
}
