package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"colegio_backend/internals/features/usuarios/user/dto"
	"colegio_backend/internals/features/usuarios/user/model"
	helper "colegio_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

func esUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}

func (ctrl *UserController) vinculosDe(userID int64) []model.RolUsuarioModel {
	var vinculos []model.RolUsuarioModel
	ctrl.DB.Preload("Rol").Where("user_id = ?", userID).Find(&vinculos)
	return vinculos
}

// 🟢 POST /api/a/usuarios — alta con roles opcionales en la misma llamada
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
	}

	user := model.UserModel{
		Username: req.Username,
		Password: string(hash),
		Activo:   true,
	}
	if req.PersonaID != nil {
		personaID, err := helper.ParseID(*req.PersonaID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "persona_id inválido")
		}
		user.PersonaID = &personaID
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		for _, r := range req.Roles {
			if err := asignarRol(tx, user.UserID, r); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		if esUniqueViolation(txErr) {
			return helper.JsonError(c, fiber.StatusConflict, "El nombre de usuario ya existe")
		}
		log.Printf("[ERROR] crear usuario: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el usuario")
	}

	return helper.JsonCreated(c, "Usuario creado", dto.ToUserResponse(&user, ctrl.vinculosDe(user.UserID)))
}

func asignarRol(tx *gorm.DB, userID int64, r dto.AsignarRolRequest) error {
	var rol model.RolModel
	if err := tx.Where("nombre = ?", r.Rol).First(&rol).Error; err != nil {
		return err
	}
	vinculo := model.RolUsuarioModel{UserID: userID, RolID: rol.RolID}
	if r.CursoID != nil {
		cursoID, err := helper.ParseID(*r.CursoID)
		if err != nil {
			return err
		}
		vinculo.CursoID = &cursoID
	}
	return tx.Create(&vinculo).Error
}

// 🟢 GET /api/a/usuarios?activo=&buscar=
func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserModel{})
	if v := c.Query("activo"); v != "" {
		q = q.Where("activo = ?", v == "true")
	}
	if v := c.Query("buscar"); v != "" {
		q = q.Where("username LIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los usuarios")
	}

	var users []model.UserModel
	if err := q.Order("user_id").Limit(paging.PerPage).Offset(paging.Offset).Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los usuarios")
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, *dto.ToUserResponse(&users[i], ctrl.vinculosDe(users[i].UserID)))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/a/usuarios/:id
func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al buscar el usuario")
	}
	return helper.JsonOK(c, "", dto.ToUserResponse(&user, ctrl.vinculosDe(user.UserID)))
}

// 🟡 PUT /api/a/usuarios/:id
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al buscar el usuario")
	}

	updates := map[string]interface{}{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Activo != nil {
		updates["activo"] = *req.Activo
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
			if esUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusConflict, "El nombre de usuario ya existe")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el usuario")
		}
	}
	return helper.JsonUpdated(c, "Usuario actualizado", dto.ToUserResponse(&user, ctrl.vinculosDe(user.UserID)))
}

// 🟡 PATCH /api/a/usuarios/:id/password
func (ctrl *UserController) ResetPassword(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
	}

	res := ctrl.DB.Model(&model.UserModel{}).Where("user_id = ?", id).Update("password", string(hash))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar la contraseña")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
	}
	return helper.JsonUpdated(c, "Contraseña actualizada", nil)
}

// 🟢 POST /api/a/usuarios/:id/roles
func (ctrl *UserController) AsignarRol(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}

	var req dto.AsignarRolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	if err := asignarRol(ctrl.DB, id, req); err != nil {
		if esUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "El usuario ya tiene ese rol")
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Rol inexistente")
		}
		log.Printf("[ERROR] asignar rol: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo asignar el rol")
	}
	return helper.JsonCreated(c, "Rol asignado", dto.ToUserResponse(&user, ctrl.vinculosDe(id)))
}

// 🛑 DELETE /api/a/usuarios/:id/roles/:rol
func (ctrl *UserController) QuitarRol(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de ID inválido")
	}
	nombreRol := c.Params("rol")

	var rol model.RolModel
	if err := ctrl.DB.Where("nombre = ?", nombreRol).First(&rol).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Rol inexistente")
	}

	res := ctrl.DB.Where("user_id = ? AND rol_id = ?", id, rol.RolID).Delete(&model.RolUsuarioModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo quitar el rol")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "El usuario no tiene ese rol")
	}
	return helper.JsonDeleted(c, "Rol quitado", nil)
}
