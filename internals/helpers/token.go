package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Claves de Locals que llena el middleware de auth
const (
	LocUserID       = "user_id"
	LocUserName     = "user_name"
	LocRoles        = "roles"
	LocCursosACargo = "cursos_a_cargo"
)

// GetRawAccessToken devuelve el access token desde:
// 1) cookie "access_token"
// 2) Authorization header "Bearer <token>"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

// GetUserIDFromLocals: id del usuario autenticado (0 si no hay sesión)
func GetUserIDFromLocals(c *fiber.Ctx) int64 {
	if v, ok := c.Locals(LocUserID).(int64); ok {
		return v
	}
	return 0
}

// GetRolesFromLocals: roles del usuario autenticado
func GetRolesFromLocals(c *fiber.Ctx) []string {
	if v, ok := c.Locals(LocRoles).([]string); ok {
		return v
	}
	return nil
}

func HasRole(c *fiber.Ctx, role string) bool {
	for _, r := range GetRolesFromLocals(c) {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

// GetCursosACargoFromLocals: cursos asignados a un preceptor (vía rol_usuario)
func GetCursosACargoFromLocals(c *fiber.Ctx) []int64 {
	if v, ok := c.Locals(LocCursosACargo).([]int64); ok {
		return v
	}
	return nil
}
