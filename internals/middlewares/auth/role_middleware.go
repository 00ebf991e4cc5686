package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "colegio_backend/internals/helpers"
)

// RoleMiddlewareWithCustomError valida rol + mensaje de error custom
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roles := helper.GetRolesFromLocals(c)
		if len(roles) == 0 {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: falta información de rol")
		}

		for _, have := range roles {
			for _, allowed := range allowedRoles {
				if strings.EqualFold(have, allowed) {
					return c.Next()
				}
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "No tenés permisos para acceder a este recurso"
		}
		return helper.JsonError(c, fiber.StatusForbidden, customForbiddenMessage)
	}
}

// OnlyRoles: atajo para uso en rutas
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
