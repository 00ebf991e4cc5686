package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/constants"
	"colegio_backend/internals/features/usuarios/user/controller"
	authMiddleware "colegio_backend/internals/middlewares/auth"
)

// Solo admin gestiona cuentas y roles
func UserAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	usuarios := router.Group("/usuarios",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("gestión de usuarios"), constants.AdminOnly...))
	usuarios.Post("/", ctrl.CreateUser)
	usuarios.Get("/", ctrl.GetUsers)
	usuarios.Get("/:id", ctrl.GetUserByID)
	usuarios.Put("/:id", ctrl.UpdateUser)
	usuarios.Patch("/:id/password", ctrl.ResetPassword)
	usuarios.Post("/:id/roles", ctrl.AsignarRol)
	usuarios.Delete("/:id/roles/:rol", ctrl.QuitarRol)
}
