package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/features/usuarios/auth/controller"
	"colegio_backend/internals/middlewares"
)

// Rutas públicas (con rate limit propio en login)
func AuthRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := router.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-dni", middlewares.LoginRateLimiter(), ctrl.LoginDNI)
	auth.Post("/refresh", ctrl.Refresh)
	auth.Post("/logout", ctrl.Logout)
}

// Requiere sesión
func AuthUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)
	router.Get("/me", ctrl.Me)
}
