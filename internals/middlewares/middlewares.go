package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra los middlewares globales de la app.
func SetupMiddlewares(app *fiber.App, db *gorm.DB) {
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(RecoveryMiddleware())
	app.Use(GlobalRateLimiter())
	_ = db
}
