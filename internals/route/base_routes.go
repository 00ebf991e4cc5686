package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "colegio_backend/internals/helpers"
)

var startedAt = time.Now()

// BaseRoutes: health check y prueba del recovery.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "ok"
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}
		return helper.JsonOK(c, "", fiber.Map{
			"status":  "ok",
			"db":      dbStatus,
			"uptime":  time.Since(startedAt).Round(time.Second).String(),
			"version": "1.0.0",
		})
	})

	app.Get("/panic-test", func(c *fiber.Ctx) error {
		panic("prueba del middleware de recovery")
	})
}
