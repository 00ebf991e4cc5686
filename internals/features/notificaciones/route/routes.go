package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/features/notificaciones/controller"
)

// Staff: emisión y mantenimiento
func NotificacionAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificacionController(db)

	notificaciones := router.Group("/notificaciones")
	notificaciones.Post("/", ctrl.CreateNotificacion)
	notificaciones.Post("/mantenimiento", ctrl.EjecutarMantenimiento)
}

// Cualquier usuario autenticado: bandeja propia
func NotificacionUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificacionController(db)

	notificaciones := router.Group("/notificaciones")
	notificaciones.Get("/", ctrl.GetNotificaciones)
	notificaciones.Patch("/:id/leida", ctrl.MarcarLeida)
}
