package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/features/academico/asignaciones/controller"
)

func AsignacionAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAsignacionController(db)

	asignaciones := router.Group("/asignaciones")
	asignaciones.Post("/", ctrl.CreateAsignacion)
	asignaciones.Patch("/:id", ctrl.UpdateAsignacion)
	asignaciones.Delete("/:id", ctrl.DeleteAsignacion)
}

func AsignacionUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAsignacionController(db)

	router.Get("/asignaciones", ctrl.GetAsignaciones)
}
