package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/features/estudiantes/tutores/controller"
)

func TutorAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTutorController(db)

	tutores := router.Group("/tutores")
	tutores.Post("/", ctrl.CreateTutor)
	tutores.Get("/", ctrl.GetTutores)
	tutores.Get("/:id/alumnos", ctrl.GetAlumnosDelTutor)
	tutores.Patch("/:id", ctrl.UpdateTutor)
}
