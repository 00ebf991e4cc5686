package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/features/estudiantes/alumnos/controller"
)

func AlumnoAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAlumnoController(db)

	alumnos := router.Group("/alumnos")
	alumnos.Post("/", ctrl.CreateAlumno)
	alumnos.Patch("/:id", ctrl.UpdateAlumno)
	alumnos.Put("/:id/tutores", ctrl.ReasignarTutores)
}

func AlumnoUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAlumnoController(db)

	alumnos := router.Group("/alumnos")
	alumnos.Get("/", ctrl.GetAlumnos)
	alumnos.Get("/:id", ctrl.GetAlumnoByID)
}
