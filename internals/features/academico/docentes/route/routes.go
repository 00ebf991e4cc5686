package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/features/academico/docentes/controller"
)

func DocenteAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDocenteController(db)

	docentes := router.Group("/docentes")
	docentes.Post("/", ctrl.CreateDocente)
	docentes.Get("/:id/carga-horaria", ctrl.GetCargaHoraria)
	docentes.Patch("/:id", ctrl.UpdateDocente)
	docentes.Delete("/:id", ctrl.DeleteDocente)
}

func DocenteUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDocenteController(db)

	docentes := router.Group("/docentes")
	docentes.Get("/", ctrl.GetDocentes)
	docentes.Get("/:id", ctrl.GetDocenteByID)
}
