package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/features/academico/cursos/controller"
)

func CursoAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCursoController(db)

	cursos := router.Group("/cursos")
	cursos.Post("/", ctrl.CreateCurso)
	cursos.Patch("/:id", ctrl.UpdateCurso)
	cursos.Delete("/:id", ctrl.DeleteCurso)
}

func CursoUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCursoController(db)

	cursos := router.Group("/cursos")
	cursos.Get("/", ctrl.GetCursos)
	cursos.Get("/:id", ctrl.GetCursoByID)
}
