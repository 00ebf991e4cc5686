package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/features/academico/materias/controller"
)

func MateriaAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMateriaController(db)

	materias := router.Group("/materias")
	materias.Post("/", ctrl.CreateMateria)
	materias.Patch("/:id", ctrl.UpdateMateria)
	materias.Delete("/:id", ctrl.DeleteMateria)
}

func MateriaUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMateriaController(db)

	router.Get("/materias", ctrl.GetMaterias)
}
