package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/features/personas/controller"
)

// Montado bajo /api/a (staff)
func PersonaAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPersonaController(db)

	personas := router.Group("/personas")
	personas.Post("/", ctrl.CreatePersona)
	personas.Get("/", ctrl.GetPersonas)
	personas.Get("/:id", ctrl.GetPersonaByID)
	personas.Patch("/:id", ctrl.UpdatePersona)
	personas.Delete("/:id", ctrl.DeletePersona)
}
