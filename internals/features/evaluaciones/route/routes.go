package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/features/evaluaciones/controller"
)

// Staff: gestión de instancias evaluativas
func EvaluacionAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEvaluacionController(db)

	instancias := router.Group("/instancias-evaluativas")
	instancias.Post("/", ctrl.CreateInstancia)
	instancias.Put("/:id", ctrl.UpdateInstancia)
}

// Docentes (y superiores): carga y planilla de notas
func EvaluacionDocenteRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEvaluacionController(db)

	notas := router.Group("/notas")
	notas.Post("/", ctrl.CargarNotas)
	notas.Get("/", ctrl.GetNotasCursoMateria)
}

// Cualquier usuario autenticado
func EvaluacionUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEvaluacionController(db)

	router.Get("/instancias-evaluativas", ctrl.GetInstancias)
	router.Get("/alumnos/:id/notas", ctrl.GetNotasAlumno)
}
