package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/features/asistencias/controller"
)

// Staff (admin/directivo/preceptor): toma y edición
func AsistenciaAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAsistenciaController(db)

	asistencias := router.Group("/asistencias")
	asistencias.Post("/curso", ctrl.TomarAsistenciaCurso)
	asistencias.Get("/curso", ctrl.GetAsistenciasCurso)
	asistencias.Patch("/", ctrl.EditarAsistencia)
	asistencias.Patch("/:id/justificacion", ctrl.JustificarAsistencia)
}

// Cualquier usuario autenticado: consulta por alumno
func AsistenciaUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAsistenciaController(db)

	router.Get("/alumnos/:id/asistencias", ctrl.GetAsistenciasAlumno)
	router.Get("/alumnos/:id/resumen-asistencias", ctrl.GetResumenAsistencias)
}
