package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colegio_backend/internals/constants"
	authMiddleware "colegio_backend/internals/middlewares/auth"

	asignacionRoute "colegio_backend/internals/features/academico/asignaciones/route"
	cursoRoute "colegio_backend/internals/features/academico/cursos/route"
	docenteRoute "colegio_backend/internals/features/academico/docentes/route"
	materiaRoute "colegio_backend/internals/features/academico/materias/route"
	asistenciaRoute "colegio_backend/internals/features/asistencias/route"
	alumnoRoute "colegio_backend/internals/features/estudiantes/alumnos/route"
	tutorRoute "colegio_backend/internals/features/estudiantes/tutores/route"
	evaluacionRoute "colegio_backend/internals/features/evaluaciones/route"
	notificacionRoute "colegio_backend/internals/features/notificaciones/route"
	personaRoute "colegio_backend/internals/features/personas/route"
	authRoute "colegio_backend/internals/features/usuarios/auth/route"
	userRoute "colegio_backend/internals/features/usuarios/user/route"
)

// SetupRoutes monta todo el árbol de rutas:
//
//	/api/auth  → público (login, refresh)
//	/api/u     → cualquier usuario autenticado
//	/api/a     → staff (admin, directivo, preceptor)
//	/api/d     → docentes y superiores
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	BaseRoutes(app, db)

	// público
	authRoute.AuthRoutes(api, db)

	// autenticado
	user := api.Group("/u", authMiddleware.AuthMiddleware())
	authRoute.AuthUserRoutes(user, db)
	cursoRoute.CursoUserRoutes(user, db)
	materiaRoute.MateriaUserRoutes(user, db)
	docenteRoute.DocenteUserRoutes(user, db)
	asignacionRoute.AsignacionUserRoutes(user, db)
	alumnoRoute.AlumnoUserRoutes(user, db)
	asistenciaRoute.AsistenciaUserRoutes(user, db)
	evaluacionRoute.EvaluacionUserRoutes(user, db)
	notificacionRoute.NotificacionUserRoutes(user, db)

	// staff
	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("administración"), constants.StaffRoles...))
	personaRoute.PersonaAdminRoutes(admin, db)
	cursoRoute.CursoAdminRoutes(admin, db)
	materiaRoute.MateriaAdminRoutes(admin, db)
	docenteRoute.DocenteAdminRoutes(admin, db)
	asignacionRoute.AsignacionAdminRoutes(admin, db)
	alumnoRoute.AlumnoAdminRoutes(admin, db)
	tutorRoute.TutorAdminRoutes(admin, db)
	asistenciaRoute.AsistenciaAdminRoutes(admin, db)
	evaluacionRoute.EvaluacionAdminRoutes(admin, db)
	notificacionRoute.NotificacionAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)

	// docentes (carga de notas)
	docente := api.Group("/d",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorDocente("carga de notas"), constants.DocenteAndAbove...))
	evaluacionRoute.EvaluacionDocenteRoutes(docente, db)
}
