package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	cursoModel "colegio_backend/internals/features/academico/cursos/model"
	alumnoModel "colegio_backend/internals/features/estudiantes/alumnos/model"
	personaModel "colegio_backend/internals/features/personas/model"

	"colegio_backend/internals/constants"
	"colegio_backend/internals/features/asistencias/model"
	helper "colegio_backend/internals/helpers"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&personaModel.PersonaModel{},
		&cursoModel.CursoModel{},
		&alumnoModel.AlumnoModel{},
		&model.AsistenciaModel{},
	))

	app := fiber.New()
	ctrl := NewAsistenciaController(db)
	app.Post("/asistencias/curso", ctrl.TomarAsistenciaCurso)
	app.Patch("/asistencias", ctrl.EditarAsistencia)
	app.Get("/alumnos/:id/resumen-asistencias", ctrl.GetResumenAsistencias)
	return app, db
}

// curso con n alumnos activos; devuelve los IDs de alumno
func seedCurso(t *testing.T, db *gorm.DB, n int) (int64, []int64) {
	t.Helper()
	curso := cursoModel.CursoModel{Anio: 3, Division: "B", Activo: true}
	require.NoError(t, db.Create(&curso).Error)

	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		persona := personaModel.PersonaModel{
			Nombre:   fmt.Sprintf("Alumno%d", i),
			Apellido: "Prueba",
			DNI:      fmt.Sprintf("4000000%d", i),
			Activo:   true,
		}
		require.NoError(t, db.Create(&persona).Error)
		alumno := alumnoModel.AlumnoModel{
			Legajo:    fmt.Sprintf("L-%03d", i),
			Estado:    "Regular",
			Activo:    true,
			CursoID:   &curso.CursoID,
			PersonaID: persona.PersonaID,
		}
		require.NoError(t, db.Create(&alumno).Error)
		ids = append(ids, alumno.AlumnoID)
	}
	return curso.CursoID, ids
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func registro(alumnoID int64, evento string) map[string]interface{} {
	return map[string]interface{}{
		"alumno_id": helper.FormatID(alumnoID),
		"evento":    evento,
	}
}

func TestTomarAsistenciaCerradaRechazaLote(t *testing.T) {
	app, db := setupApp(t)
	cursoID, alumnos := seedCurso(t, db, 4)
	a, b, c, d := alumnos[0], alumnos[1], alumnos[2], alumnos[3]

	// primera toma: A, B y C
	resp := doJSON(t, app, "POST", "/asistencias/curso", map[string]interface{}{
		"curso_id": helper.FormatID(cursoID),
		"fecha":    "2026-03-02",
		"registros": []map[string]interface{}{
			registro(a, constants.EventoAsistencia),
			registro(b, constants.EventoAsistencia),
			registro(c, constants.EventoInasistencia),
		},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// segunda toma del mismo día agregando a D: 409 y cero escrituras
	resp = doJSON(t, app, "POST", "/asistencias/curso", map[string]interface{}{
		"curso_id": helper.FormatID(cursoID),
		"fecha":    "2026-03-02",
		"registros": []map[string]interface{}{
			registro(a, constants.EventoTardanza),
			registro(d, constants.EventoAsistencia),
		},
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var total int64
	require.NoError(t, db.Model(&model.AsistenciaModel{}).Count(&total).Error)
	assert.EqualValues(t, 3, total)

	// el lote rechazado no tocó el registro de A
	var fila model.AsistenciaModel
	require.NoError(t, db.First(&fila, "alumno_id = ?", a).Error)
	assert.Equal(t, constants.EventoAsistencia, fila.Evento)

	var deD int64
	require.NoError(t, db.Model(&model.AsistenciaModel{}).Where("alumno_id = ?", d).Count(&deD).Error)
	assert.Zero(t, deD)
}

func TestTomarAsistenciaRepetidaActualizaExistentes(t *testing.T) {
	app, db := setupApp(t)
	cursoID, alumnos := seedCurso(t, db, 2)
	a, b := alumnos[0], alumnos[1]

	resp := doJSON(t, app, "POST", "/asistencias/curso", map[string]interface{}{
		"curso_id": helper.FormatID(cursoID),
		"fecha":    "2026-03-02",
		"registros": []map[string]interface{}{
			registro(a, constants.EventoAsistencia),
			registro(b, constants.EventoAsistencia),
		},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// re-toma solo con alumnos ya registrados: corrige sin duplicar
	resp = doJSON(t, app, "POST", "/asistencias/curso", map[string]interface{}{
		"curso_id": helper.FormatID(cursoID),
		"fecha":    "2026-03-02",
		"registros": []map[string]interface{}{
			registro(a, constants.EventoTardanza),
		},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var fila model.AsistenciaModel
	require.NoError(t, db.First(&fila, "alumno_id = ?", a).Error)
	assert.Equal(t, constants.EventoTardanza, fila.Evento)

	var total int64
	require.NoError(t, db.Model(&model.AsistenciaModel{}).Count(&total).Error)
	assert.EqualValues(t, 2, total)
}

func TestEditarAsistenciaNoPasaPorElCandado(t *testing.T) {
	app, db := setupApp(t)
	cursoID, alumnos := seedCurso(t, db, 2)
	a, b := alumnos[0], alumnos[1]

	resp := doJSON(t, app, "POST", "/asistencias/curso", map[string]interface{}{
		"curso_id": helper.FormatID(cursoID),
		"fecha":    "2026-03-02",
		"registros": []map[string]interface{}{
			registro(a, constants.EventoAsistencia),
		},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// la edición puntual sí puede sumar a B aunque la toma esté cerrada
	resp = doJSON(t, app, "PATCH", "/asistencias", map[string]interface{}{
		"alumno_id": helper.FormatID(b),
		"fecha":     "2026-03-02",
		"evento":    constants.EventoRetiro,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fila model.AsistenciaModel
	require.NoError(t, db.First(&fila, "alumno_id = ?", b).Error)
	assert.Equal(t, constants.EventoRetiro, fila.Evento)
}

func TestTomarAsistenciaAlumnoDeOtroCurso(t *testing.T) {
	app, db := setupApp(t)
	cursoID, _ := seedCurso(t, db, 1)

	// alumno suelto de otro curso
	persona := personaModel.PersonaModel{Nombre: "Externo", Apellido: "Prueba", DNI: "99999999", Activo: true}
	require.NoError(t, db.Create(&persona).Error)
	otro := alumnoModel.AlumnoModel{Legajo: "L-999", Estado: "Regular", Activo: true, PersonaID: persona.PersonaID}
	require.NoError(t, db.Create(&otro).Error)

	resp := doJSON(t, app, "POST", "/asistencias/curso", map[string]interface{}{
		"curso_id": helper.FormatID(cursoID),
		"fecha":    "2026-03-02",
		"registros": []map[string]interface{}{
			registro(otro.AlumnoID, constants.EventoAsistencia),
		},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
