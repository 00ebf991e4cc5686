package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	materiaModel "colegio_backend/internals/features/academico/materias/model"
	alumnoModel "colegio_backend/internals/features/estudiantes/alumnos/model"
	personaModel "colegio_backend/internals/features/personas/model"

	"colegio_backend/internals/features/evaluaciones/model"
	helper "colegio_backend/internals/helpers"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&personaModel.PersonaModel{},
		&materiaModel.MateriaModel{},
		&alumnoModel.AlumnoModel{},
		&model.InstanciaEvaluativaModel{},
		&model.DetalleInstanciaModel{},
	))

	app := fiber.New()
	ctrl := NewEvaluacionController(db)
	app.Post("/notas", ctrl.CargarNotas)
	app.Get("/alumnos/:id/notas", ctrl.GetNotasAlumno)
	return app, db
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

func seedBase(t *testing.T, db *gorm.DB) (alumnoID, materiaID, instanciaID int64) {
	t.Helper()
	persona := personaModel.PersonaModel{Nombre: "Eva", Apellido: "Luación", DNI: "30111222", Activo: true}
	require.NoError(t, db.Create(&persona).Error)
	alumno := alumnoModel.AlumnoModel{Legajo: "L-001", Estado: "Regular", Activo: true, PersonaID: persona.PersonaID}
	require.NoError(t, db.Create(&alumno).Error)
	materia := materiaModel.MateriaModel{Nombre: "Matemática", Activo: true}
	require.NoError(t, db.Create(&materia).Error)
	instancia := model.InstanciaEvaluativaModel{Nombre: "1er Trimestre", Activo: true}
	require.NoError(t, db.Create(&instancia).Error)
	return alumno.AlumnoID, materia.MateriaID, instancia.InstanciaID
}

func lote(alumnoID, materiaID, instanciaID int64, nota *int) map[string]interface{} {
	return map[string]interface{}{
		"materia_id":   helper.FormatID(materiaID),
		"instancia_id": helper.FormatID(instanciaID),
		"curso_id":     "1",
		"docente_id":   "1",
		"notas": []map[string]interface{}{
			{"alumno_id": helper.FormatID(alumnoID), "nota": nota},
		},
	}
}

func TestNotaFueraDeRango(t *testing.T) {
	app, db := setupApp(t)
	alumnoID, materiaID, instanciaID := seedBase(t, db)

	for _, invalida := range []int{0, 11, -3} {
		nota := invalida
		resp := doJSON(t, app, "POST", "/notas", lote(alumnoID, materiaID, instanciaID, &nota))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "nota %d debería rechazarse", invalida)
	}

	var total int64
	require.NoError(t, db.Model(&model.DetalleInstanciaModel{}).Count(&total).Error)
	assert.Zero(t, total)
}

func TestCargaCorreccionYBorradoDeNota(t *testing.T) {
	app, db := setupApp(t)
	alumnoID, materiaID, instanciaID := seedBase(t, db)

	nota := 7
	resp := doJSON(t, app, "POST", "/notas", lote(alumnoID, materiaID, instanciaID, &nota))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// recarga sobre la misma terna: corrige, no duplica
	nota = 9
	resp = doJSON(t, app, "POST", "/notas", lote(alumnoID, materiaID, instanciaID, &nota))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var detalle model.DetalleInstanciaModel
	require.NoError(t, db.First(&detalle, "alumno_id = ?", alumnoID).Error)
	assert.Equal(t, 9, detalle.Nota)

	var total int64
	require.NoError(t, db.Model(&model.DetalleInstanciaModel{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)

	// nota nula: elimina la fila
	resp = doJSON(t, app, "POST", "/notas", lote(alumnoID, materiaID, instanciaID, nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.Model(&model.DetalleInstanciaModel{}).Count(&total).Error)
	assert.Zero(t, total)
}

func TestInstanciaInactivaRechazaCarga(t *testing.T) {
	app, db := setupApp(t)
	alumnoID, materiaID, instanciaID := seedBase(t, db)
	require.NoError(t, db.Model(&model.InstanciaEvaluativaModel{}).
		Where("instancia_id = ?", instanciaID).Update("activo", false).Error)

	nota := 8
	resp := doJSON(t, app, "POST", "/notas", lote(alumnoID, materiaID, instanciaID, &nota))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
