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

	"colegio_backend/internals/features/academico/materias/model"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.MateriaModel{}))

	app := fiber.New()
	ctrl := NewMateriaController(db)
	app.Post("/materias", ctrl.CreateMateria)
	app.Get("/materias", ctrl.GetMaterias)
	app.Put("/materias/:id", ctrl.UpdateMateria)
	app.Delete("/materias/:id", ctrl.DeleteMateria)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestBajaYReactivacionDeMateria(t *testing.T) {
	app, db := setupApp(t)

	resp := doJSON(t, app, "POST", "/materias", map[string]interface{}{"nombre": "Historia"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var materia model.MateriaModel
	require.NoError(t, db.First(&materia, "nombre = ?", "Historia").Error)
	id := materia.MateriaID

	// baja lógica: la fila queda, el listado por defecto la oculta
	resp = doJSON(t, app, "DELETE", fmt.Sprintf("/materias/%d", id), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&materia, "materia_id = ?", id).Error)
	assert.False(t, materia.Activo)

	resp = doJSON(t, app, "GET", "/materias", nil)
	var lista struct {
		Data []model.MateriaModel `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&lista))
	assert.Empty(t, lista.Data)

	resp = doJSON(t, app, "GET", "/materias?incluir_inactivas=true", nil)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&lista))
	assert.Len(t, lista.Data, 1)

	// reactivación
	activo := true
	resp = doJSON(t, app, "PUT", fmt.Sprintf("/materias/%d", id), map[string]interface{}{"activo": activo})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&materia, "materia_id = ?", id).Error)
	assert.True(t, materia.Activo)
}

func TestMateriaDuplicada(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, "POST", "/materias", map[string]interface{}{"nombre": "Plástica"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/materias", map[string]interface{}{"nombre": "Plástica"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}
