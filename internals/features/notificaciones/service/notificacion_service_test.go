package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"colegio_backend/internals/constants"
	"colegio_backend/internals/features/notificaciones/model"
)

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.NotificacionModel{}))
	return db
}

func notifParaRol(rol string, creada time.Time, duracionMin int) model.NotificacionModel {
	return model.NotificacionModel{
		Titulo:          "Aviso",
		Mensaje:         "contenido",
		Importancia:     constants.ImportanciaMedia,
		EmisorID:        1,
		RolDestino:      &rol,
		DuracionMinutos: duracionMin,
		FechaCreacion:   creada,
		FechaExpiracion: creada.Add(time.Duration(duracionMin) * time.Minute),
		Activa:          true,
	}
}

func TestVisiblesPorRolYExpiracion(t *testing.T) {
	db := newDB(t)
	creada := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	n := notifParaRol(constants.RolePreceptor, creada, 60)
	require.NoError(t, db.Create(&n).Error)

	roles := []string{constants.RolePreceptor}

	// a los 59 minutos sigue vigente
	var visibles []model.NotificacionModel
	require.NoError(t, VisiblesPara(db, 5, roles, creada.Add(59*time.Minute)).Find(&visibles).Error)
	assert.Len(t, visibles, 1)

	// a los 61 ya no
	visibles = nil
	require.NoError(t, VisiblesPara(db, 5, roles, creada.Add(61*time.Minute)).Find(&visibles).Error)
	assert.Empty(t, visibles)
}

func TestVisiblesPorDestinatarioDirecto(t *testing.T) {
	db := newDB(t)
	creada := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	destinatario := int64(42)
	n := model.NotificacionModel{
		Titulo:             "Personal",
		Mensaje:            "solo para vos",
		Importancia:        constants.ImportanciaAlta,
		EmisorID:           1,
		DestinatarioUserID: &destinatario,
		DuracionMinutos:    120,
		FechaCreacion:      creada,
		FechaExpiracion:    creada.Add(2 * time.Hour),
		Activa:             true,
	}
	require.NoError(t, db.Create(&n).Error)

	ahora := creada.Add(time.Minute)

	var visibles []model.NotificacionModel
	require.NoError(t, VisiblesPara(db, 42, []string{constants.RoleTutor}, ahora).Find(&visibles).Error)
	assert.Len(t, visibles, 1)

	// otro usuario con el mismo rol no la ve
	visibles = nil
	require.NoError(t, VisiblesPara(db, 43, []string{constants.RoleTutor}, ahora).Find(&visibles).Error)
	assert.Empty(t, visibles)
}

func TestLimpiar(t *testing.T) {
	db := newDB(t)
	ahora := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	expirada := notifParaRol(constants.RoleDocente, ahora.Add(-2*time.Hour), 60)
	vieja := notifParaRol(constants.RoleDocente, ahora.AddDate(0, 0, -40), 90*24*60)
	inactivaVieja := notifParaRol(constants.RoleDocente, ahora.AddDate(0, 0, -40), 90*24*60)
	vigente := notifParaRol(constants.RoleDocente, ahora.Add(-time.Hour), 24*60)

	require.NoError(t, db.Create(&expirada).Error)
	require.NoError(t, db.Create(&vieja).Error)
	require.NoError(t, db.Create(&inactivaVieja).Error)
	require.NoError(t, db.Create(&vigente).Error)
	require.NoError(t, db.Model(&inactivaVieja).Update("activa", false).Error)

	res, err := Limpiar(db, ahora)
	require.NoError(t, err)

	assert.EqualValues(t, 1, res.ExpiradasEliminadas)
	assert.EqualValues(t, 1, res.InactivasEliminadas)
	assert.EqualValues(t, 1, res.Desactivadas)

	// la vieja activa quedó desactivada pero sigue en la tabla
	var quedan []model.NotificacionModel
	require.NoError(t, db.Find(&quedan).Error)
	assert.Len(t, quedan, 2)

	var viejaAhora model.NotificacionModel
	require.NoError(t, db.First(&viejaAhora, "notificacion_id = ?", vieja.NotificacionID).Error)
	assert.False(t, viejaAhora.Activa)

	var vigenteAhora model.NotificacionModel
	require.NoError(t, db.First(&vigenteAhora, "notificacion_id = ?", vigente.NotificacionID).Error)
	assert.True(t, vigenteAhora.Activa)
}
