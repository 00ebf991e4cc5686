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
	"colegio_backend/internals/features/asistencias/model"
	helper "colegio_backend/internals/helpers"
)

func ptr(s string) *string { return &s }

func evento(alumnoID int64, fecha, tipo string, justificacion *string) model.AsistenciaModel {
	t, _ := helper.ParseFecha(fecha)
	return model.AsistenciaModel{
		AlumnoID:      alumnoID,
		Fecha:         helper.ToDate(t),
		Evento:        tipo,
		Justificacion: justificacion,
	}
}

func TestPonderarEventos(t *testing.T) {
	eventos := []model.AsistenciaModel{
		evento(1, "2026-03-02", constants.EventoAsistencia, nil),
		evento(1, "2026-03-03", constants.EventoInasistencia, ptr(constants.JustificacionJustificado)),
		evento(1, "2026-03-04", constants.EventoInasistencia, nil),
		evento(1, "2026-03-05", constants.EventoTardanza, nil),
		evento(1, "2026-03-06", constants.EventoRetiro, nil),
	}

	resumen := PonderarEventos(eventos)

	assert.InDelta(t, 2.83, resumen.TotalPonderado, 0.001)
	assert.InDelta(t, 1.0, resumen.TotalPonderadoJustificado, 0.001)
	assert.Equal(t, 2, resumen.Conteos[constants.EventoInasistencia])
	assert.Equal(t, 1, resumen.Conteos[constants.EventoTardanza])
	assert.Equal(t, 1, resumen.Conteos[constants.EventoRetiro])
	// la asistencia no pondera ni se cuenta
	assert.NotContains(t, resumen.Conteos, constants.EventoAsistencia)
}

func TestPonderarEventosVacio(t *testing.T) {
	resumen := PonderarEventos(nil)
	assert.Zero(t, resumen.TotalPonderado)
	assert.Zero(t, resumen.TotalPonderadoJustificado)
	assert.Empty(t, resumen.Conteos)
}

func TestResumenAnualSoloAnioEnCurso(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AsistenciaModel{}))

	// dos del año pasado, dos de este año
	filas := []model.AsistenciaModel{
		evento(7, "2025-11-10", constants.EventoInasistencia, nil),
		evento(7, "2025-12-01", constants.EventoInasistencia, nil),
		evento(7, "2026-03-09", constants.EventoInasistencia, nil),
		evento(7, "2026-03-10", constants.EventoTardanza, nil),
	}
	require.NoError(t, db.Create(&filas).Error)

	ahora := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	resumen, err := ResumenAnual(db, 7, ahora)
	require.NoError(t, err)

	// sin arrastre: las del 2025 no cuentan
	assert.InDelta(t, 1.33, resumen.TotalPonderado, 0.001)
	assert.Equal(t, 1, resumen.Conteos[constants.EventoInasistencia])
	assert.Equal(t, 1, resumen.Conteos[constants.EventoTardanza])
}
