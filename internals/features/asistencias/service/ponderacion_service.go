package service

import (
	"time"

	"gorm.io/gorm"

	"colegio_backend/internals/constants"
	"colegio_backend/internals/features/asistencias/model"
	helper "colegio_backend/internals/helpers"
)

// Resumen ponderado de inasistencias de un alumno.
type ResumenAsistencias struct {
	TotalPonderado            float64        `json:"total_ponderado"`
	TotalPonderadoJustificado float64        `json:"total_ponderado_justificado"`
	Conteos                   map[string]int `json:"conteos"`
}

// PonderarEventos reduce una lista de eventos a totales ponderados usando la
// tabla fija de pesos (Retiro 0.5, Inasistencia 1, Tardanza 0.33) más los
// conteos crudos por tipo. El subtotal justificado usa los mismos pesos sobre
// el subconjunto con justificación "Justificado".
func PonderarEventos(eventos []model.AsistenciaModel) ResumenAsistencias {
	resumen := ResumenAsistencias{Conteos: map[string]int{}}
	for i := range eventos {
		e := &eventos[i]
		peso := constants.PesoEvento[e.Evento]
		resumen.TotalPonderado += peso
		if e.Justificacion != nil && *e.Justificacion == constants.JustificacionJustificado {
			resumen.TotalPonderadoJustificado += peso
		}
		if e.Evento != constants.EventoAsistencia {
			resumen.Conteos[e.Evento]++
		}
	}
	return resumen
}

// ResumenAnual recalcula el resumen del alumno para el año calendario en curso
// (1 de enero → ahora). Sin arrastre entre años; re-escaneo completo por pedido.
func ResumenAnual(db *gorm.DB, alumnoID int64, ahora time.Time) (ResumenAsistencias, error) {
	desde := helper.InicioDeAnio(ahora)

	var eventos []model.AsistenciaModel
	if err := db.
		Where("alumno_id = ? AND fecha >= ? AND fecha <= ?", alumnoID, desde, ahora).
		Find(&eventos).Error; err != nil {
		return ResumenAsistencias{}, err
	}
	return PonderarEventos(eventos), nil
}
