package constants

// Eventos de asistencia (columna asistencia_evento)
const (
	EventoAsistencia   = "Asistencia"
	EventoTardanza     = "Tardanza"
	EventoRetiro       = "Retiro"
	EventoInasistencia = "Inasistencia"
)

// Peso de cada evento en el cómputo de inasistencias.
// Asistencia no suma; Tardanza suma 0.33; Retiro medio día; Inasistencia día completo.
var PesoEvento = map[string]float64{
	EventoAsistencia:   0,
	EventoTardanza:     0.33,
	EventoRetiro:       0.5,
	EventoInasistencia: 1,
}

// Estados de justificación
const (
	JustificacionJustificado   = "Justificado"
	JustificacionInjustificado = "Injustificado"
	JustificacionPendiente     = "Pendiente"
)

// Estados del alumno
const (
	EstadoRegular             = "Regular"
	EstadoBajaVoluntaria      = "Baja voluntaria"
	EstadoBajaPorInasistencia = "Baja por inasistencias"
	EstadoEgresado            = "Egresado"
)

// Importancia de notificaciones
const (
	ImportanciaBaja    = "Baja"
	ImportanciaMedia   = "Media"
	ImportanciaAlta    = "Alta"
	ImportanciaUrgente = "Urgente"
)
