package model

import (
	"time"

	"gorm.io/datatypes"

	alumnoModel "colegio_backend/internals/features/estudiantes/alumnos/model"
)

// Una fila por (alumno, fecha). La unicidad la garantiza la DB; el alta por
// curso se resuelve con upsert sobre esa clave.
type AsistenciaModel struct {
	AsistenciaID         int64          `gorm:"column:asistencia_id;primaryKey;autoIncrement" json:"-"`
	AlumnoID             int64          `gorm:"column:alumno_id;not null;uniqueIndex:uq_asistencia_alumno_fecha,priority:1" json:"-"`
	Fecha                datatypes.Date `gorm:"column:fecha;not null;uniqueIndex:uq_asistencia_alumno_fecha,priority:2" json:"-"`
	Evento               string         `gorm:"column:evento;type:varchar(20);not null" json:"evento"`
	Hora                 *string        `gorm:"column:hora;type:varchar(8)" json:"hora,omitempty"`
	Observaciones        *string        `gorm:"column:observaciones;type:text" json:"observaciones,omitempty"`
	Justificacion        *string        `gorm:"column:justificacion;type:varchar(20)" json:"justificacion,omitempty"`
	MotivoJustificacion  *string        `gorm:"column:motivo_justificacion;type:text" json:"motivo_justificacion,omitempty"`
	CreatedAt            time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Alumno *alumnoModel.AlumnoModel `gorm:"foreignKey:AlumnoID;references:AlumnoID" json:"alumno,omitempty"`
}

func (AsistenciaModel) TableName() string {
	return "asistencias"
}
