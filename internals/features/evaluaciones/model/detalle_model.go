package model

import (
	"time"

	alumnoModel "colegio_backend/internals/features/estudiantes/alumnos/model"
	materiaModel "colegio_backend/internals/features/academico/materias/model"
)

// Una nota: alumno × materia × instancia (con docente y curso de contexto).
type DetalleInstanciaModel struct {
	DetalleID   int64     `gorm:"column:detalle_id;primaryKey;autoIncrement" json:"-"`
	AlumnoID    int64     `gorm:"column:alumno_id;not null;uniqueIndex:uq_detalle_alumno_materia_instancia,priority:1" json:"-"`
	MateriaID   int64     `gorm:"column:materia_id;not null;uniqueIndex:uq_detalle_alumno_materia_instancia,priority:2" json:"-"`
	InstanciaID int64     `gorm:"column:instancia_id;not null;uniqueIndex:uq_detalle_alumno_materia_instancia,priority:3" json:"-"`
	DocenteID   int64     `gorm:"column:docente_id;not null" json:"-"`
	CursoID     int64     `gorm:"column:curso_id;not null" json:"-"`
	Nota        int       `gorm:"column:nota;not null" json:"nota"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Alumno    *alumnoModel.AlumnoModel            `gorm:"foreignKey:AlumnoID;references:AlumnoID" json:"alumno,omitempty"`
	Materia   *materiaModel.MateriaModel          `gorm:"foreignKey:MateriaID;references:MateriaID" json:"materia,omitempty"`
	Instancia *InstanciaEvaluativaModel           `gorm:"foreignKey:InstanciaID;references:InstanciaID" json:"instancia,omitempty"`
}

func (DetalleInstanciaModel) TableName() string {
	return "detalle_insancia_evaluativa"
}
