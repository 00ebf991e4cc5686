package model

import (
	"time"

	cursoModel "colegio_backend/internals/features/academico/cursos/model"
	personaModel "colegio_backend/internals/features/personas/model"
)

type AlumnoModel struct {
	AlumnoID  int64     `gorm:"column:alumno_id;primaryKey;autoIncrement" json:"-"`
	Legajo    string    `gorm:"column:legajo;type:varchar(20);uniqueIndex;not null" json:"legajo"`
	Estado    string    `gorm:"column:estado;type:varchar(30);not null;default:'Regular'" json:"estado"`
	Activo    bool      `gorm:"column:activo;not null;default:true" json:"activo"`
	CursoID   *int64    `gorm:"column:curso_id" json:"-"`
	PersonaID int64     `gorm:"column:persona_id;not null;uniqueIndex" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Persona *personaModel.PersonaModel `gorm:"foreignKey:PersonaID;references:PersonaID" json:"persona,omitempty"`
	Curso   *cursoModel.CursoModel     `gorm:"foreignKey:CursoID;references:CursoID" json:"curso,omitempty"`
}

func (AlumnoModel) TableName() string {
	return "alumnos"
}
