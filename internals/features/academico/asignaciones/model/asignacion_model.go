package model

import (
	"time"

	cursoModel "colegio_backend/internals/features/academico/cursos/model"
	docenteModel "colegio_backend/internals/features/academico/docentes/model"
	materiaModel "colegio_backend/internals/features/academico/materias/model"
)

// Asignación: un docente dicta una materia en un curso. La terna es única.
type AsignacionModel struct {
	AsignacionID int64     `gorm:"column:asignacion_id;primaryKey;autoIncrement" json:"-"`
	DocenteID    int64     `gorm:"column:docente_id;not null;uniqueIndex:uq_asignacion_triple,priority:1" json:"-"`
	MateriaID    int64     `gorm:"column:materia_id;not null;uniqueIndex:uq_asignacion_triple,priority:2" json:"-"`
	CursoID      int64     `gorm:"column:curso_id;not null;uniqueIndex:uq_asignacion_triple,priority:3" json:"-"`
	Activo       bool      `gorm:"column:activo;not null;default:true" json:"activo"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Docente *docenteModel.DocenteModel `gorm:"foreignKey:DocenteID;references:DocenteID" json:"docente,omitempty"`
	Materia *materiaModel.MateriaModel `gorm:"foreignKey:MateriaID;references:MateriaID" json:"materia,omitempty"`
	Curso   *cursoModel.CursoModel     `gorm:"foreignKey:CursoID;references:CursoID" json:"curso,omitempty"`
}

func (AsignacionModel) TableName() string {
	return "asignaciones"
}
