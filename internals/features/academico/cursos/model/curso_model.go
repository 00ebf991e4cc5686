package model

import "time"

type CursoModel struct {
	CursoID   int64     `gorm:"column:curso_id;primaryKey;autoIncrement" json:"-"`
	Anio      int       `gorm:"column:anio;not null;uniqueIndex:uq_curso_anio_division,priority:1" json:"anio"`
	Division  string    `gorm:"column:division;type:varchar(5);not null;uniqueIndex:uq_curso_anio_division,priority:2" json:"division"`
	Activo    bool      `gorm:"column:activo;not null;default:true" json:"activo"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CursoModel) TableName() string {
	return "cursos"
}
