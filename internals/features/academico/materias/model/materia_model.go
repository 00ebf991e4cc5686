package model

import "time"

type MateriaModel struct {
	MateriaID int64     `gorm:"column:materia_id;primaryKey;autoIncrement" json:"-"`
	Nombre    string    `gorm:"column:nombre;type:varchar(100);uniqueIndex;not null" json:"nombre"`
	Activo    bool      `gorm:"column:activo;not null;default:true" json:"activo"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MateriaModel) TableName() string {
	return "materias"
}
