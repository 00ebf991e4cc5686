package model

import (
	"time"

	personaModel "colegio_backend/internals/features/personas/model"
)

type DocenteModel struct {
	DocenteID int64     `gorm:"column:docente_id;primaryKey;autoIncrement" json:"-"`
	PersonaID int64     `gorm:"column:persona_id;not null;uniqueIndex" json:"-"`
	Activo    bool      `gorm:"column:activo;not null;default:true" json:"activo"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Persona *personaModel.PersonaModel `gorm:"foreignKey:PersonaID;references:PersonaID" json:"persona,omitempty"`
}

func (DocenteModel) TableName() string {
	return "docentes"
}
