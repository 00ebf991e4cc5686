package model

import (
	"time"

	personaModel "colegio_backend/internals/features/personas/model"
)

type UserModel struct {
	UserID    int64     `gorm:"column:user_id;primaryKey;autoIncrement" json:"-"`
	Username  string    `gorm:"column:username;type:varchar(50);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"column:password;type:varchar(100);not null" json:"-"`
	PersonaID *int64    `gorm:"column:persona_id;uniqueIndex" json:"-"`
	Activo    bool      `gorm:"column:activo;not null;default:true" json:"activo"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Persona *personaModel.PersonaModel `gorm:"foreignKey:PersonaID;references:PersonaID" json:"persona,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
