package model

import "time"

type PersonaModel struct {
	PersonaID       int64      `gorm:"column:persona_id;primaryKey;autoIncrement" json:"-"`
	Nombre          string     `gorm:"column:nombre;type:varchar(100);not null" json:"nombre"`
	Apellido        string     `gorm:"column:apellido;type:varchar(100);not null" json:"apellido"`
	DNI             string     `gorm:"column:dni;type:varchar(15);uniqueIndex;not null" json:"dni"`
	Direccion       *string    `gorm:"column:direccion;type:varchar(255)" json:"direccion,omitempty"`
	Celular         *string    `gorm:"column:celular;type:varchar(30)" json:"celular,omitempty"`
	FechaNacimiento *time.Time `gorm:"column:fecha_nacimiento" json:"fecha_nacimiento,omitempty"`
	Activo          bool       `gorm:"column:activo;not null;default:true" json:"activo"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// Tabla heredada del sistema anterior; el nombre se conserva.
func (PersonaModel) TableName() string {
	return "data_personal"
}
