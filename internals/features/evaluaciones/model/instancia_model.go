package model

import "time"

// El nombre de tabla (con su error de tipeo) se hereda del esquema original.
type InstanciaEvaluativaModel struct {
	InstanciaID int64      `gorm:"column:instancia_id;primaryKey;autoIncrement" json:"-"`
	Nombre      string     `gorm:"column:nombre;type:varchar(100);not null" json:"nombre"`
	Fecha       *time.Time `gorm:"column:fecha" json:"fecha,omitempty"`
	Activo      bool       `gorm:"column:activo;not null;default:true" json:"activo"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (InstanciaEvaluativaModel) TableName() string {
	return "insancia_evaluativa"
}
