package model

import (
	"time"

	"github.com/lib/pq"
)

// El destino es un usuario puntual O un rol (por nombre), nunca ambos.
type NotificacionModel struct {
	NotificacionID     int64          `gorm:"column:notificacion_id;primaryKey;autoIncrement" json:"-"`
	Titulo             string         `gorm:"column:titulo;type:varchar(255);not null" json:"titulo"`
	Mensaje            string         `gorm:"column:mensaje;type:text;not null" json:"mensaje"`
	Importancia        string         `gorm:"column:importancia;type:varchar(10);not null;default:'Media'" json:"importancia"`
	EmisorID           int64          `gorm:"column:emisor_id;not null;index" json:"-"`
	DestinatarioUserID *int64         `gorm:"column:destinatario_user_id;index" json:"-"`
	RolDestino         *string        `gorm:"column:rol_destino;type:varchar(30);index" json:"rol_destino,omitempty"`
	Tags               pq.StringArray `gorm:"column:tags;type:text[]" json:"tags,omitempty"`
	DuracionMinutos    int            `gorm:"column:duracion_minutos;not null" json:"duracion_minutos"`
	FechaCreacion      time.Time      `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	FechaExpiracion    time.Time      `gorm:"column:fecha_expiracion;not null;index" json:"fecha_expiracion"`
	Activa             bool           `gorm:"column:activa;not null;default:true" json:"activa"`
	Leida              bool           `gorm:"column:leida;not null;default:false" json:"leida"`
}

func (NotificacionModel) TableName() string {
	return "notificaciones"
}
