package dto

import (
	"time"

	"colegio_backend/internals/features/notificaciones/model"
	helper "colegio_backend/internals/helpers"
)

// ================== REQUEST ==================

// El destino es destinatario_user_id O rol_destino, exactamente uno.
type CreateNotificacionRequest struct {
	Titulo             string   `json:"titulo" validate:"required,min=2,max=255"`
	Mensaje            string   `json:"mensaje" validate:"required"`
	Importancia        string   `json:"importancia" validate:"omitempty,oneof=Baja Media Alta Urgente"`
	DestinatarioUserID *string  `json:"destinatario_user_id" validate:"omitempty,numeric"`
	RolDestino         *string  `json:"rol_destino" validate:"omitempty,oneof=admin directivo preceptor docente tutor"`
	Tags               []string `json:"tags" validate:"omitempty,dive,min=1,max=50"`
	DuracionMinutos    int      `json:"duracion_minutos" validate:"required,min=1"`
}

// ================== RESPONSE ==================
type NotificacionResponse struct {
	NotificacionID     string    `json:"notificacion_id"`
	Titulo             string    `json:"titulo"`
	Mensaje            string    `json:"mensaje"`
	Importancia        string    `json:"importancia"`
	EmisorID           string    `json:"emisor_id"`
	DestinatarioUserID *string   `json:"destinatario_user_id,omitempty"`
	RolDestino         *string   `json:"rol_destino,omitempty"`
	Tags               []string  `json:"tags,omitempty"`
	DuracionMinutos    int       `json:"duracion_minutos"`
	FechaCreacion      time.Time `json:"fecha_creacion"`
	FechaExpiracion    time.Time `json:"fecha_expiracion"`
	Activa             bool      `json:"activa"`
	Leida              bool      `json:"leida"`
}

// ================ CONVERSION =================
func (r *CreateNotificacionRequest) ToModel(emisorID int64, ahora time.Time) (*model.NotificacionModel, error) {
	m := &model.NotificacionModel{
		Titulo:          r.Titulo,
		Mensaje:         r.Mensaje,
		Importancia:     r.Importancia,
		EmisorID:        emisorID,
		RolDestino:      r.RolDestino,
		Tags:            r.Tags,
		DuracionMinutos: r.DuracionMinutos,
		FechaCreacion:   ahora,
		FechaExpiracion: ahora.Add(time.Duration(r.DuracionMinutos) * time.Minute),
		Activa:          true,
	}
	if m.Importancia == "" {
		m.Importancia = "Media"
	}
	if r.DestinatarioUserID != nil {
		id, err := helper.ParseID(*r.DestinatarioUserID)
		if err != nil {
			return nil, err
		}
		m.DestinatarioUserID = &id
	}
	return m, nil
}

func ToNotificacionResponse(m *model.NotificacionModel) *NotificacionResponse {
	if m == nil {
		return nil
	}
	return &NotificacionResponse{
		NotificacionID:     helper.FormatID(m.NotificacionID),
		Titulo:             m.Titulo,
		Mensaje:            m.Mensaje,
		Importancia:        m.Importancia,
		EmisorID:           helper.FormatID(m.EmisorID),
		DestinatarioUserID: helper.FormatIDPtr(m.DestinatarioUserID),
		RolDestino:         m.RolDestino,
		Tags:               m.Tags,
		DuracionMinutos:    m.DuracionMinutos,
		FechaCreacion:      m.FechaCreacion,
		FechaExpiracion:    m.FechaExpiracion,
		Activa:             m.Activa,
		Leida:              m.Leida,
	}
}

func ToNotificacionResponseList(models []model.NotificacionModel) []NotificacionResponse {
	result := make([]NotificacionResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToNotificacionResponse(&models[i]))
	}
	return result
}
