package dto

import (
	"colegio_backend/internals/features/asistencias/model"
	helper "colegio_backend/internals/helpers"
)

// ================== REQUEST ==================

// Un registro dentro de la toma de asistencia de un curso.
type RegistroAsistencia struct {
	AlumnoID            string  `json:"alumno_id" validate:"required,numeric"`
	Evento              string  `json:"evento" validate:"required,oneof=Asistencia Tardanza Retiro Inasistencia"`
	Hora                *string `json:"hora" validate:"omitempty,datetime=15:04"`
	Observaciones       *string `json:"observaciones"`
	Justificacion       *string `json:"justificacion" validate:"omitempty,oneof=Justificado Injustificado Pendiente"`
	MotivoJustificacion *string `json:"motivo_justificacion"`
}

type TomarAsistenciaRequest struct {
	CursoID   string               `json:"curso_id" validate:"required,numeric"`
	Fecha     string               `json:"fecha" validate:"required,datetime=2006-01-02"`
	Registros []RegistroAsistencia `json:"registros" validate:"required,min=1,dive"`
}

// Edición puntual: siempre upsertea la fila (alumno, fecha).
type EditarAsistenciaRequest struct {
	AlumnoID            string  `json:"alumno_id" validate:"required,numeric"`
	Fecha               string  `json:"fecha" validate:"required,datetime=2006-01-02"`
	Evento              string  `json:"evento" validate:"required,oneof=Asistencia Tardanza Retiro Inasistencia"`
	Hora                *string `json:"hora" validate:"omitempty,datetime=15:04"`
	Observaciones       *string `json:"observaciones"`
	Justificacion       *string `json:"justificacion" validate:"omitempty,oneof=Justificado Injustificado Pendiente"`
	MotivoJustificacion *string `json:"motivo_justificacion"`
}

type JustificarAsistenciaRequest struct {
	Justificacion       string  `json:"justificacion" validate:"required,oneof=Justificado Injustificado Pendiente"`
	MotivoJustificacion *string `json:"motivo_justificacion"`
}

// ================== RESPONSE ==================
type AsistenciaResponse struct {
	AsistenciaID        string  `json:"asistencia_id"`
	AlumnoID            string  `json:"alumno_id"`
	Fecha               string  `json:"fecha"`
	Evento              string  `json:"evento"`
	Hora                *string `json:"hora,omitempty"`
	Observaciones       *string `json:"observaciones,omitempty"`
	Justificacion       *string `json:"justificacion,omitempty"`
	MotivoJustificacion *string `json:"motivo_justificacion,omitempty"`
}

// ================ CONVERSION =================
func (r *RegistroAsistencia) ToModel(fecha string) (*model.AsistenciaModel, error) {
	alumnoID, err := helper.ParseID(r.AlumnoID)
	if err != nil {
		return nil, err
	}
	t, err := helper.ParseFecha(fecha)
	if err != nil {
		return nil, err
	}
	return &model.AsistenciaModel{
		AlumnoID:            alumnoID,
		Fecha:               helper.ToDate(t),
		Evento:              r.Evento,
		Hora:                r.Hora,
		Observaciones:       r.Observaciones,
		Justificacion:       r.Justificacion,
		MotivoJustificacion: r.MotivoJustificacion,
	}, nil
}

func ToAsistenciaResponse(m *model.AsistenciaModel) *AsistenciaResponse {
	if m == nil {
		return nil
	}
	return &AsistenciaResponse{
		AsistenciaID:        helper.FormatID(m.AsistenciaID),
		AlumnoID:            helper.FormatID(m.AlumnoID),
		Fecha:               helper.FormatDate(m.Fecha),
		Evento:              m.Evento,
		Hora:                m.Hora,
		Observaciones:       m.Observaciones,
		Justificacion:       m.Justificacion,
		MotivoJustificacion: m.MotivoJustificacion,
	}
}

func ToAsistenciaResponseList(models []model.AsistenciaModel) []AsistenciaResponse {
	result := make([]AsistenciaResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToAsistenciaResponse(&models[i]))
	}
	return result
}
