package dto

import (
	cursoDTO "colegio_backend/internals/features/academico/cursos/dto"
	personaDTO "colegio_backend/internals/features/personas/dto"

	"colegio_backend/internals/features/estudiantes/alumnos/model"
	helper "colegio_backend/internals/helpers"
)

// ================== REQUEST ==================
type AlumnoRequest struct {
	Legajo   string                    `json:"legajo" validate:"required,max=20"`
	CursoID  *string                   `json:"curso_id" validate:"omitempty,numeric"`
	Persona  personaDTO.PersonaRequest `json:"persona" validate:"required"`
	TutorIDs []string                  `json:"tutor_ids" validate:"omitempty,dive,numeric"`
}

type UpdateAlumnoRequest struct {
	Legajo  *string `json:"legajo" validate:"omitempty,max=20"`
	Estado  *string `json:"estado" validate:"omitempty,oneof='Regular' 'Baja voluntaria' 'Baja por inasistencias' 'Egresado'"`
	CursoID *string `json:"curso_id" validate:"omitempty,numeric"`
	Activo  *bool   `json:"activo"`
}

type ReasignarTutoresRequest struct {
	TutorIDs []string `json:"tutor_ids" validate:"required,dive,numeric"`
}

// ================== RESPONSE ==================
type AlumnoResponse struct {
	AlumnoID string                      `json:"alumno_id"`
	Legajo   string                      `json:"legajo"`
	Estado   string                      `json:"estado"`
	Activo   bool                        `json:"activo"`
	CursoID  *string                     `json:"curso_id,omitempty"`
	Persona  *personaDTO.PersonaResponse `json:"persona,omitempty"`
	Curso    *cursoDTO.CursoResponse     `json:"curso,omitempty"`
}

// ================ CONVERSION =================
func ToAlumnoResponse(m *model.AlumnoModel) *AlumnoResponse {
	if m == nil {
		return nil
	}
	resp := &AlumnoResponse{
		AlumnoID: helper.FormatID(m.AlumnoID),
		Legajo:   m.Legajo,
		Estado:   m.Estado,
		Activo:   m.Activo,
		CursoID:  helper.FormatIDPtr(m.CursoID),
		Persona:  personaDTO.ToPersonaResponse(m.Persona),
	}
	if m.Curso != nil {
		resp.Curso = cursoDTO.ToCursoResponse(m.Curso)
	}
	return resp
}

func ToAlumnoResponseList(models []model.AlumnoModel) []AlumnoResponse {
	result := make([]AlumnoResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToAlumnoResponse(&models[i]))
	}
	return result
}
