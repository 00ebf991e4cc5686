package dto

import (
	personaDTO "colegio_backend/internals/features/personas/dto"

	"colegio_backend/internals/features/academico/docentes/model"
	helper "colegio_backend/internals/helpers"
)

// El alta de docente crea también su registro de datos personales.
type DocenteRequest struct {
	Persona personaDTO.PersonaRequest `json:"persona" validate:"required"`
}

type UpdateDocenteRequest struct {
	Activo  *bool                            `json:"activo"`
	Persona *personaDTO.UpdatePersonaRequest `json:"persona"`
}

type DocenteResponse struct {
	DocenteID string                      `json:"docente_id"`
	Activo    bool                        `json:"activo"`
	Persona   *personaDTO.PersonaResponse `json:"persona,omitempty"`
}

// Carga horaria: cantidad de asignaciones por materia y curso.
type CargaHorariaItem struct {
	MateriaID     string `json:"materia_id"`
	Materia       string `json:"materia"`
	CursoID       string `json:"curso_id"`
	Curso         string `json:"curso"`
	Asignaciones  int64  `json:"asignaciones"`
}

type CargaHorariaResponse struct {
	DocenteID string             `json:"docente_id"`
	Total     int64              `json:"total"`
	Detalle   []CargaHorariaItem `json:"detalle"`
}

func ToDocenteResponse(m *model.DocenteModel) *DocenteResponse {
	if m == nil {
		return nil
	}
	return &DocenteResponse{
		DocenteID: helper.FormatID(m.DocenteID),
		Activo:    m.Activo,
		Persona:   personaDTO.ToPersonaResponse(m.Persona),
	}
}

func ToDocenteResponseList(models []model.DocenteModel) []DocenteResponse {
	result := make([]DocenteResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToDocenteResponse(&models[i]))
	}
	return result
}
