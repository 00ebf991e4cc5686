package dto

import (
	cursoDTO "colegio_backend/internals/features/academico/cursos/dto"
	docenteDTO "colegio_backend/internals/features/academico/docentes/dto"
	materiaDTO "colegio_backend/internals/features/academico/materias/dto"

	"colegio_backend/internals/features/academico/asignaciones/model"
	helper "colegio_backend/internals/helpers"
)

// Los IDs entran como string (ver helpers/ids.go).
type AsignacionRequest struct {
	DocenteID string `json:"docente_id" validate:"required,numeric"`
	MateriaID string `json:"materia_id" validate:"required,numeric"`
	CursoID   string `json:"curso_id" validate:"required,numeric"`
}

type AsignacionResponse struct {
	AsignacionID string                       `json:"asignacion_id"`
	DocenteID    string                       `json:"docente_id"`
	MateriaID    string                       `json:"materia_id"`
	CursoID      string                       `json:"curso_id"`
	Activo       bool                         `json:"activo"`
	Docente      *docenteDTO.DocenteResponse  `json:"docente,omitempty"`
	Materia      *materiaDTO.MateriaResponse  `json:"materia,omitempty"`
	Curso        *cursoDTO.CursoResponse      `json:"curso,omitempty"`
}

func ToAsignacionResponse(m *model.AsignacionModel) *AsignacionResponse {
	if m == nil {
		return nil
	}
	resp := &AsignacionResponse{
		AsignacionID: helper.FormatID(m.AsignacionID),
		DocenteID:    helper.FormatID(m.DocenteID),
		MateriaID:    helper.FormatID(m.MateriaID),
		CursoID:      helper.FormatID(m.CursoID),
		Activo:       m.Activo,
	}
	if m.Docente != nil {
		resp.Docente = docenteDTO.ToDocenteResponse(m.Docente)
	}
	if m.Materia != nil {
		resp.Materia = materiaDTO.ToMateriaResponse(m.Materia)
	}
	if m.Curso != nil {
		resp.Curso = cursoDTO.ToCursoResponse(m.Curso)
	}
	return resp
}

func ToAsignacionResponseList(models []model.AsignacionModel) []AsignacionResponse {
	result := make([]AsignacionResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToAsignacionResponse(&models[i]))
	}
	return result
}
