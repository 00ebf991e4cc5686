package dto

import (
	"fmt"

	"colegio_backend/internals/features/academico/cursos/model"
	helper "colegio_backend/internals/helpers"
)

type CursoRequest struct {
	Anio     int    `json:"anio" validate:"required,min=1,max=7"`
	Division string `json:"division" validate:"required,max=5"`
}

type UpdateCursoRequest struct {
	Anio     *int    `json:"anio" validate:"omitempty,min=1,max=7"`
	Division *string `json:"division" validate:"omitempty,max=5"`
	Activo   *bool   `json:"activo"`
}

type CursoResponse struct {
	CursoID  string `json:"curso_id"`
	Anio     int    `json:"anio"`
	Division string `json:"division"`
	Nombre   string `json:"nombre"` // ej. "3° B"
	Activo   bool   `json:"activo"`
}

func (r *CursoRequest) ToModel() *model.CursoModel {
	return &model.CursoModel{
		Anio:     r.Anio,
		Division: r.Division,
		Activo:   true,
	}
}

func ToCursoResponse(m *model.CursoModel) *CursoResponse {
	if m == nil {
		return nil
	}
	return &CursoResponse{
		CursoID:  helper.FormatID(m.CursoID),
		Anio:     m.Anio,
		Division: m.Division,
		Nombre:   fmt.Sprintf("%d° %s", m.Anio, m.Division),
		Activo:   m.Activo,
	}
}

func ToCursoResponseList(models []model.CursoModel) []CursoResponse {
	result := make([]CursoResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToCursoResponse(&models[i]))
	}
	return result
}
