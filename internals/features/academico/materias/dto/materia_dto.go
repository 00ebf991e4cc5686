package dto

import (
	"colegio_backend/internals/features/academico/materias/model"
	helper "colegio_backend/internals/helpers"
)

type MateriaRequest struct {
	Nombre string `json:"nombre" validate:"required,max=100"`
}

type UpdateMateriaRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,max=100"`
	Activo *bool   `json:"activo"`
}

type MateriaResponse struct {
	MateriaID string `json:"materia_id"`
	Nombre    string `json:"nombre"`
	Activo    bool   `json:"activo"`
}

func (r *MateriaRequest) ToModel() *model.MateriaModel {
	return &model.MateriaModel{Nombre: r.Nombre, Activo: true}
}

func ToMateriaResponse(m *model.MateriaModel) *MateriaResponse {
	if m == nil {
		return nil
	}
	return &MateriaResponse{
		MateriaID: helper.FormatID(m.MateriaID),
		Nombre:    m.Nombre,
		Activo:    m.Activo,
	}
}

func ToMateriaResponseList(models []model.MateriaModel) []MateriaResponse {
	result := make([]MateriaResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToMateriaResponse(&models[i]))
	}
	return result
}
