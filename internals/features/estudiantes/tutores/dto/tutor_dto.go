package dto

import (
	personaDTO "colegio_backend/internals/features/personas/dto"

	"colegio_backend/internals/features/estudiantes/tutores/model"
	helper "colegio_backend/internals/helpers"
)

type TutorRequest struct {
	Persona personaDTO.PersonaRequest `json:"persona" validate:"required"`
}

type TutorResponse struct {
	TutorID string                      `json:"tutor_id"`
	Activo  bool                        `json:"activo"`
	Persona *personaDTO.PersonaResponse `json:"persona,omitempty"`
}

func ToTutorResponse(m *model.TutorModel) *TutorResponse {
	if m == nil {
		return nil
	}
	return &TutorResponse{
		TutorID: helper.FormatID(m.TutorID),
		Activo:  m.Activo,
		Persona: personaDTO.ToPersonaResponse(m.Persona),
	}
}

func ToTutorResponseList(models []model.TutorModel) []TutorResponse {
	result := make([]TutorResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToTutorResponse(&models[i]))
	}
	return result
}
