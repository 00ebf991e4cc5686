package dto

import (
	helper "colegio_backend/internals/helpers"

	"colegio_backend/internals/features/personas/model"
)

// ================== REQUEST ==================
type PersonaRequest struct {
	Nombre          string  `json:"nombre" validate:"required,max=100"`
	Apellido        string  `json:"apellido" validate:"required,max=100"`
	DNI             string  `json:"dni" validate:"required,numeric,max=15"`
	Direccion       *string `json:"direccion" validate:"omitempty,max=255"`
	Celular         *string `json:"celular" validate:"omitempty,max=30"`
	FechaNacimiento *string `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
}

type UpdatePersonaRequest struct {
	Nombre          *string `json:"nombre" validate:"omitempty,max=100"`
	Apellido        *string `json:"apellido" validate:"omitempty,max=100"`
	DNI             *string `json:"dni" validate:"omitempty,numeric,max=15"`
	Direccion       *string `json:"direccion" validate:"omitempty,max=255"`
	Celular         *string `json:"celular" validate:"omitempty,max=30"`
	FechaNacimiento *string `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	Activo          *bool   `json:"activo"`
}

// ================== RESPONSE ==================
type PersonaResponse struct {
	PersonaID       string  `json:"persona_id"`
	Nombre          string  `json:"nombre"`
	Apellido        string  `json:"apellido"`
	DNI             string  `json:"dni"`
	Direccion       *string `json:"direccion,omitempty"`
	Celular         *string `json:"celular,omitempty"`
	FechaNacimiento *string `json:"fecha_nacimiento,omitempty"`
	Activo          bool    `json:"activo"`
}

// ================ CONVERSION =================
func (r *PersonaRequest) ToModel() (*model.PersonaModel, error) {
	m := &model.PersonaModel{
		Nombre:    r.Nombre,
		Apellido:  r.Apellido,
		DNI:       r.DNI,
		Direccion: r.Direccion,
		Celular:   r.Celular,
		Activo:    true,
	}
	if r.FechaNacimiento != nil {
		t, err := helper.ParseFecha(*r.FechaNacimiento)
		if err != nil {
			return nil, err
		}
		m.FechaNacimiento = &t
	}
	return m, nil
}

func (r *UpdatePersonaRequest) ApplyTo(m *model.PersonaModel) error {
	if r.Nombre != nil {
		m.Nombre = *r.Nombre
	}
	if r.Apellido != nil {
		m.Apellido = *r.Apellido
	}
	if r.DNI != nil {
		m.DNI = *r.DNI
	}
	if r.Direccion != nil {
		m.Direccion = r.Direccion
	}
	if r.Celular != nil {
		m.Celular = r.Celular
	}
	if r.FechaNacimiento != nil {
		t, err := helper.ParseFecha(*r.FechaNacimiento)
		if err != nil {
			return err
		}
		m.FechaNacimiento = &t
	}
	if r.Activo != nil {
		m.Activo = *r.Activo
	}
	return nil
}

func ToPersonaResponse(m *model.PersonaModel) *PersonaResponse {
	if m == nil {
		return nil
	}
	resp := &PersonaResponse{
		PersonaID: helper.FormatID(m.PersonaID),
		Nombre:    m.Nombre,
		Apellido:  m.Apellido,
		DNI:       m.DNI,
		Direccion: m.Direccion,
		Celular:   m.Celular,
		Activo:    m.Activo,
	}
	if m.FechaNacimiento != nil {
		s := helper.FormatFecha(*m.FechaNacimiento)
		resp.FechaNacimiento = &s
	}
	return resp
}

func ToPersonaResponseList(models []model.PersonaModel) []PersonaResponse {
	result := make([]PersonaResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToPersonaResponse(&models[i]))
	}
	return result
}
