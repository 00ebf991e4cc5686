package dto

import (
	"colegio_backend/internals/features/evaluaciones/model"
	helper "colegio_backend/internals/helpers"
)

// ================== REQUEST ==================
type CreateInstanciaRequest struct {
	Nombre string  `json:"nombre" validate:"required,min=2,max=100"`
	Fecha  *string `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateInstanciaRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=2,max=100"`
	Fecha  *string `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	Activo *bool   `json:"activo"`
}

// Una nota de un alumno. Nota nula borra la fila existente.
type NotaAlumno struct {
	AlumnoID string `json:"alumno_id" validate:"required,numeric"`
	Nota     *int   `json:"nota" validate:"omitempty,min=1,max=10"`
}

type CargarNotasRequest struct {
	MateriaID   string       `json:"materia_id" validate:"required,numeric"`
	InstanciaID string       `json:"instancia_id" validate:"required,numeric"`
	CursoID     string       `json:"curso_id" validate:"required,numeric"`
	DocenteID   string       `json:"docente_id" validate:"required,numeric"`
	Notas       []NotaAlumno `json:"notas" validate:"required,min=1,dive"`
}

// ================== RESPONSE ==================
type InstanciaResponse struct {
	InstanciaID string  `json:"instancia_id"`
	Nombre      string  `json:"nombre"`
	Fecha       *string `json:"fecha,omitempty"`
	Activo      bool    `json:"activo"`
}

type NotaResponse struct {
	DetalleID     string `json:"detalle_id"`
	AlumnoID      string `json:"alumno_id"`
	MateriaID     string `json:"materia_id"`
	InstanciaID   string `json:"instancia_id"`
	CursoID       string `json:"curso_id"`
	Nota          int    `json:"nota"`
	Alumno        string `json:"alumno,omitempty"`
	Materia       string `json:"materia,omitempty"`
	Instancia     string `json:"instancia,omitempty"`
}

// ================ CONVERSION =================
func (r *CreateInstanciaRequest) ToModel() (*model.InstanciaEvaluativaModel, error) {
	m := &model.InstanciaEvaluativaModel{Nombre: r.Nombre, Activo: true}
	if r.Fecha != nil {
		t, err := helper.ParseFecha(*r.Fecha)
		if err != nil {
			return nil, err
		}
		m.Fecha = &t
	}
	return m, nil
}

func ToInstanciaResponse(m *model.InstanciaEvaluativaModel) *InstanciaResponse {
	if m == nil {
		return nil
	}
	resp := &InstanciaResponse{
		InstanciaID: helper.FormatID(m.InstanciaID),
		Nombre:      m.Nombre,
		Activo:      m.Activo,
	}
	if m.Fecha != nil {
		f := m.Fecha.Format(helper.LayoutFecha)
		resp.Fecha = &f
	}
	return resp
}

func ToInstanciaResponseList(models []model.InstanciaEvaluativaModel) []InstanciaResponse {
	result := make([]InstanciaResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToInstanciaResponse(&models[i]))
	}
	return result
}

func ToNotaResponse(m *model.DetalleInstanciaModel) *NotaResponse {
	if m == nil {
		return nil
	}
	resp := &NotaResponse{
		DetalleID:   helper.FormatID(m.DetalleID),
		AlumnoID:    helper.FormatID(m.AlumnoID),
		MateriaID:   helper.FormatID(m.MateriaID),
		InstanciaID: helper.FormatID(m.InstanciaID),
		CursoID:     helper.FormatID(m.CursoID),
		Nota:        m.Nota,
	}
	if m.Alumno != nil && m.Alumno.Persona != nil {
		resp.Alumno = m.Alumno.Persona.Apellido + ", " + m.Alumno.Persona.Nombre
	}
	if m.Materia != nil {
		resp.Materia = m.Materia.Nombre
	}
	if m.Instancia != nil {
		resp.Instancia = m.Instancia.Nombre
	}
	return resp
}

func ToNotaResponseList(models []model.DetalleInstanciaModel) []NotaResponse {
	result := make([]NotaResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToNotaResponse(&models[i]))
	}
	return result
}
