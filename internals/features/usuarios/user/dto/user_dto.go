package dto

import (
	"colegio_backend/internals/features/usuarios/user/model"
	helper "colegio_backend/internals/helpers"
)

// ================== REQUEST ==================
type CreateUserRequest struct {
	Username  string  `json:"username" validate:"required,min=3,max=50"`
	Password  string  `json:"password" validate:"required,min=6,max=72"`
	PersonaID *string `json:"persona_id" validate:"omitempty,numeric"`
	Roles     []AsignarRolRequest `json:"roles" validate:"omitempty,dive"`
}

type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Activo   *bool   `json:"activo"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// CursoID solo tiene sentido para el rol preceptor (curso a cargo).
type AsignarRolRequest struct {
	Rol     string  `json:"rol" validate:"required,oneof=admin directivo preceptor docente tutor"`
	CursoID *string `json:"curso_id" validate:"omitempty,numeric"`
}

// ================== RESPONSE ==================
type RolAsignadoResponse struct {
	Rol     string  `json:"rol"`
	CursoID *string `json:"curso_id,omitempty"`
}

type UserResponse struct {
	UserID    string                `json:"user_id"`
	Username  string                `json:"username"`
	PersonaID *string               `json:"persona_id,omitempty"`
	Activo    bool                  `json:"activo"`
	Roles     []RolAsignadoResponse `json:"roles"`
}

// ================ CONVERSION =================
func ToUserResponse(m *model.UserModel, vinculos []model.RolUsuarioModel) *UserResponse {
	if m == nil {
		return nil
	}
	roles := make([]RolAsignadoResponse, 0, len(vinculos))
	for _, v := range vinculos {
		if v.Rol == nil {
			continue
		}
		roles = append(roles, RolAsignadoResponse{
			Rol:     v.Rol.Nombre,
			CursoID: helper.FormatIDPtr(v.CursoID),
		})
	}
	return &UserResponse{
		UserID:    helper.FormatID(m.UserID),
		Username:  m.Username,
		PersonaID: helper.FormatIDPtr(m.PersonaID),
		Activo:    m.Activo,
		Roles:     roles,
	}
}
