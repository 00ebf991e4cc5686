package dto

// ================== REQUEST ==================
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// Acceso alternativo para tutores: DNI + contraseña
type LoginDNIRequest struct {
	DNI      string `json:"dni" validate:"required,numeric,min=7,max=9"`
	Password string `json:"password" validate:"required,min=6"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ================== RESPONSE ==================
type LoginResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	UserID       string   `json:"user_id"`
	Username     string   `json:"username"`
	Roles        []string `json:"roles"`
}

type MeResponse struct {
	UserID       string   `json:"user_id"`
	Username     string   `json:"username"`
	Roles        []string `json:"roles"`
	CursosACargo []string `json:"cursos_a_cargo,omitempty"`
}
