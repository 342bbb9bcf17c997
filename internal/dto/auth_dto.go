package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	// Home es la ruta del dashboard según el rol (tabla rol → ruta).
	Home string         `json:"home"`
	User PerfilResponse `json:"user"`
}

type PerfilResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Nombre   string  `json:"nombre"`
	Email    *string `json:"email,omitempty"`
	Rol      string  `json:"rol"`
	EquipoID *string `json:"equipo_id,omitempty"`
	Activo   bool    `json:"activo"`
}

type CrearPerfilRequest struct {
	Username string  `json:"username" validate:"required,min=3"`
	Password string  `json:"password" validate:"required,min=6"`
	Nombre   string  `json:"nombre"   validate:"required"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Rol      string  `json:"rol"      validate:"required,oneof=administrador capitan director_tecnico supervisor representante arbitro"`
	EquipoID *string `json:"equipo_id" validate:"omitempty,uuid"`
}

type ActualizarPerfilRequest struct {
	Nombre   string  `json:"nombre"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Rol      string  `json:"rol"      validate:"omitempty,oneof=administrador capitan director_tecnico supervisor representante arbitro"`
	EquipoID *string `json:"equipo_id" validate:"omitempty,uuid"`
	Password string  `json:"password" validate:"omitempty,min=6"`
}
