package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	CoVen    string `json:"co_ven"   validate:"required,min=1,max=6"`
	Password string `json:"password" validate:"required,min=4"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type CrearUsuarioRequest struct {
	CoVen    string `json:"co_ven"   validate:"required,min=1,max=6"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      *int   `json:"rol"      validate:"required,min=0,max=2"`
}

type ActualizarUsuarioRequest struct {
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Rol      *int   `json:"rol"      validate:"omitempty,min=0,max=2"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID     uint   `json:"id"`
	CoVen  string `json:"co_ven"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    int    `json:"rol"`
	RolDes string `json:"rol_des"`
	Activo bool   `json:"activo"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"` // seconds
	User         UsuarioResponse `json:"user"`
}
