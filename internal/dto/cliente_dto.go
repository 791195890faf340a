package dto

// ─── Filter / List ──────────────────────────────────────────────────────────

// ClienteFilter is bound from query string of GET /v1/clientes.
type ClienteFilter struct {
	// Tab selects the confirmed (processed) or pending (temp) listing.
	Tab    string `form:"tab,default=processed" validate:"oneof=processed temp"`
	Search string `form:"search"`
	Page   int    `form:"page,default=1" validate:"min=1"`
}

type ClienteListResponse struct {
	Data  []ClienteResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarClienteRequest struct {
	Rif       string `json:"rif"       validate:"required,max=15"`
	CliDes    string `json:"cli_des"   validate:"required,min=3,max=60"`
	Direc1    string `json:"direc1"    validate:"omitempty"`
	Telefonos string `json:"telefonos" validate:"omitempty,max=30"`
	Email     string `json:"email"     validate:"omitempty,email"`
	Respons   string `json:"respons"   validate:"omitempty,max=40"`
}

type ActualizarClienteRequest struct {
	CliDes    string `json:"cli_des"   validate:"omitempty,min=3,max=60"`
	Direc1    string `json:"direc1"    validate:"omitempty"`
	Telefonos string `json:"telefonos" validate:"omitempty,max=30"`
	Email     string `json:"email"     validate:"omitempty,email"`
	Respons   string `json:"respons"   validate:"omitempty,max=40"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	CoCli     string `json:"co_cli"`
	Rif       string `json:"rif"`
	CliDes    string `json:"cli_des"`
	Direc1    string `json:"direc1"`
	Telefonos string `json:"telefonos"`
	Email     string `json:"email"`
	Respons   string `json:"respons"`
	CoVen     string `json:"co_ven"`
	// Pendiente marks rows still in clientes_temp (no co_cli assigned yet).
	Pendiente bool `json:"pendiente"`
	Inactivo  bool `json:"inactivo"`
}

type MediaResponse struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}
