package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// PedidoFilter is bound from query string of GET /v1/pedidos.
type PedidoFilter struct {
	// Search matches fact_num exactly, or co_cli / cli_des as substring.
	Search string `form:"search"`
	Status string `form:"status"` // P | A | R | F; empty = all
	Page   int    `form:"page,default=1" validate:"min=1"`
}

type PedidoListItem struct {
	FactNum  int             `json:"fact_num"`
	CoCli    string          `json:"co_cli"`
	Cliente  string          `json:"cliente"`
	CoVen    string          `json:"co_ven"`
	Vendedor string          `json:"vendedor"`
	FecEmis  string          `json:"fec_emis"`
	TotNeto  decimal.Decimal `json:"tot_neto"`
	IVA      decimal.Decimal `json:"iva"`
	Status   string          `json:"status"`
	Anulada  bool            `json:"anulada"`
}

type PedidoListResponse struct {
	Data  []PedidoListItem `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RenglonRequest struct {
	CoArt    string          `json:"co_art"    validate:"required"`
	Cantidad decimal.Decimal `json:"cantidad"  validate:"required"`
	// A zero price is a valid giveaway line; only negatives are rejected.
	PrecVta  decimal.Decimal `json:"prec_vta"  validate:"min=0"`
	UniVenta string          `json:"uni_venta" validate:"omitempty,max=3"`
}

type CrearPedidoRequest struct {
	CoCli      string           `json:"co_cli"     validate:"required,max=10"`
	FecEmis    string           `json:"fec_emis"   validate:"required,datetime=2006-01-02"`
	FecVenc    string           `json:"fec_venc"   validate:"required,datetime=2006-01-02"`
	Descrip    string           `json:"descrip"    validate:"omitempty,max=60"`
	Comentario string           `json:"comentario" validate:"omitempty"`
	DirEnt     string           `json:"dir_ent"    validate:"omitempty"`
	Renglones  []RenglonRequest `json:"renglones"  validate:"required,min=1,dive"`
}

type ActualizarPedidoRequest struct {
	Descrip    string           `json:"descrip"    validate:"omitempty,max=60"`
	Comentario string           `json:"comentario" validate:"omitempty"`
	DirEnt     string           `json:"dir_ent"    validate:"omitempty"`
	Renglones  []RenglonRequest `json:"renglones"  validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RenglonResponse struct {
	RengNum   int             `json:"reng_num"`
	CoArt     string          `json:"co_art"`
	Articulo  string          `json:"articulo"`
	Cantidad  decimal.Decimal `json:"cantidad"`
	PrecVta   decimal.Decimal `json:"prec_vta"`
	RengNeto  decimal.Decimal `json:"reng_neto"`
	UniVenta  string          `json:"uni_venta"`
	Promotion bool            `json:"promotion"`
}

type PedidoResponse struct {
	FactNum    int               `json:"fact_num"`
	CoCli      string            `json:"co_cli"`
	Cliente    string            `json:"cliente"`
	CoVen      string            `json:"co_ven"`
	FecEmis    string            `json:"fec_emis"`
	FecVenc    string            `json:"fec_venc"`
	Descrip    string            `json:"descrip"`
	Comentario string            `json:"comentario"`
	DirEnt     string            `json:"dir_ent"`
	Renglones  []RenglonResponse `json:"renglones"`
	TotBruto   decimal.Decimal   `json:"tot_bruto"`
	TotNeto    decimal.Decimal   `json:"tot_neto"`
	IVA        decimal.Decimal   `json:"iva"`
	Total      decimal.Decimal   `json:"total"`
	Status     string            `json:"status"`
	Anulada    bool              `json:"anulada"`
}
