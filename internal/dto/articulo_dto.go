package dto

import "github.com/shopspring/decimal"

// ArticuloFilter is bound from query string of GET /v1/articulos.
type ArticuloFilter struct {
	Search string `form:"search"`
	CoLin  string `form:"co_lin"`
	CoCat  string `form:"co_cat"`
	Page   int    `form:"page,default=1" validate:"min=1"`
}

type ArticuloResponse struct {
	CoArt    string          `json:"co_art"`
	ArtDes   string          `json:"art_des"`
	CoLin    string          `json:"co_lin"`
	Linea    string          `json:"linea"`
	CoCat    string          `json:"co_cat"`
	StockAct decimal.Decimal `json:"stock_act"`
	PrecVta1 decimal.Decimal `json:"prec_vta1"`
	UniVenta string          `json:"uni_venta"`
}

type ArticuloListResponse struct {
	Data  []ArticuloResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// AutocompleteItem is the compact shape for the order form's typeaheads.
type AutocompleteItem struct {
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
}

type CategoriaResponse struct {
	CoCat  string `json:"co_cat"`
	CatDes string `json:"cat_des"`
}

type LineaResponse struct {
	CoLin  string `json:"co_lin"`
	LinDes string `json:"lin_des"`
}

type SublineaResponse struct {
	CoSubl  string `json:"co_subl"`
	SublDes string `json:"subl_des"`
}
