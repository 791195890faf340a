package dto

import "github.com/shopspring/decimal"

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ClienteSaldo is one row of the receivable summary: a client with net
// positive balance in reference currency.
type ClienteSaldo struct {
	CoCli        string          `json:"co_cli"`
	Cliente      string          `json:"cliente"`
	Saldo        decimal.Decimal `json:"saldo"`
	SaldoVencido decimal.Decimal `json:"saldo_vencido"`
	Documentos   int             `json:"documentos"`
}

type ResumenCxCResponse struct {
	Data  []ClienteSaldo `json:"data"`
	Total int            `json:"total"`
}

type TotalesCxCResponse struct {
	TotalPorVencer decimal.Decimal `json:"total_por_vencer"`
	TotalVencido   decimal.Decimal `json:"total_vencido"`
	Total          decimal.Decimal `json:"total"`
	Facturas       int             `json:"facturas"`
}

type DocumentoCxC struct {
	TipoDoc string `json:"tipo_doc"`
	NroDoc  int    `json:"nro_doc"`
	CoVen   string `json:"co_ven"`
	FecEmis string `json:"fec_emis"`
	FecVenc string `json:"fec_venc"`
	// FecEntrega is the effective delivery date used for the overdue split.
	FecEntrega string          `json:"fec_entrega"`
	Saldo      decimal.Decimal `json:"saldo"`
	Vencido    bool            `json:"vencido"`
}

type DetalleCxCResponse struct {
	CoCli      string          `json:"co_cli"`
	Cliente    string          `json:"cliente"`
	Saldo      decimal.Decimal `json:"saldo"`
	Documentos []DocumentoCxC  `json:"documentos"`
}
