package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debit document types in docum_cc. Any other tipo_doc subtracts from the
// client balance.
const (
	TipoDocFactura         = "FACT"
	TipoDocAjustePosManual = "AJPM"
	TipoDocAjustePosAuto   = "AJPA"
	TipoDocNotaDebito      = "N/DB"
)

// MonedaReferencia is the reference currency of docum_cc rows that enter the
// receivable balance. The ERP stores it with a trailing space sometimes, so
// comparisons trim first.
const MonedaReferencia = "US$"

// DocumCC is an accounts-receivable document (docum_cc). saldo and tasa come
// in local currency; the reference-currency amount is round(saldo/tasa, 2),
// rounded per document before any summation.
type DocumCC struct {
	CoCli    string          `gorm:"column:co_cli;type:varchar(10)" json:"co_cli"`
	TipoDoc  string          `gorm:"column:tipo_doc;type:varchar(4)" json:"tipo_doc"`
	NroDoc   int             `gorm:"column:nro_doc;primaryKey" json:"nro_doc"`
	CoVen    string          `gorm:"column:co_ven;type:varchar(6)" json:"co_ven"`
	CoSucu   string          `gorm:"column:co_sucu;type:varchar(6)" json:"co_sucu"`
	FecEmis  time.Time       `gorm:"column:fec_emis" json:"fec_emis"`
	FecVenc  time.Time       `gorm:"column:fec_venc" json:"fec_venc"`
	MontoBru decimal.Decimal `gorm:"column:monto_bru;type:decimal(18,2)" json:"monto_bru"`
	MontoNet decimal.Decimal `gorm:"column:monto_net;type:decimal(18,2)" json:"monto_net"`
	Saldo    decimal.Decimal `gorm:"column:saldo;type:decimal(18,2)" json:"saldo"`
	Tasa     decimal.Decimal `gorm:"column:tasa;type:decimal(18,6)" json:"tasa"`
	Moneda   string          `gorm:"column:moneda;type:varchar(6)" json:"moneda"`
	// Campo3 optionally overrides the delivery date for FACT documents,
	// free text in dd/mm/yyyy.
	Campo3  string `gorm:"column:campo3;type:varchar(20)" json:"campo3"`
	Campo8  string `gorm:"column:campo8;type:varchar(20)" json:"campo8"`
	Anulado bool   `gorm:"column:anulado" json:"anulado"`

	Cliente *Cliente `gorm:"foreignKey:CoCli;references:CoCli" json:"cliente,omitempty"`
}

func (DocumCC) TableName() string { return "docum_cc" }

// EsDebito reports whether the document adds to the client balance.
func (d DocumCC) EsDebito() bool {
	switch d.TipoDoc {
	case TipoDocFactura, TipoDocAjustePosManual, TipoDocAjustePosAuto, TipoDocNotaDebito:
		return true
	default:
		return false
	}
}

// Factura is an issued invoice row (factura). Used by the dashboard for open
// invoice counts; invoicing itself happens in the ERP.
type Factura struct {
	FactNum  int             `gorm:"column:fact_num;primaryKey" json:"fact_num"`
	CoCli    string          `gorm:"column:co_cli;type:varchar(10)" json:"co_cli"`
	CoVen    string          `gorm:"column:co_ven;type:varchar(6)" json:"co_ven"`
	CoSucu   string          `gorm:"column:co_sucu;type:varchar(6)" json:"co_sucu"`
	FecEmis  time.Time       `gorm:"column:fec_emis" json:"fec_emis"`
	FecVenc  time.Time       `gorm:"column:fec_venc" json:"fec_venc"`
	TotBruto decimal.Decimal `gorm:"column:tot_bruto;type:decimal(18,2)" json:"tot_bruto"`
	TotNeto  decimal.Decimal `gorm:"column:tot_neto;type:decimal(18,2)" json:"tot_neto"`
	Saldo    decimal.Decimal `gorm:"column:saldo;type:decimal(18,2)" json:"saldo"`
	Tasa     decimal.Decimal `gorm:"column:tasa;type:decimal(18,6)" json:"tasa"`
	Campo8   string          `gorm:"column:campo8;type:varchar(20)" json:"campo8"`
	Anulada  bool            `gorm:"column:anulada" json:"anulada"`
}

func (Factura) TableName() string { return "factura" }
