package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order status codes as stored in encabezado.status (char(1)).
const (
	StatusPendiente = "P"
	StatusAprobado  = "A"
	StatusRechazado = "R"
	StatusFacturado = "F"
)

// CategoriaPromocion is the fixed catalog category whose articles are
// flagged as promotional on order lines.
const CategoriaPromocion = "9"

// Pedido is an order header row in the external ERP schema (encabezado).
// The correlative fact_num is assigned manually under a table lock — the
// column is NOT an identity column.
type Pedido struct {
	FactNum    int             `gorm:"column:fact_num;primaryKey" json:"fact_num"`
	CoCli      string          `gorm:"column:co_cli;type:varchar(10)" json:"co_cli"`
	CoVen      string          `gorm:"column:co_ven;type:varchar(6)" json:"co_ven"`
	FecEmis    time.Time       `gorm:"column:fec_emis" json:"fec_emis"`
	FecVenc    time.Time       `gorm:"column:fec_venc" json:"fec_venc"`
	TotBruto   decimal.Decimal `gorm:"column:tot_bruto;type:decimal(18,2)" json:"tot_bruto"`
	TotNeto    decimal.Decimal `gorm:"column:tot_neto;type:decimal(18,2)" json:"tot_neto"`
	IVA        decimal.Decimal `gorm:"column:iva;type:decimal(18,2)" json:"iva"`
	Status     string          `gorm:"column:status;type:char(1)" json:"status"`
	Descrip    string          `gorm:"column:descrip;type:varchar(60)" json:"descrip"`
	Comentario string          `gorm:"column:comentario" json:"comentario"`
	DirEnt     string          `gorm:"column:dir_ent" json:"dir_ent"`
	Anulada    bool            `gorm:"column:anulada" json:"anulada"`

	Renglones []Renglon `gorm:"foreignKey:FactNum;references:FactNum" json:"renglones,omitempty"`
	Cliente   *Cliente  `gorm:"foreignKey:CoCli;references:CoCli" json:"cliente,omitempty"`
}

func (Pedido) TableName() string { return "encabezado" }

// Renglon is an order line (renglones). Composite key (fact_num, reng_num);
// reng_num is contiguous starting at 1 within an order.
type Renglon struct {
	FactNum  int             `gorm:"column:fact_num;primaryKey" json:"fact_num"`
	RengNum  int             `gorm:"column:reng_num;primaryKey" json:"reng_num"`
	CoArt    string          `gorm:"column:co_art;type:varchar(30)" json:"co_art"`
	TotalArt decimal.Decimal `gorm:"column:total_art;type:decimal(18,2)" json:"total_art"`
	PrecVta  decimal.Decimal `gorm:"column:prec_vta;type:decimal(18,2)" json:"prec_vta"`
	RengNeto decimal.Decimal `gorm:"column:reng_neto;type:decimal(18,2)" json:"reng_neto"`
	TipoImp  string          `gorm:"column:tipo_imp;type:char(1)" json:"tipo_imp"`
	UniVenta string          `gorm:"column:uni_venta;type:varchar(3)" json:"uni_venta"`
	// Promotion is a snapshot taken at line creation, not recomputed later.
	Promotion bool `gorm:"column:promotion" json:"promotion"`

	Articulo *Articulo `gorm:"foreignKey:CoArt;references:CoArt" json:"articulo,omitempty"`
}

func (Renglon) TableName() string { return "renglones" }
