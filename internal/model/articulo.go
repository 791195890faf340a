package model

import "github.com/shopspring/decimal"

// Articulo is a catalog article (art) in the ERP schema. Read-only from this
// application's point of view.
type Articulo struct {
	CoArt    string          `gorm:"column:co_art;primaryKey;type:varchar(30)" json:"co_art"`
	ArtDes   string          `gorm:"column:art_des;type:varchar(60)" json:"art_des"`
	CoLin    string          `gorm:"column:co_lin;type:varchar(6)" json:"co_lin"`
	CoSubl   string          `gorm:"column:co_subl;type:varchar(6)" json:"co_subl"`
	CoCat    string          `gorm:"column:co_cat;type:varchar(6)" json:"co_cat"`
	StockAct decimal.Decimal `gorm:"column:stock_act;type:decimal(18,2)" json:"stock_act"`
	PrecVta1 decimal.Decimal `gorm:"column:prec_vta1;type:decimal(18,2)" json:"prec_vta1"`
	UniVenta string          `gorm:"column:uni_venta;type:varchar(3)" json:"uni_venta"`
	Anulado  bool            `gorm:"column:anulado" json:"anulado"`

	Linea    *Linea    `gorm:"foreignKey:CoLin;references:CoLin" json:"linea,omitempty"`
	Sublinea *Sublinea `gorm:"foreignKey:CoSubl;references:CoSubl" json:"sublinea,omitempty"`
}

func (Articulo) TableName() string { return "art" }

type Categoria struct {
	CoCat  string `gorm:"column:co_cat;primaryKey;type:varchar(6)" json:"co_cat"`
	CatDes string `gorm:"column:cat_des;type:varchar(40)" json:"cat_des"`
}

func (Categoria) TableName() string { return "cat_art" }

type Linea struct {
	CoLin  string `gorm:"column:co_lin;primaryKey;type:varchar(6)" json:"co_lin"`
	LinDes string `gorm:"column:lin_des;type:varchar(40)" json:"lin_des"`
}

func (Linea) TableName() string { return "lin_art" }

type Sublinea struct {
	CoSubl  string `gorm:"column:co_subl;primaryKey;type:varchar(6)" json:"co_subl"`
	SublDes string `gorm:"column:subl_des;type:varchar(40)" json:"subl_des"`
}

func (Sublinea) TableName() string { return "sub_lin" }
