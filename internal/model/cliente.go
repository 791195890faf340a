package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a confirmed client row (clientes) in the ERP schema. Codes and
// descriptions arrive char-padded from the ERP; trim before comparing.
type Cliente struct {
	CoCli     string    `gorm:"column:co_cli;primaryKey;type:varchar(10)" json:"co_cli"`
	CliDes    string    `gorm:"column:cli_des;type:varchar(60)" json:"cli_des"`
	Rif       string    `gorm:"column:rif;type:varchar(15)" json:"rif"`
	Direc1    string    `gorm:"column:direc1" json:"direc1"`
	Telefonos string    `gorm:"column:telefonos;type:varchar(30)" json:"telefonos"`
	Email     string    `gorm:"column:email;type:varchar(60)" json:"email"`
	Respons   string    `gorm:"column:respons;type:varchar(40)" json:"respons"`
	CoVen     string    `gorm:"column:co_ven;type:varchar(6)" json:"co_ven"`
	CoZon     string    `gorm:"column:co_zon;type:varchar(6)" json:"co_zon"`
	Inactivo  bool      `gorm:"column:inactivo" json:"inactivo"`
	FecReg    time.Time `gorm:"column:fec_reg" json:"fec_reg"`
}

func (Cliente) TableName() string { return "clientes" }

// ClienteTemp is a pending client registered by a seller in the field,
// awaiting back-office confirmation. Keyed by tax id (rif); co_cli stays
// empty until the back office promotes it into clientes.
type ClienteTemp struct {
	Rif       string    `gorm:"column:rif;primaryKey;type:varchar(15)" json:"rif"`
	CoCli     string    `gorm:"column:co_cli;type:varchar(10)" json:"co_cli"`
	CliDes    string    `gorm:"column:cli_des;type:varchar(60)" json:"cli_des"`
	Direc1    string    `gorm:"column:direc1" json:"direc1"`
	Telefonos string    `gorm:"column:telefonos;type:varchar(30)" json:"telefonos"`
	Email     string    `gorm:"column:email;type:varchar(60)" json:"email"`
	Respons   string    `gorm:"column:respons;type:varchar(40)" json:"respons"`
	CoVen     string    `gorm:"column:co_ven;type:varchar(6)" json:"co_ven"`
	Status    bool      `gorm:"column:status" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ClienteTemp) TableName() string { return "clientes_temp" }

// Media links an uploaded document to a pending client by rif. Rows live in
// the application's own MySQL store; the file itself sits in the DocStore
// under StorageKey.
type Media struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Rif        string    `gorm:"type:varchar(15);index;not null" json:"rif"`
	FileName   string    `gorm:"not null" json:"file_name"`
	StorageKey string    `gorm:"not null" json:"-"`
	MimeType   string    `gorm:"type:varchar(100)" json:"mime_type"`
	Size       int64     `json:"size"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Media) TableName() string { return "media" }
