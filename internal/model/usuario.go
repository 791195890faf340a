package model

import "time"

// Rol is the application role stored as an int in the users table.
type Rol int

const (
	RolVendedor      Rol = 0
	RolAdministrador Rol = 1
	RolSupervisor    Rol = 2
)

// Label returns the display name for a role. Unknown values map to an empty
// string so callers can reject them.
func (r Rol) Label() string {
	switch r {
	case RolVendedor:
		return "Vendedor"
	case RolAdministrador:
		return "Administrador"
	case RolSupervisor:
		return "Supervisor"
	default:
		return ""
	}
}

func (r Rol) Valid() bool {
	switch r {
	case RolVendedor, RolAdministrador, RolSupervisor:
		return true
	default:
		return false
	}
}

// EsVendedor covers both roles whose co_ven must exist in the vendedor table.
func (r Rol) EsVendedor() bool { return r == RolVendedor || r == RolAdministrador }

// Usuario is an application user in the MySQL store. CoVen ties the user to
// a seller (vendedor) or supervisor (supervisor) row in the ERP schema.
type Usuario struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CoVen        string    `gorm:"type:varchar(6);uniqueIndex;not null" json:"co_ven"`
	Nombre       string    `gorm:"not null" json:"nombre"`
	Email        string    `gorm:"type:varchar(60)" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Rol          Rol       `gorm:"not null;default:0" json:"rol"`
	Activo       bool      `gorm:"not null;default:true" json:"activo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Usuario) TableName() string { return "users" }

// Vendedor is a seller row (vendedor) in the ERP schema. Campo1 carries the
// supervisor code the seller reports to.
type Vendedor struct {
	CoVen    string `gorm:"column:co_ven;primaryKey;type:varchar(6)" json:"co_ven"`
	VenDes   string `gorm:"column:ven_des;type:varchar(60)" json:"ven_des"`
	Campo1   string `gorm:"column:campo1;type:varchar(20)" json:"campo1"`
	Inactivo bool   `gorm:"column:inactivo" json:"inactivo"`
}

func (Vendedor) TableName() string { return "vendedor" }

// Supervisor is a supervisor row (supervisor) in the ERP schema.
type Supervisor struct {
	CoSup  string `gorm:"column:co_sup;primaryKey;type:varchar(6)" json:"co_sup"`
	SupDes string `gorm:"column:sup_des;type:varchar(60)" json:"sup_des"`
}

func (Supervisor) TableName() string { return "supervisor" }
