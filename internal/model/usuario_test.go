package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolLabel(t *testing.T) {
	assert.Equal(t, "Vendedor", RolVendedor.Label())
	assert.Equal(t, "Administrador", RolAdministrador.Label())
	assert.Equal(t, "Supervisor", RolSupervisor.Label())
	assert.Equal(t, "", Rol(9).Label())
}

func TestRolValid(t *testing.T) {
	assert.True(t, RolVendedor.Valid())
	assert.True(t, RolAdministrador.Valid())
	assert.True(t, RolSupervisor.Valid())
	assert.False(t, Rol(-1).Valid())
	assert.False(t, Rol(3).Valid())
}

func TestRolEsVendedor(t *testing.T) {
	// Sellers and admins authenticate against the vendedor table,
	// supervisors against supervisor.
	assert.True(t, RolVendedor.EsVendedor())
	assert.True(t, RolAdministrador.EsVendedor())
	assert.False(t, RolSupervisor.EsVendedor())
}

func TestEsDebito(t *testing.T) {
	for _, tipo := range []string{TipoDocFactura, TipoDocAjustePosManual, TipoDocAjustePosAuto, TipoDocNotaDebito} {
		assert.True(t, DocumCC{TipoDoc: tipo}.EsDebito(), tipo)
	}
	for _, tipo := range []string{"N/CR", "ADEL", "CHEQ", ""} {
		assert.False(t, DocumCC{TipoDoc: tipo}.EsDebito(), tipo)
	}
}
