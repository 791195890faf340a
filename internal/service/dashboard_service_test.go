package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simoleans/profit/internal/model"
)

func TestDashboardStats(t *testing.T) {
	clienteRepo := newStubClienteRepo()
	clienteRepo.clientes["C001"] = &model.Cliente{CoCli: "C001", CoVen: "V01"}
	clienteRepo.clientes["C002"] = &model.Cliente{CoCli: "C002", CoVen: "V02"}

	documRepo := &stubDocumCCRepo{
		abiertas: 7,
		docs: []model.DocumCC{
			fact("C001", 1, "100", "1", time.Now().AddDate(0, 0, -90), 30), // vencido
			fact("C001", 2, "200", "1", time.Now().AddDate(0, 0, -5), 30),  // por vencer
		},
	}

	svc := NewDashboardService(clienteRepo, documRepo, newStubArticuloRepo(), newStubPedidoRepo())

	stats, err := svc.Stats(context.Background(), "ADM01", model.RolAdministrador)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Clientes)
	assert.Equal(t, int64(7), stats.FacturasAbiertas)
	assert.Equal(t, 1, stats.DocsVencidos)
	assert.Equal(t, 1, stats.DocsPorVencer)
}

func TestDashboardStatsScopeVendedor(t *testing.T) {
	clienteRepo := newStubClienteRepo()
	clienteRepo.clientes["C001"] = &model.Cliente{CoCli: "C001", CoVen: "V01"}
	clienteRepo.clientes["C002"] = &model.Cliente{CoCli: "C002", CoVen: "V02"}

	svc := NewDashboardService(clienteRepo, &stubDocumCCRepo{}, newStubArticuloRepo(), newStubPedidoRepo())

	stats, err := svc.Stats(context.Background(), "V01", model.RolVendedor)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Clientes, "un vendedor solo cuenta su cartera")
}
