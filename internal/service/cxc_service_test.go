package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simoleans/profit/internal/apierror"
	"github.com/Simoleans/profit/internal/model"
)

func buildCxCSvc(docs []model.DocumCC) (CxCService, *stubClienteRepo) {
	documRepo := &stubDocumCCRepo{docs: docs}
	clienteRepo := newStubClienteRepo()
	clienteRepo.clientes["C001"] = &model.Cliente{CoCli: "C001", CliDes: "Distribuidora Centro", CoVen: "V01"}
	clienteRepo.clientes["C002"] = &model.Cliente{CoCli: "C002", CliDes: "Bodega Sur", CoVen: "V02"}
	return NewCxCService(documRepo, clienteRepo), clienteRepo
}

func fact(coCli string, nroDoc int, saldo, tasa string, emis time.Time, dias int) model.DocumCC {
	return model.DocumCC{
		CoCli:   coCli,
		TipoDoc: model.TipoDocFactura,
		NroDoc:  nroDoc,
		CoVen:   "V01",
		FecEmis: emis,
		FecVenc: emis.AddDate(0, 0, dias),
		Saldo:   dec(saldo),
		Tasa:    dec(tasa),
		Moneda:  model.MonedaReferencia,
	}
}

func TestMontoReferenciaRedondeaPorDocumento(t *testing.T) {
	// Two documents of 36.18 at rate 36.00: per-document 1.005 → 1.01 each,
	// so the client balance is 2.02. Summing raw quotients first and rounding
	// once would yield 2.01.
	emis := time.Now().AddDate(0, 0, -5)
	docs := []model.DocumCC{
		fact("C001", 1, "36.18", "36", emis, 30),
		fact("C001", 2, "36.18", "36", emis, 30),
	}
	svc, _ := buildCxCSvc(docs)

	resumen, err := svc.ResumenPorCliente(context.Background(), "ADM01", model.RolAdministrador)
	require.NoError(t, err)
	require.Len(t, resumen.Data, 1)
	assert.True(t, resumen.Data[0].Saldo.Equal(dec("2.02")), "saldo = %s", resumen.Data[0].Saldo)
	assert.Equal(t, 2, resumen.Data[0].Documentos)
}

func TestMontoReferenciaSignoPorTipo(t *testing.T) {
	assert.True(t, montoReferencia(model.DocumCC{TipoDoc: model.TipoDocFactura, Saldo: dec("100"), Tasa: dec("1")}).Equal(dec("100")))
	assert.True(t, montoReferencia(model.DocumCC{TipoDoc: model.TipoDocNotaDebito, Saldo: dec("100"), Tasa: dec("1")}).Equal(dec("100")))
	assert.True(t, montoReferencia(model.DocumCC{TipoDoc: model.TipoDocAjustePosManual, Saldo: dec("100"), Tasa: dec("1")}).Equal(dec("100")))
	assert.True(t, montoReferencia(model.DocumCC{TipoDoc: model.TipoDocAjustePosAuto, Saldo: dec("100"), Tasa: dec("1")}).Equal(dec("100")))
	// Everything else is a credit.
	assert.True(t, montoReferencia(model.DocumCC{TipoDoc: "N/CR", Saldo: dec("40"), Tasa: dec("1")}).Equal(dec("-40")))
	assert.True(t, montoReferencia(model.DocumCC{TipoDoc: "ADEL", Saldo: dec("40"), Tasa: dec("1")}).Equal(dec("-40")))
}

func TestMontoReferenciaTasaCero(t *testing.T) {
	d := model.DocumCC{TipoDoc: model.TipoDocFactura, Saldo: dec("100"), Tasa: decimal.Zero}
	assert.True(t, montoReferencia(d).IsZero())
}

func TestResumenExcluyeSaldosNoPositivos(t *testing.T) {
	emis := time.Now().AddDate(0, 0, -5)
	credito := fact("C002", 3, "150", "1", emis, 30)
	credito.TipoDoc = "N/CR"
	docs := []model.DocumCC{
		fact("C001", 1, "100", "1", emis, 30),
		fact("C002", 2, "50", "1", emis, 30),
		credito, // C002 nets to -100
	}
	svc, _ := buildCxCSvc(docs)

	resumen, err := svc.ResumenPorCliente(context.Background(), "ADM01", model.RolAdministrador)
	require.NoError(t, err)
	require.Len(t, resumen.Data, 1)
	assert.Equal(t, "C001", resumen.Data[0].CoCli)
}

func TestResumenOrdenaPorSaldoDescendente(t *testing.T) {
	emis := time.Now().AddDate(0, 0, -5)
	docs := []model.DocumCC{
		fact("C001", 1, "100", "1", emis, 30),
		fact("C002", 2, "900", "1", emis, 30),
	}
	svc, _ := buildCxCSvc(docs)

	resumen, err := svc.ResumenPorCliente(context.Background(), "ADM01", model.RolAdministrador)
	require.NoError(t, err)
	require.Len(t, resumen.Data, 2)
	assert.Equal(t, "C002", resumen.Data[0].CoCli)
	assert.Equal(t, "C001", resumen.Data[1].CoCli)
}

func TestResumenSeparaSaldoVencido(t *testing.T) {
	hace90 := time.Now().AddDate(0, 0, -90)
	hace5 := time.Now().AddDate(0, 0, -5)
	docs := []model.DocumCC{
		fact("C001", 1, "100", "1", hace90, 30), // vencida hace 60 dias
		fact("C001", 2, "200", "1", hace5, 30),  // por vencer
	}
	svc, _ := buildCxCSvc(docs)

	resumen, err := svc.ResumenPorCliente(context.Background(), "ADM01", model.RolAdministrador)
	require.NoError(t, err)
	require.Len(t, resumen.Data, 1)
	assert.True(t, resumen.Data[0].Saldo.Equal(dec("300")))
	assert.True(t, resumen.Data[0].SaldoVencido.Equal(dec("100")), "vencido = %s", resumen.Data[0].SaldoVencido)
}

func TestFechaVencimientoConEntregaReal(t *testing.T) {
	emis := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d := model.DocumCC{
		TipoDoc: model.TipoDocFactura,
		FecEmis: emis,
		FecVenc: emis.AddDate(0, 0, 30),
		Campo3:  "15/06/2026", // entrega real, dd/mm/yyyy
	}
	// 30 credit days reapplied on top of the delivery date.
	esperado := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, esperado, fechaVencimientoEfectiva(d))
}

func TestFechaVencimientoCampo3Ilegible(t *testing.T) {
	emis := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	venc := emis.AddDate(0, 0, 30)
	d := model.DocumCC{
		TipoDoc: model.TipoDocFactura,
		FecEmis: emis,
		FecVenc: venc,
		Campo3:  "PENDIENTE",
	}
	assert.Equal(t, venc, fechaVencimientoEfectiva(d))
}

func TestFechaVencimientoSoloFacturasUsanCampo3(t *testing.T) {
	emis := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	venc := emis.AddDate(0, 0, 30)
	d := model.DocumCC{
		TipoDoc: model.TipoDocNotaDebito,
		FecEmis: emis,
		FecVenc: venc,
		Campo3:  "15/06/2026",
	}
	assert.Equal(t, venc, fechaVencimientoEfectiva(d))
}

func TestTotalesExcluyeDocumentosLegado(t *testing.T) {
	viejo := fact("C001", 1, "500", "1", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), 30)
	nuevo := fact("C001", 2, "100", "1", time.Now().AddDate(0, 0, -5), 30)
	svc, _ := buildCxCSvc([]model.DocumCC{viejo, nuevo})

	totales, err := svc.Totales(context.Background(), "ADM01", model.RolAdministrador)
	require.NoError(t, err)
	assert.True(t, totales.Total.Equal(dec("100")), "total = %s", totales.Total)
	assert.Equal(t, 1, totales.Facturas)
}

func TestTotalesDividePorVencimiento(t *testing.T) {
	vencida := fact("C001", 1, "100", "1", time.Now().AddDate(0, 0, -90), 30)
	porVencer := fact("C001", 2, "200", "1", time.Now().AddDate(0, 0, -5), 30)
	credito := fact("C001", 3, "30", "1", time.Now().AddDate(0, 0, -90), 30)
	credito.TipoDoc = "N/CR"
	svc, _ := buildCxCSvc([]model.DocumCC{vencida, porVencer, credito})

	totales, err := svc.Totales(context.Background(), "ADM01", model.RolAdministrador)
	require.NoError(t, err)
	assert.True(t, totales.TotalVencido.Equal(dec("70")), "vencido = %s", totales.TotalVencido)
	assert.True(t, totales.TotalPorVencer.Equal(dec("200")))
	assert.True(t, totales.Total.Equal(dec("270")))
	assert.Equal(t, 2, totales.Facturas, "solo FACT cuenta como factura")
}

func TestDetallePorClienteOwnership(t *testing.T) {
	emis := time.Now().AddDate(0, 0, -5)
	svc, _ := buildCxCSvc([]model.DocumCC{fact("C001", 1, "100", "1", emis, 30)})
	ctx := context.Background()

	detalle, err := svc.DetallePorCliente(ctx, "V01", model.RolVendedor, "C001")
	require.NoError(t, err)
	assert.Equal(t, "C001", detalle.CoCli)
	assert.True(t, detalle.Saldo.Equal(dec("100")))
	require.Len(t, detalle.Documentos, 1)
	assert.Equal(t, "FACT", detalle.Documentos[0].TipoDoc)

	// Another seller's client looks nonexistent.
	_, err = svc.DetallePorCliente(ctx, "V02", model.RolVendedor, "C001")
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindNotFound, apiErr.Kind)

	_, err = svc.DetallePorCliente(ctx, "SUP01", model.RolSupervisor, "C001")
	assert.NoError(t, err)
}

func TestDetalleClienteInexistente(t *testing.T) {
	svc, _ := buildCxCSvc(nil)
	_, err := svc.DetallePorCliente(context.Background(), "ADM01", model.RolAdministrador, "NADIE")
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindNotFound, apiErr.Kind)
}

func TestResumenNetaDebitosYCreditos(t *testing.T) {
	emis := time.Now().AddDate(0, 0, -5)
	credito := fact("C001", 2, "30", "1", emis, 30)
	credito.TipoDoc = "N/CR"
	svc, _ := buildCxCSvc([]model.DocumCC{
		fact("C001", 1, "100", "1", emis, 30),
		credito,
	})

	resumen, err := svc.ResumenPorCliente(context.Background(), "ADM01", model.RolAdministrador)
	require.NoError(t, err)
	require.Len(t, resumen.Data, 1)
	assert.True(t, resumen.Data[0].Saldo.Equal(dec("70")), "saldo = %s", resumen.Data[0].Saldo)
	assert.Equal(t, 2, resumen.Data[0].Documentos)
}
