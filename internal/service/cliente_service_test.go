package service

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simoleans/profit/internal/apierror"
	"github.com/Simoleans/profit/internal/dto"
	"github.com/Simoleans/profit/internal/infra"
	"github.com/Simoleans/profit/internal/model"
)

func buildClienteSvc(t *testing.T) (ClienteService, *stubClienteRepo, *stubMediaRepo) {
	t.Helper()
	repo := newStubClienteRepo()
	mediaRepo := newStubMediaRepo()
	docs, err := infra.NewDocStore(t.TempDir())
	require.NoError(t, err)

	repo.clientes["C001"] = &model.Cliente{
		CoCli:  "C001",
		Rif:    "J-12345678-9",
		CliDes: "Distribuidora Centro",
		CoVen:  "V01",
	}
	return NewClienteService(repo, mediaRepo, docs), repo, mediaRepo
}

func TestRegistrarClientePendiente(t *testing.T) {
	svc, repo, _ := buildClienteSvc(t)

	resp, err := svc.Registrar(context.Background(), "V01", dto.RegistrarClienteRequest{
		Rif:    " j-99887766-5 ",
		CliDes: "  Nuevo Comercio  ",
		Email:  "ventas@nuevo.example",
	})
	require.NoError(t, err)

	// RIF normalized to upper case, row parked in the pending table.
	assert.Equal(t, "J-99887766-5", resp.Rif)
	assert.Equal(t, "Nuevo Comercio", resp.CliDes)
	assert.True(t, resp.Pendiente)
	assert.Empty(t, resp.CoCli, "co_cli se asigna al promover en el ERP")
	assert.Contains(t, repo.temps, "J-99887766-5")
}

func TestRegistrarClienteRifDuplicado(t *testing.T) {
	svc, _, _ := buildClienteSvc(t)
	ctx := context.Background()

	req := dto.RegistrarClienteRequest{Rif: "J-11111111-1", CliDes: "Comercio Uno"}
	_, err := svc.Registrar(ctx, "V01", req)
	require.NoError(t, err)

	_, err = svc.Registrar(ctx, "V02", req)
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindConflict, apiErr.Kind)
}

func TestRegistrarClienteRifYaConfirmado(t *testing.T) {
	svc, _, _ := buildClienteSvc(t)

	// The RIF of an already confirmed client is also taken.
	_, err := svc.Registrar(context.Background(), "V01", dto.RegistrarClienteRequest{
		Rif:    "J-12345678-9",
		CliDes: "Otro Nombre",
	})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindConflict, apiErr.Kind)
}

func TestActualizarPendienteMezclaCampos(t *testing.T) {
	svc, _, _ := buildClienteSvc(t)
	ctx := context.Background()

	_, err := svc.Registrar(ctx, "V01", dto.RegistrarClienteRequest{
		Rif:       "J-22222222-2",
		CliDes:    "Comercio Dos",
		Telefonos: "0212-5551234",
	})
	require.NoError(t, err)

	resp, err := svc.ActualizarPendiente(ctx, "V01", model.RolVendedor, "J-22222222-2", dto.ActualizarClienteRequest{
		Email: "nuevo@dos.example",
	})
	require.NoError(t, err)
	assert.Equal(t, "nuevo@dos.example", resp.Email)
	// Fields absent from the request keep their value.
	assert.Equal(t, "Comercio Dos", resp.CliDes)
	assert.Equal(t, "0212-5551234", resp.Telefonos)
}

func TestActualizarPendienteAjeno(t *testing.T) {
	svc, _, _ := buildClienteSvc(t)
	ctx := context.Background()

	_, err := svc.Registrar(ctx, "V01", dto.RegistrarClienteRequest{Rif: "J-33333333-3", CliDes: "Comercio Tres"})
	require.NoError(t, err)

	_, err = svc.ActualizarPendiente(ctx, "V02", model.RolVendedor, "J-33333333-3", dto.ActualizarClienteRequest{Email: "x@y.example"})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindNotFound, apiErr.Kind)

	// Back office edits any pending row.
	_, err = svc.ActualizarPendiente(ctx, "ADM01", model.RolAdministrador, "J-33333333-3", dto.ActualizarClienteRequest{Email: "x@y.example"})
	assert.NoError(t, err)
}

func TestDesactivarCliente(t *testing.T) {
	svc, repo, _ := buildClienteSvc(t)
	ctx := context.Background()

	require.NoError(t, svc.Desactivar(ctx, "C001"))
	assert.True(t, repo.clientes["C001"].Inactivo)

	// Once inactive it no longer "exists" for the API.
	err := svc.Desactivar(ctx, "C001")
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindNotFound, apiErr.Kind)
}

func TestListarClientesPorTab(t *testing.T) {
	svc, _, _ := buildClienteSvc(t)
	ctx := context.Background()

	_, err := svc.Registrar(ctx, "V01", dto.RegistrarClienteRequest{Rif: "J-44444444-4", CliDes: "Comercio Cuatro"})
	require.NoError(t, err)

	procesados, err := svc.Listar(ctx, "V01", model.RolVendedor, dto.ClienteFilter{Tab: "processed"})
	require.NoError(t, err)
	require.Equal(t, int64(1), procesados.Total)
	assert.False(t, procesados.Data[0].Pendiente)

	pendientes, err := svc.Listar(ctx, "V01", model.RolVendedor, dto.ClienteFilter{Tab: "temp"})
	require.NoError(t, err)
	require.Equal(t, int64(1), pendientes.Total)
	assert.True(t, pendientes.Data[0].Pendiente)
}

func TestAdjuntarYDescargarDocumento(t *testing.T) {
	svc, _, mediaRepo := buildClienteSvc(t)
	ctx := context.Background()

	_, err := svc.Registrar(ctx, "V01", dto.RegistrarClienteRequest{Rif: "J-55555555-5", CliDes: "Comercio Cinco"})
	require.NoError(t, err)

	contenido := "registro mercantil en pdf"
	media, err := svc.AdjuntarDocumento(ctx, "j-55555555-5", "rif.pdf", "application/pdf", int64(len(contenido)), strings.NewReader(contenido))
	require.NoError(t, err)
	assert.Equal(t, "rif.pdf", media.FileName)

	docs, err := svc.Documentos(ctx, "J-55555555-5")
	require.NoError(t, err)
	require.Len(t, docs, 1)

	path, nombre, err := svc.RutaDocumento(ctx, media.ID)
	require.NoError(t, err)
	assert.Equal(t, "rif.pdf", nombre)
	guardado, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, contenido, string(guardado))

	// The storage key never leaks the original filename.
	for _, m := range mediaRepo.media {
		assert.NotContains(t, m.StorageKey, "rif")
	}
}

func TestAdjuntarDocumentoClienteInexistente(t *testing.T) {
	svc, _, _ := buildClienteSvc(t)

	_, err := svc.AdjuntarDocumento(context.Background(), "J-00000000-0", "rif.pdf", "application/pdf", 4, strings.NewReader("data"))
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindNotFound, apiErr.Kind)
}

func TestRutaDocumentoIDInvalido(t *testing.T) {
	svc, _, _ := buildClienteSvc(t)

	_, _, err := svc.RutaDocumento(context.Background(), "no-es-un-uuid")
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindValidation, apiErr.Kind)
}
