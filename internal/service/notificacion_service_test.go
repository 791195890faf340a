package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Simoleans/profit/internal/model"
)

func TestEmailValido(t *testing.T) {
	_, ok := emailValido(nil)
	assert.False(t, ok)

	_, ok = emailValido(&model.Cliente{Email: "   "})
	assert.False(t, ok)

	_, ok = emailValido(&model.Cliente{Email: "no-es-un-correo"})
	assert.False(t, ok)

	// ERP char columns arrive padded.
	addr, ok := emailValido(&model.Cliente{Email: "  compras@centro.example  "})
	assert.True(t, ok)
	assert.Equal(t, "compras@centro.example", addr)
}

func TestContenidoCorreoPorEstado(t *testing.T) {
	cliente := &model.Cliente{CliDes: "Distribuidora Centro "}
	pedido := &model.Pedido{
		FactNum: 42,
		FecEmis: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		TotNeto: dec("100"),
		IVA:     dec("16"),
	}

	pedido.Status = model.StatusPendiente
	subject, body := contenidoCorreo(pedido, cliente)
	assert.Equal(t, "Pedido #42 registrado", subject)
	assert.Contains(t, body, "116.00")
	assert.Contains(t, body, "09/03/2026")
	assert.Contains(t, body, "Distribuidora Centro")

	pedido.Status = model.StatusAprobado
	subject, body = contenidoCorreo(pedido, cliente)
	assert.Equal(t, "Pedido #42 aprobado", subject)
	assert.Contains(t, body, "116.00")

	pedido.Status = model.StatusRechazado
	subject, _ = contenidoCorreo(pedido, cliente)
	assert.Equal(t, "Pedido #42 rechazado", subject)
}

func TestNotificarPedidoSinDispatcher(t *testing.T) {
	svc := NewNotificacionService(nil)
	// Best-effort contract: no dispatcher, no panic, nothing happens.
	assert.NotPanics(t, func() {
		svc.NotificarPedido(context.Background(), &model.Pedido{FactNum: 1}, &model.Cliente{Email: "a@b.example"})
		svc.NotificarPedido(context.Background(), nil, nil)
	})
}
