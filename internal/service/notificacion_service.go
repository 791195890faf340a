package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Simoleans/profit/internal/model"
	"github.com/Simoleans/profit/internal/worker"
)

// NotificacionService enqueues order emails for the client. Everything here
// is best-effort: a client without a usable address is a logged no-op, and
// delivery failures stay inside the worker. Order processing never fails
// because of a notification.
type NotificacionService interface {
	NotificarPedido(ctx context.Context, pedido *model.Pedido, cliente *model.Cliente)
}

type notificacionService struct {
	dispatcher *worker.Dispatcher
}

func NewNotificacionService(dispatcher *worker.Dispatcher) NotificacionService {
	return &notificacionService{dispatcher: dispatcher}
}

func (s *notificacionService) NotificarPedido(ctx context.Context, pedido *model.Pedido, cliente *model.Cliente) {
	if s.dispatcher == nil || pedido == nil {
		return
	}
	email, ok := emailValido(cliente)
	if !ok {
		log.Info().Int("fact_num", pedido.FactNum).Msg("notificacion: cliente sin correo valido, se omite")
		return
	}

	subject, body := contenidoCorreo(pedido, cliente)
	payload := worker.EmailJobPayload{
		ToEmail: email,
		Subject: subject,
		Body:    body,
		FactNum: pedido.FactNum,
	}
	if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
		log.Error().Err(err).Int("fact_num", pedido.FactNum).Msg("notificacion: no se pudo encolar")
	}
}

// emailValido extracts a sendable address from the client row. ERP addresses
// arrive padded and occasionally malformed.
func emailValido(cliente *model.Cliente) (string, bool) {
	if cliente == nil {
		return "", false
	}
	addr := strings.TrimSpace(cliente.Email)
	if addr == "" {
		return "", false
	}
	if _, err := mail.ParseAddress(addr); err != nil {
		return "", false
	}
	return addr, true
}

func contenidoCorreo(pedido *model.Pedido, cliente *model.Cliente) (subject, body string) {
	nombre := ""
	if cliente != nil {
		nombre = strings.TrimSpace(cliente.CliDes)
	}
	total := pedido.TotNeto.Add(pedido.IVA)

	switch pedido.Status {
	case model.StatusAprobado:
		subject = fmt.Sprintf("Pedido #%d aprobado", pedido.FactNum)
		body = fmt.Sprintf(
			"Estimado cliente %s,\n\nSu pedido #%d fue aprobado y pasa a despacho.\nTotal: %s\n\nGracias por su compra.",
			nombre, pedido.FactNum, total.StringFixed(2))
	case model.StatusRechazado:
		subject = fmt.Sprintf("Pedido #%d rechazado", pedido.FactNum)
		body = fmt.Sprintf(
			"Estimado cliente %s,\n\nSu pedido #%d fue rechazado. Su vendedor se comunicara con usted.\n",
			nombre, pedido.FactNum)
	default:
		subject = fmt.Sprintf("Pedido #%d registrado", pedido.FactNum)
		body = fmt.Sprintf(
			"Estimado cliente %s,\n\nHemos registrado su pedido #%d.\nTotal: %s\nFecha: %s\n\nLe notificaremos cuando sea aprobado.",
			nombre, pedido.FactNum, total.StringFixed(2), pedido.FecEmis.Format("02/01/2006"))
	}
	return subject, body
}
