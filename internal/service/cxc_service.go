package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Simoleans/profit/internal/apierror"
	"github.com/Simoleans/profit/internal/dto"
	"github.com/Simoleans/profit/internal/model"
	"github.com/Simoleans/profit/internal/repository"
)

const (
	maxClientesResumen = 100
	maxDocsDetalle     = 1000
	// anioCorte excludes legacy documents from the receivable totals.
	anioCorte = 2024
)

type CxCService interface {
	ResumenPorCliente(ctx context.Context, coVen string, rol model.Rol) (*dto.ResumenCxCResponse, error)
	Totales(ctx context.Context, coVen string, rol model.Rol) (*dto.TotalesCxCResponse, error)
	DetallePorCliente(ctx context.Context, coVen string, rol model.Rol, coCli string) (*dto.DetalleCxCResponse, error)
}

type cxcService struct {
	repo        repository.DocumCCRepository
	clienteRepo repository.ClienteRepository
}

func NewCxCService(repo repository.DocumCCRepository, clienteRepo repository.ClienteRepository) CxCService {
	return &cxcService{repo: repo, clienteRepo: clienteRepo}
}

// montoReferencia converts one document's balance to reference currency,
// signed by document type. Rounding happens here, per document, before any
// summation; summing first and rounding later drifts from the ERP's own
// statements by cents.
func montoReferencia(d model.DocumCC) decimal.Decimal {
	if d.Tasa.IsZero() {
		return decimal.Zero
	}
	monto := d.Saldo.Div(d.Tasa).Round(2)
	if d.EsDebito() {
		return monto
	}
	return monto.Neg()
}

// fechaVencimientoEfectiva computes the due date used for the overdue split.
// Invoices record the real delivery date as free text in campo3 (dd/mm/yyyy);
// when present, the document's credit days are reapplied on top of it.
// Anything else falls back to the nominal fec_venc.
func fechaVencimientoEfectiva(d model.DocumCC) time.Time {
	if d.TipoDoc != model.TipoDocFactura {
		return d.FecVenc
	}
	entrega, err := time.Parse("02/01/2006", strings.TrimSpace(d.Campo3))
	if err != nil {
		return d.FecVenc
	}
	diasCredito := int(d.FecVenc.Sub(d.FecEmis).Hours() / 24)
	return entrega.AddDate(0, 0, diasCredito)
}

func (s *cxcService) ResumenPorCliente(ctx context.Context, coVen string, rol model.Rol) (*dto.ResumenCxCResponse, error) {
	docs, err := s.repo.Pendientes(ctx, scopeCoVen(rol, coVen))
	if err != nil {
		return nil, err
	}

	type acumulado struct {
		cliente string
		saldo   decimal.Decimal
		vencido decimal.Decimal
		docs    int
	}
	hoy := time.Now()
	porCliente := make(map[string]*acumulado)
	for _, d := range docs {
		coCli := strings.TrimSpace(d.CoCli)
		a, ok := porCliente[coCli]
		if !ok {
			a = &acumulado{saldo: decimal.Zero, vencido: decimal.Zero}
			if d.Cliente != nil {
				a.cliente = strings.TrimSpace(d.Cliente.CliDes)
			}
			porCliente[coCli] = a
		}
		monto := montoReferencia(d)
		a.saldo = a.saldo.Add(monto)
		a.docs++
		if fechaVencimientoEfectiva(d).Before(hoy) {
			a.vencido = a.vencido.Add(monto)
		}
	}

	rows := make([]dto.ClienteSaldo, 0, len(porCliente))
	for coCli, a := range porCliente {
		if a.saldo.LessThanOrEqual(decimal.Zero) {
			continue
		}
		rows = append(rows, dto.ClienteSaldo{
			CoCli:        coCli,
			Cliente:      a.cliente,
			Saldo:        a.saldo,
			SaldoVencido: a.vencido,
			Documentos:   a.docs,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Saldo.GreaterThan(rows[j].Saldo) })
	if len(rows) > maxClientesResumen {
		rows = rows[:maxClientesResumen]
	}
	return &dto.ResumenCxCResponse{Data: rows, Total: len(rows)}, nil
}

func (s *cxcService) Totales(ctx context.Context, coVen string, rol model.Rol) (*dto.TotalesCxCResponse, error) {
	docs, err := s.repo.Pendientes(ctx, scopeCoVen(rol, coVen))
	if err != nil {
		return nil, err
	}

	hoy := time.Now()
	porVencer, vencido := decimal.Zero, decimal.Zero
	facturas := 0
	for _, d := range docs {
		if d.FecEmis.Year() < anioCorte {
			continue
		}
		monto := montoReferencia(d)
		if fechaVencimientoEfectiva(d).Before(hoy) {
			vencido = vencido.Add(monto)
		} else {
			porVencer = porVencer.Add(monto)
		}
		if d.TipoDoc == model.TipoDocFactura {
			facturas++
		}
	}
	return &dto.TotalesCxCResponse{
		TotalPorVencer: porVencer,
		TotalVencido:   vencido,
		Total:          porVencer.Add(vencido),
		Facturas:       facturas,
	}, nil
}

func (s *cxcService) DetallePorCliente(ctx context.Context, coVen string, rol model.Rol, coCli string) (*dto.DetalleCxCResponse, error) {
	cliente, err := s.clienteRepo.FindByCoCli(ctx, coCli)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("cliente no encontrado")
		}
		return nil, err
	}
	if rol == model.RolVendedor && strings.TrimSpace(cliente.CoVen) != strings.TrimSpace(coVen) {
		return nil, apierror.NotFound("cliente no encontrado")
	}

	docs, err := s.repo.PendientesPorCliente(ctx, coCli, maxDocsDetalle)
	if err != nil {
		return nil, err
	}

	hoy := time.Now()
	saldo := decimal.Zero
	rows := make([]dto.DocumentoCxC, 0, len(docs))
	for _, d := range docs {
		monto := montoReferencia(d)
		saldo = saldo.Add(monto)
		entrega := fechaVencimientoEfectiva(d)
		rows = append(rows, dto.DocumentoCxC{
			TipoDoc:    strings.TrimSpace(d.TipoDoc),
			NroDoc:     d.NroDoc,
			CoVen:      strings.TrimSpace(d.CoVen),
			FecEmis:    d.FecEmis.Format("2006-01-02"),
			FecVenc:    d.FecVenc.Format("2006-01-02"),
			FecEntrega: entrega.Format("2006-01-02"),
			Saldo:      monto,
			Vencido:    entrega.Before(hoy),
		})
	}
	return &dto.DetalleCxCResponse{
		CoCli:      strings.TrimSpace(cliente.CoCli),
		Cliente:    strings.TrimSpace(cliente.CliDes),
		Saldo:      saldo,
		Documentos: rows,
	}, nil
}
