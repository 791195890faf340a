package service

import (
	"context"
	"time"

	"github.com/Simoleans/profit/internal/dto"
	"github.com/Simoleans/profit/internal/model"
	"github.com/Simoleans/profit/internal/repository"
)

const (
	maxClientesSinPedidos = 50
	maxClientesSinVentas  = 20
)

type DashboardService interface {
	Stats(ctx context.Context, coVen string, rol model.Rol) (*dto.DashboardStatsResponse, error)
	ClientesSinPedidos(ctx context.Context, coVen string, rol model.Rol) ([]dto.ClienteSinPedidos, error)
	ClientesSinVentas(ctx context.Context, coVen string, rol model.Rol) ([]dto.ClienteSinVentas, error)
}

type dashboardService struct {
	clienteRepo  repository.ClienteRepository
	documRepo    repository.DocumCCRepository
	articuloRepo repository.ArticuloRepository
	pedidoRepo   repository.PedidoRepository
}

func NewDashboardService(
	clienteRepo repository.ClienteRepository,
	documRepo repository.DocumCCRepository,
	articuloRepo repository.ArticuloRepository,
	pedidoRepo repository.PedidoRepository,
) DashboardService {
	return &dashboardService{
		clienteRepo:  clienteRepo,
		documRepo:    documRepo,
		articuloRepo: articuloRepo,
		pedidoRepo:   pedidoRepo,
	}
}

func (s *dashboardService) Stats(ctx context.Context, coVen string, rol model.Rol) (*dto.DashboardStatsResponse, error) {
	scope := scopeCoVen(rol, coVen)

	clientes, err := s.clienteRepo.Count(ctx, scope)
	if err != nil {
		return nil, err
	}

	// Supervisors see their whole team's invoices, resolved through
	// vendedor.campo1; everyone else goes through the plain seller filter.
	var facturas int64
	if rol == model.RolSupervisor {
		facturas, err = s.documRepo.CountFacturasAbiertasSupervisor(ctx, coVen)
	} else {
		facturas, err = s.documRepo.CountFacturasAbiertas(ctx, scope)
	}
	if err != nil {
		return nil, err
	}

	docs, err := s.documRepo.Pendientes(ctx, scope)
	if err != nil {
		return nil, err
	}
	hoy := time.Now()
	porVencer, vencidos := 0, 0
	for _, d := range docs {
		if fechaVencimientoEfectiva(d).Before(hoy) {
			vencidos++
		} else {
			porVencer++
		}
	}

	promociones, err := s.articuloRepo.CountPromociones(ctx)
	if err != nil {
		return nil, err
	}

	pedidosMes, err := s.pedidoRepo.MonthStats(ctx, scope)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		Clientes:         clientes,
		FacturasAbiertas: facturas,
		DocsPorVencer:    porVencer,
		DocsVencidos:     vencidos,
		Promociones:      promociones,
		PedidosMes:       pedidosMes,
	}, nil
}

func (s *dashboardService) ClientesSinPedidos(ctx context.Context, coVen string, rol model.Rol) ([]dto.ClienteSinPedidos, error) {
	return s.clienteRepo.SinPedidos(ctx, scopeCoVen(rol, coVen), maxClientesSinPedidos)
}

func (s *dashboardService) ClientesSinVentas(ctx context.Context, coVen string, rol model.Rol) ([]dto.ClienteSinVentas, error) {
	return s.clienteRepo.SinVentasRecientes(ctx, scopeCoVen(rol, coVen), maxClientesSinVentas)
}
