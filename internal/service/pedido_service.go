package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Simoleans/profit/internal/apierror"
	"github.com/Simoleans/profit/internal/dto"
	"github.com/Simoleans/profit/internal/model"
	"github.com/Simoleans/profit/internal/repository"
)

// tasaIVA is the flat tax rate applied to the order net.
var tasaIVA = decimal.NewFromFloat(0.16)

const pedidosPorPagina = 15

type PedidoService interface {
	Crear(ctx context.Context, coVen string, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error)
	Actualizar(ctx context.Context, coVen string, rol model.Rol, factNum int, req dto.ActualizarPedidoRequest) (*dto.PedidoResponse, error)
	Anular(ctx context.Context, coVen string, rol model.Rol, factNum int) error
	Aprobar(ctx context.Context, factNum int) error
	Rechazar(ctx context.Context, factNum int) error
	Obtener(ctx context.Context, coVen string, rol model.Rol, factNum int) (*dto.PedidoResponse, error)
	Listar(ctx context.Context, coVen string, rol model.Rol, filter dto.PedidoFilter) (*dto.PedidoListResponse, error)
	ReenviarCorreo(ctx context.Context, coVen string, rol model.Rol, factNum int) error
}

type pedidoService struct {
	repo         repository.PedidoRepository
	clienteRepo  repository.ClienteRepository
	articuloRepo repository.ArticuloRepository
	usuarioRepo  repository.UsuarioRepository
	notificacion NotificacionService
}

func NewPedidoService(
	repo repository.PedidoRepository,
	clienteRepo repository.ClienteRepository,
	articuloRepo repository.ArticuloRepository,
	usuarioRepo repository.UsuarioRepository,
	notificacion NotificacionService,
) PedidoService {
	return &pedidoService{
		repo:         repo,
		clienteRepo:  clienteRepo,
		articuloRepo: articuloRepo,
		usuarioRepo:  usuarioRepo,
		notificacion: notificacion,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// resolvedRenglon carries an order line with its article snapshot, built
// outside the transaction so the lock window stays as short as possible.
type resolvedRenglon struct {
	coArt     string
	artDes    string
	cantidad  decimal.Decimal
	precVta   decimal.Decimal
	rengNeto  decimal.Decimal
	uniVenta  string
	promotion bool
}

// resolverRenglones validates and prices the requested lines in one article
// batch fetch. The promotion flag is snapshotted here from the article's
// current category.
func (s *pedidoService) resolverRenglones(ctx context.Context, reqs []dto.RenglonRequest) ([]resolvedRenglon, decimal.Decimal, error) {
	if len(reqs) == 0 {
		return nil, decimal.Zero, apierror.Validation("pedido sin renglones", map[string]string{
			"renglones": "debe incluir al menos un renglon",
		})
	}
	codigos := make([]string, 0, len(reqs))
	for _, r := range reqs {
		codigos = append(codigos, r.CoArt)
	}
	articulos, err := s.articuloRepo.FindByCoArts(ctx, codigos)
	if err != nil {
		return nil, decimal.Zero, err
	}
	porCodigo := make(map[string]model.Articulo, len(articulos))
	for _, a := range articulos {
		porCodigo[strings.TrimSpace(a.CoArt)] = a
	}

	resolved := make([]resolvedRenglon, 0, len(reqs))
	neto := decimal.Zero
	for i, r := range reqs {
		art, ok := porCodigo[strings.TrimSpace(r.CoArt)]
		if !ok {
			return nil, decimal.Zero, apierror.Referential(fmt.Sprintf("articulo %s no existe", r.CoArt))
		}
		if art.Anulado {
			return nil, decimal.Zero, apierror.Referential(fmt.Sprintf("articulo %s esta anulado", r.CoArt))
		}
		if r.Cantidad.LessThanOrEqual(decimal.Zero) {
			return nil, decimal.Zero, apierror.Validation("cantidad invalida", map[string]string{
				fmt.Sprintf("renglones[%d].cantidad", i): "debe ser mayor que cero",
			})
		}
		// Zero is allowed: promotional lines go out free of charge.
		if r.PrecVta.LessThan(decimal.Zero) {
			return nil, decimal.Zero, apierror.Validation("precio invalido", map[string]string{
				fmt.Sprintf("renglones[%d].prec_vta", i): "no puede ser negativo",
			})
		}

		uni := strings.TrimSpace(r.UniVenta)
		if uni == "" {
			uni = strings.TrimSpace(art.UniVenta)
		}
		if len(uni) > 3 {
			uni = uni[:3]
		}

		rengNeto := r.Cantidad.Mul(r.PrecVta)
		neto = neto.Add(rengNeto)
		resolved = append(resolved, resolvedRenglon{
			coArt:     strings.TrimSpace(art.CoArt),
			artDes:    strings.TrimSpace(art.ArtDes),
			cantidad:  r.Cantidad,
			precVta:   r.PrecVta,
			rengNeto:  rengNeto,
			uniVenta:  uni,
			promotion: strings.TrimSpace(art.CoCat) == model.CategoriaPromocion,
		})
	}
	return resolved, neto, nil
}

func buildRenglones(factNum int, resolved []resolvedRenglon) []model.Renglon {
	renglones := make([]model.Renglon, 0, len(resolved))
	for i, r := range resolved {
		renglones = append(renglones, model.Renglon{
			FactNum:   factNum,
			RengNum:   i + 1,
			CoArt:     r.coArt,
			TotalArt:  r.cantidad,
			PrecVta:   r.precVta,
			RengNeto:  r.rengNeto,
			TipoImp:   "I",
			UniVenta:  r.uniVenta,
			Promotion: r.promotion,
		})
	}
	return renglones
}

// fechasPedido parses the issue and due dates and enforces their ordering.
// Same-day due dates are valid (cash sales).
func fechasPedido(emis, venc string) (time.Time, time.Time, error) {
	fecEmis, err := time.Parse("2006-01-02", emis)
	if err != nil {
		return time.Time{}, time.Time{}, apierror.Validation("fecha invalida", map[string]string{
			"fec_emis": "formato esperado AAAA-MM-DD",
		})
	}
	fecVenc, err := time.Parse("2006-01-02", venc)
	if err != nil {
		return time.Time{}, time.Time{}, apierror.Validation("fecha invalida", map[string]string{
			"fec_venc": "formato esperado AAAA-MM-DD",
		})
	}
	if fecVenc.Before(fecEmis) {
		return time.Time{}, time.Time{}, apierror.Validation("rango de fechas invalido", map[string]string{
			"fec_venc": "debe ser igual o posterior a fec_emis",
		})
	}
	return fecEmis, fecVenc, nil
}

// ── Crear ────────────────────────────────────────────────────────────────────
// 1. Validate the client and price every line outside the transaction.
// 2. BEGIN TX: next correlative under TABLOCKX, insert header, insert lines.
// 3. On a lost numbering race (duplicate key) retry the whole transaction
//    once; a second loss surfaces as a conflict.
// 4. After commit: best-effort new-order notification.

func (s *pedidoService) Crear(ctx context.Context, coVen string, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error) {
	cliente, err := s.clienteRepo.FindByCoCli(ctx, req.CoCli)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Referential(fmt.Sprintf("cliente %s no existe", req.CoCli))
		}
		return nil, err
	}
	if cliente.Inactivo {
		return nil, apierror.Referential(fmt.Sprintf("cliente %s esta inactivo", req.CoCli))
	}

	fecEmis, fecVenc, err := fechasPedido(req.FecEmis, req.FecVenc)
	if err != nil {
		return nil, err
	}

	resolved, neto, err := s.resolverRenglones(ctx, req.Renglones)
	if err != nil {
		return nil, err
	}

	pedido := model.Pedido{
		CoCli:      req.CoCli,
		CoVen:      coVen,
		FecEmis:    fecEmis,
		FecVenc:    fecVenc,
		TotBruto:   neto,
		TotNeto:    neto,
		IVA:        neto.Mul(tasaIVA).Round(2),
		Status:     model.StatusPendiente,
		Descrip:    req.Descrip,
		Comentario: req.Comentario,
		DirEnt:     req.DirEnt,
	}

	crear := func(tx *gorm.DB) error {
		factNum, err := s.repo.NextFactNum(ctx, tx)
		if err != nil {
			return err
		}
		pedido.FactNum = factNum
		if err := s.repo.CreateHeader(ctx, tx, &pedido); err != nil {
			return err
		}
		return s.repo.CreateRenglones(ctx, tx, buildRenglones(factNum, resolved))
	}

	txErr := runTx(ctx, s.repo.DB(), crear)
	if errors.Is(txErr, gorm.ErrDuplicatedKey) {
		// Lost the correlative race; one clean retry with a fresh number.
		txErr = runTx(ctx, s.repo.DB(), crear)
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("no se pudo asignar numero de pedido", txErr)
		}
	}
	if txErr != nil {
		return nil, txErr
	}

	if s.notificacion != nil {
		s.notificacion.NotificarPedido(ctx, &pedido, cliente)
	}

	return s.pedidoToResponse(&pedido, cliente, resolved), nil
}

// ── Actualizar ───────────────────────────────────────────────────────────────
// Lines are replaced wholesale: delete every renglon, insert the new set with
// reng_num renumbered from 1, recompute totals. Issue and due dates stay as
// they were.

func (s *pedidoService) Actualizar(ctx context.Context, coVen string, rol model.Rol, factNum int, req dto.ActualizarPedidoRequest) (*dto.PedidoResponse, error) {
	pedido, err := s.obtenerPropio(ctx, coVen, rol, factNum)
	if err != nil {
		return nil, err
	}
	if pedido.Anulada {
		return nil, apierror.State("el pedido esta anulado")
	}
	if pedido.Status != model.StatusPendiente {
		return nil, apierror.State("solo pedidos pendientes pueden modificarse")
	}

	resolved, neto, err := s.resolverRenglones(ctx, req.Renglones)
	if err != nil {
		return nil, err
	}

	pedido.TotBruto = neto
	pedido.TotNeto = neto
	pedido.IVA = neto.Mul(tasaIVA).Round(2)
	pedido.Descrip = req.Descrip
	pedido.Comentario = req.Comentario
	pedido.DirEnt = req.DirEnt
	pedido.Renglones = nil

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteRenglones(ctx, tx, factNum); err != nil {
			return err
		}
		if err := s.repo.CreateRenglones(ctx, tx, buildRenglones(factNum, resolved)); err != nil {
			return err
		}
		return s.repo.UpdateHeader(ctx, tx, pedido)
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.pedidoToResponse(pedido, pedido.Cliente, resolved), nil
}

// ── Estado ───────────────────────────────────────────────────────────────────

// Anular sets the one-way void flag. The status is left untouched so the
// original state remains visible in listings.
func (s *pedidoService) Anular(ctx context.Context, coVen string, rol model.Rol, factNum int) error {
	pedido, err := s.obtenerPropio(ctx, coVen, rol, factNum)
	if err != nil {
		return err
	}
	if pedido.Anulada {
		return apierror.State("el pedido ya esta anulado")
	}
	if pedido.Status == model.StatusFacturado {
		return apierror.State("un pedido facturado no puede anularse")
	}
	return s.repo.MarkAnulada(ctx, factNum)
}

func (s *pedidoService) Aprobar(ctx context.Context, factNum int) error {
	return s.transicionar(ctx, factNum, model.StatusAprobado)
}

func (s *pedidoService) Rechazar(ctx context.Context, factNum int) error {
	return s.transicionar(ctx, factNum, model.StatusRechazado)
}

func (s *pedidoService) transicionar(ctx context.Context, factNum int, destino string) error {
	pedido, err := s.repo.FindByFactNum(ctx, factNum)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("pedido no encontrado")
		}
		return err
	}
	if pedido.Anulada {
		return apierror.State("el pedido esta anulado")
	}
	if pedido.Status != model.StatusPendiente {
		return apierror.State(fmt.Sprintf("el pedido no esta pendiente (status %s)", pedido.Status))
	}
	if err := s.repo.UpdateStatus(ctx, factNum, destino); err != nil {
		return err
	}

	if s.notificacion != nil {
		pedido.Status = destino
		s.notificacion.NotificarPedido(ctx, pedido, pedido.Cliente)
	}
	return nil
}

// ── Consultas ────────────────────────────────────────────────────────────────

func (s *pedidoService) Obtener(ctx context.Context, coVen string, rol model.Rol, factNum int) (*dto.PedidoResponse, error) {
	pedido, err := s.obtenerPropio(ctx, coVen, rol, factNum)
	if err != nil {
		return nil, err
	}
	return s.pedidoToResponse(pedido, pedido.Cliente, nil), nil
}

func (s *pedidoService) Listar(ctx context.Context, coVen string, rol model.Rol, filter dto.PedidoFilter) (*dto.PedidoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	pedidos, total, err := s.repo.List(ctx, scopeCoVen(rol, coVen), filter, pedidosPorPagina)
	if err != nil {
		return nil, err
	}

	// One MySQL round trip for every seller on the page; the two stores
	// cannot be joined.
	vendedores := s.nombresVendedores(ctx, pedidos)

	items := make([]dto.PedidoListItem, 0, len(pedidos))
	for _, p := range pedidos {
		cliDes := ""
		if p.Cliente != nil {
			cliDes = strings.TrimSpace(p.Cliente.CliDes)
		}
		items = append(items, dto.PedidoListItem{
			FactNum:  p.FactNum,
			CoCli:    strings.TrimSpace(p.CoCli),
			Cliente:  cliDes,
			CoVen:    strings.TrimSpace(p.CoVen),
			Vendedor: vendedores[strings.TrimSpace(p.CoVen)],
			FecEmis:  p.FecEmis.Format("2006-01-02"),
			TotNeto:  p.TotNeto,
			IVA:      p.IVA,
			Status:   p.Status,
			Anulada:  p.Anulada,
		})
	}
	return &dto.PedidoListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: pedidosPorPagina,
	}, nil
}

func (s *pedidoService) ReenviarCorreo(ctx context.Context, coVen string, rol model.Rol, factNum int) error {
	pedido, err := s.obtenerPropio(ctx, coVen, rol, factNum)
	if err != nil {
		return err
	}
	if pedido.Anulada {
		return apierror.State("el pedido esta anulado")
	}
	if s.notificacion == nil {
		return nil
	}
	s.notificacion.NotificarPedido(ctx, pedido, pedido.Cliente)
	return nil
}

// obtenerPropio loads an order enforcing ownership: sellers only reach their
// own orders, admin and supervisor reach all.
func (s *pedidoService) obtenerPropio(ctx context.Context, coVen string, rol model.Rol, factNum int) (*model.Pedido, error) {
	pedido, err := s.repo.FindByFactNum(ctx, factNum)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("pedido no encontrado")
		}
		return nil, err
	}
	if rol == model.RolVendedor && strings.TrimSpace(pedido.CoVen) != strings.TrimSpace(coVen) {
		return nil, apierror.NotFound("pedido no encontrado")
	}
	return pedido, nil
}

func (s *pedidoService) nombresVendedores(ctx context.Context, pedidos []model.Pedido) map[string]string {
	seen := make(map[string]struct{})
	codigos := make([]string, 0, len(pedidos))
	for _, p := range pedidos {
		cv := strings.TrimSpace(p.CoVen)
		if _, ok := seen[cv]; ok {
			continue
		}
		seen[cv] = struct{}{}
		codigos = append(codigos, cv)
	}
	nombres := make(map[string]string, len(codigos))
	if len(codigos) == 0 {
		return nombres
	}
	usuarios, err := s.usuarioRepo.FindByCoVens(ctx, codigos)
	if err != nil {
		// Listing still works without seller names.
		return nombres
	}
	for _, u := range usuarios {
		nombres[strings.TrimSpace(u.CoVen)] = u.Nombre
	}
	return nombres
}

func scopeCoVen(rol model.Rol, coVen string) string {
	if rol == model.RolVendedor {
		return coVen
	}
	return ""
}

func (s *pedidoService) pedidoToResponse(p *model.Pedido, cliente *model.Cliente, resolved []resolvedRenglon) *dto.PedidoResponse {
	resp := &dto.PedidoResponse{
		FactNum:    p.FactNum,
		CoCli:      strings.TrimSpace(p.CoCli),
		CoVen:      strings.TrimSpace(p.CoVen),
		FecEmis:    p.FecEmis.Format("2006-01-02"),
		FecVenc:    p.FecVenc.Format("2006-01-02"),
		Descrip:    p.Descrip,
		Comentario: p.Comentario,
		DirEnt:     p.DirEnt,
		TotBruto:   p.TotBruto,
		TotNeto:    p.TotNeto,
		IVA:        p.IVA,
		Total:      p.TotNeto.Add(p.IVA),
		Status:     p.Status,
		Anulada:    p.Anulada,
	}
	if cliente != nil {
		resp.Cliente = strings.TrimSpace(cliente.CliDes)
	}

	switch {
	case resolved != nil:
		for i, r := range resolved {
			resp.Renglones = append(resp.Renglones, dto.RenglonResponse{
				RengNum:   i + 1,
				CoArt:     r.coArt,
				Articulo:  r.artDes,
				Cantidad:  r.cantidad,
				PrecVta:   r.precVta,
				RengNeto:  r.rengNeto,
				UniVenta:  r.uniVenta,
				Promotion: r.promotion,
			})
		}
	default:
		for _, r := range p.Renglones {
			artDes := ""
			if r.Articulo != nil {
				artDes = strings.TrimSpace(r.Articulo.ArtDes)
			}
			resp.Renglones = append(resp.Renglones, dto.RenglonResponse{
				RengNum:   r.RengNum,
				CoArt:     strings.TrimSpace(r.CoArt),
				Articulo:  artDes,
				Cantidad:  r.TotalArt,
				PrecVta:   r.PrecVta,
				RengNeto:  r.RengNeto,
				UniVenta:  strings.TrimSpace(r.UniVenta),
				Promotion: r.Promotion,
			})
		}
	}
	return resp
}
