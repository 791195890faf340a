package service

// In-memory repository stubs shared by the service tests. Every stub returns
// a nil *gorm.DB so runTx executes the transaction body directly.

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Simoleans/profit/internal/dto"
	"github.com/Simoleans/profit/internal/model"
	"github.com/Simoleans/profit/internal/repository"
)

// ── PedidoRepository ─────────────────────────────────────────────────────────

type stubPedidoRepo struct {
	mu        sync.Mutex
	pedidos   map[int]*model.Pedido
	renglones map[int][]model.Renglon
	// dupsLeft makes CreateHeader fail with gorm.ErrDuplicatedKey that many
	// times, simulating a lost numbering race.
	dupsLeft int
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{
		pedidos:   make(map[int]*model.Pedido),
		renglones: make(map[int][]model.Renglon),
	}
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

func (r *stubPedidoRepo) NextFactNum(_ context.Context, _ *gorm.DB) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	max := 0
	for n := range r.pedidos {
		if n > max {
			max = n
		}
	}
	return max + 1, nil
}

func (r *stubPedidoRepo) CreateHeader(_ context.Context, _ *gorm.DB, p *model.Pedido) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dupsLeft > 0 {
		r.dupsLeft--
		return gorm.ErrDuplicatedKey
	}
	if _, ok := r.pedidos[p.FactNum]; ok {
		return gorm.ErrDuplicatedKey
	}
	cp := *p
	r.pedidos[p.FactNum] = &cp
	return nil
}

func (r *stubPedidoRepo) CreateRenglones(_ context.Context, _ *gorm.DB, renglones []model.Renglon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(renglones) == 0 {
		return nil
	}
	fn := renglones[0].FactNum
	r.renglones[fn] = append(r.renglones[fn], renglones...)
	return nil
}

func (r *stubPedidoRepo) DeleteRenglones(_ context.Context, _ *gorm.DB, factNum int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.renglones, factNum)
	return nil
}

func (r *stubPedidoRepo) UpdateHeader(_ context.Context, _ *gorm.DB, p *model.Pedido) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.pedidos[p.FactNum] = &cp
	return nil
}

func (r *stubPedidoRepo) FindByFactNum(_ context.Context, factNum int) (*model.Pedido, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pedidos[factNum]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	cp.Renglones = append([]model.Renglon(nil), r.renglones[factNum]...)
	return &cp, nil
}

func (r *stubPedidoRepo) UpdateStatus(_ context.Context, factNum int, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pedidos[factNum]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Status = status
	return nil
}

func (r *stubPedidoRepo) MarkAnulada(_ context.Context, factNum int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pedidos[factNum]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Anulada = true
	return nil
}

func (r *stubPedidoRepo) List(_ context.Context, coVen string, filter dto.PedidoFilter, limit int) ([]model.Pedido, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Pedido
	for _, p := range r.pedidos {
		if coVen != "" && p.CoVen != coVen {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubPedidoRepo) MonthStats(_ context.Context, _ string) ([]dto.EstadoPedidoStat, error) {
	return nil, nil
}

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

// ── ClienteRepository ────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[string]*model.Cliente
	temps    map[string]*model.ClienteTemp
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{
		clientes: make(map[string]*model.Cliente),
		temps:    make(map[string]*model.ClienteTemp),
	}
}

func (r *stubClienteRepo) FindByCoCli(_ context.Context, coCli string) (*model.Cliente, error) {
	c, ok := r.clientes[coCli]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) FindByCoClis(_ context.Context, coClis []string) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, cc := range coClis {
		if c, ok := r.clientes[cc]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubClienteRepo) Exists(_ context.Context, coCli string) (bool, error) {
	c, ok := r.clientes[coCli]
	return ok && !c.Inactivo, nil
}

func (r *stubClienteRepo) List(_ context.Context, coVen string, _ dto.ClienteFilter, _ int) ([]model.Cliente, int64, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		if c.Inactivo {
			continue
		}
		if coVen != "" && c.CoVen != coVen {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubClienteRepo) Autocomplete(_ context.Context, _, _ string, _ int) ([]model.Cliente, error) {
	return nil, nil
}

func (r *stubClienteRepo) Desactivar(_ context.Context, coCli string) error {
	c, ok := r.clientes[coCli]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Inactivo = true
	return nil
}

func (r *stubClienteRepo) Count(_ context.Context, coVen string) (int64, error) {
	var n int64
	for _, c := range r.clientes {
		if c.Inactivo {
			continue
		}
		if coVen != "" && c.CoVen != coVen {
			continue
		}
		n++
	}
	return n, nil
}

func (r *stubClienteRepo) SinPedidos(_ context.Context, _ string, _ int) ([]dto.ClienteSinPedidos, error) {
	return nil, nil
}

func (r *stubClienteRepo) SinVentasRecientes(_ context.Context, _ string, _ int) ([]dto.ClienteSinVentas, error) {
	return nil, nil
}

func (r *stubClienteRepo) CreateTemp(_ context.Context, c *model.ClienteTemp) error {
	if _, ok := r.temps[c.Rif]; ok {
		return gorm.ErrDuplicatedKey
	}
	cp := *c
	r.temps[c.Rif] = &cp
	return nil
}

func (r *stubClienteRepo) FindTempByRif(_ context.Context, rif string) (*model.ClienteTemp, error) {
	c, ok := r.temps[rif]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubClienteRepo) UpdateTemp(_ context.Context, c *model.ClienteTemp) error {
	cp := *c
	r.temps[c.Rif] = &cp
	return nil
}

func (r *stubClienteRepo) ListTemp(_ context.Context, coVen string, _ dto.ClienteFilter, _ int) ([]model.ClienteTemp, int64, error) {
	var out []model.ClienteTemp
	for _, c := range r.temps {
		if coVen != "" && c.CoVen != coVen {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubClienteRepo) RifEnUso(_ context.Context, rif string) (bool, error) {
	if _, ok := r.temps[rif]; ok {
		return true, nil
	}
	for _, c := range r.clientes {
		if c.Rif == rif {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── ArticuloRepository ───────────────────────────────────────────────────────

type stubArticuloRepo struct {
	articulos map[string]*model.Articulo
}

func newStubArticuloRepo() *stubArticuloRepo {
	return &stubArticuloRepo{articulos: make(map[string]*model.Articulo)}
}

func (r *stubArticuloRepo) FindByCoArt(_ context.Context, coArt string) (*model.Articulo, error) {
	a, ok := r.articulos[coArt]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *stubArticuloRepo) FindByCoArts(_ context.Context, coArts []string) ([]model.Articulo, error) {
	var out []model.Articulo
	for _, ca := range coArts {
		if a, ok := r.articulos[ca]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubArticuloRepo) List(_ context.Context, _ dto.ArticuloFilter, _ int) ([]model.Articulo, int64, error) {
	return nil, 0, nil
}

func (r *stubArticuloRepo) Autocomplete(_ context.Context, _ string, _ int) ([]model.Articulo, error) {
	return nil, nil
}

func (r *stubArticuloRepo) Promociones(_ context.Context, _ int) ([]model.Articulo, error) {
	return nil, nil
}

func (r *stubArticuloRepo) CountPromociones(_ context.Context) (int64, error) { return 0, nil }

func (r *stubArticuloRepo) Categorias(_ context.Context) ([]model.Categoria, error) { return nil, nil }

func (r *stubArticuloRepo) Lineas(_ context.Context) ([]model.Linea, error) { return nil, nil }

func (r *stubArticuloRepo) Sublineas(_ context.Context) ([]model.Sublinea, error) { return nil, nil }

var _ repository.ArticuloRepository = (*stubArticuloRepo)(nil)

// ── UsuarioRepository ────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[string]*model.Usuario
	nextID   uint
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[string]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if _, ok := r.usuarios[u.CoVen]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.usuarios[u.CoVen] = &cp
	return nil
}

func (r *stubUsuarioRepo) FindByCoVen(_ context.Context, coVen string) (*model.Usuario, error) {
	u, ok := r.usuarios[coVen]
	if !ok || !u.Activo {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUsuarioRepo) FindByCoVens(_ context.Context, coVens []string) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, cv := range coVens {
		if u, ok := r.usuarios[cv]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.Activo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	cp := *u
	r.usuarios[u.CoVen] = &cp
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uint) error {
	for _, u := range r.usuarios {
		if u.ID == id {
			u.Activo = false
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── VendedorRepository ───────────────────────────────────────────────────────

type stubVendedorRepo struct {
	vendedores   map[string]*model.Vendedor
	supervisores map[string]*model.Supervisor
}

func newStubVendedorRepo() *stubVendedorRepo {
	return &stubVendedorRepo{
		vendedores:   make(map[string]*model.Vendedor),
		supervisores: make(map[string]*model.Supervisor),
	}
}

func (r *stubVendedorRepo) FindByCoVen(_ context.Context, coVen string) (*model.Vendedor, error) {
	v, ok := r.vendedores[coVen]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVendedorRepo) FindSupervisor(_ context.Context, coSup string) (*model.Supervisor, error) {
	s, ok := r.supervisores[coSup]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

var _ repository.VendedorRepository = (*stubVendedorRepo)(nil)

// ── DocumCCRepository ────────────────────────────────────────────────────────

type stubDocumCCRepo struct {
	docs     []model.DocumCC
	abiertas int64
}

func (r *stubDocumCCRepo) Pendientes(_ context.Context, coVen string) ([]model.DocumCC, error) {
	if coVen == "" {
		return r.docs, nil
	}
	var out []model.DocumCC
	for _, d := range r.docs {
		if d.CoVen == coVen {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *stubDocumCCRepo) PendientesPorCliente(_ context.Context, coCli string, limit int) ([]model.DocumCC, error) {
	var out []model.DocumCC
	for _, d := range r.docs {
		if d.CoCli == coCli {
			out = append(out, d)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *stubDocumCCRepo) CountFacturasAbiertas(_ context.Context, _ string) (int64, error) {
	return r.abiertas, nil
}

func (r *stubDocumCCRepo) CountFacturasAbiertasSupervisor(_ context.Context, _ string) (int64, error) {
	return r.abiertas, nil
}

var _ repository.DocumCCRepository = (*stubDocumCCRepo)(nil)

// ── MediaRepository ──────────────────────────────────────────────────────────

type stubMediaRepo struct {
	media map[uuid.UUID]*model.Media
}

func newStubMediaRepo() *stubMediaRepo {
	return &stubMediaRepo{media: make(map[uuid.UUID]*model.Media)}
}

func (r *stubMediaRepo) Create(_ context.Context, m *model.Media) error {
	cp := *m
	r.media[m.ID] = &cp
	return nil
}

func (r *stubMediaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Media, error) {
	m, ok := r.media[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubMediaRepo) ListByRif(_ context.Context, rif string) ([]model.Media, error) {
	var out []model.Media
	for _, m := range r.media {
		if m.Rif == rif {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMediaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.media, id)
	return nil
}

var _ repository.MediaRepository = (*stubMediaRepo)(nil)

// ── NotificacionService ──────────────────────────────────────────────────────

// fakeNotificador records notifications so tests can assert dispatch without
// Redis.
type fakeNotificador struct {
	mu       sync.Mutex
	llamadas []notificacionRegistrada
}

type notificacionRegistrada struct {
	factNum int
	status  string
	email   string
}

func (f *fakeNotificador) NotificarPedido(_ context.Context, pedido *model.Pedido, cliente *model.Cliente) {
	email := ""
	if cliente != nil {
		email = cliente.Email
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.llamadas = append(f.llamadas, notificacionRegistrada{
		factNum: pedido.FactNum,
		status:  pedido.Status,
		email:   email,
	})
}

var _ NotificacionService = (*fakeNotificador)(nil)
