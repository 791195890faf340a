package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Simoleans/profit/internal/dto"
	"github.com/Simoleans/profit/internal/model"
)

type PedidoRepository interface {
	NextFactNum(ctx context.Context, tx *gorm.DB) (int, error)
	CreateHeader(ctx context.Context, tx *gorm.DB, p *model.Pedido) error
	CreateRenglones(ctx context.Context, tx *gorm.DB, renglones []model.Renglon) error
	DeleteRenglones(ctx context.Context, tx *gorm.DB, factNum int) error
	UpdateHeader(ctx context.Context, tx *gorm.DB, p *model.Pedido) error
	FindByFactNum(ctx context.Context, factNum int) (*model.Pedido, error)
	UpdateStatus(ctx context.Context, factNum int, status string) error
	MarkAnulada(ctx context.Context, factNum int) error
	List(ctx context.Context, coVen string, filter dto.PedidoFilter, limit int) ([]model.Pedido, int64, error)
	MonthStats(ctx context.Context, coVen string) ([]dto.EstadoPedidoStat, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) DB() *gorm.DB { return r.db }

// NextFactNum computes the next correlative under an exclusive table lock.
// fact_num is not an identity column in the ERP schema; the lock is held
// until the surrounding transaction commits, which serializes creations.
func (r *pedidoRepo) NextFactNum(ctx context.Context, tx *gorm.DB) (int, error) {
	var num int
	err := tx.WithContext(ctx).
		Raw("SELECT ISNULL(MAX(fact_num), 0) + 1 FROM encabezado WITH (TABLOCKX)").
		Scan(&num).Error
	return num, err
}

func (r *pedidoRepo) CreateHeader(ctx context.Context, tx *gorm.DB, p *model.Pedido) error {
	return tx.WithContext(ctx).Omit("Renglones", "Cliente").Create(p).Error
}

func (r *pedidoRepo) CreateRenglones(ctx context.Context, tx *gorm.DB, renglones []model.Renglon) error {
	return tx.WithContext(ctx).Omit("Articulo").Create(&renglones).Error
}

func (r *pedidoRepo) DeleteRenglones(ctx context.Context, tx *gorm.DB, factNum int) error {
	return tx.WithContext(ctx).Where("fact_num = ?", factNum).Delete(&model.Renglon{}).Error
}

func (r *pedidoRepo) UpdateHeader(ctx context.Context, tx *gorm.DB, p *model.Pedido) error {
	return tx.WithContext(ctx).Omit("Renglones", "Cliente").Save(p).Error
}

func (r *pedidoRepo) FindByFactNum(ctx context.Context, factNum int) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Renglones", func(db *gorm.DB) *gorm.DB { return db.Order("reng_num") }).
		Preload("Renglones.Articulo").
		Preload("Cliente").
		Where("fact_num = ?", factNum).
		First(&p).Error
	return &p, err
}

func (r *pedidoRepo) UpdateStatus(ctx context.Context, factNum int, status string) error {
	return r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("fact_num = ?", factNum).
		Update("status", status).Error
}

func (r *pedidoRepo) MarkAnulada(ctx context.Context, factNum int) error {
	return r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("fact_num = ?", factNum).
		Update("anulada", 1).Error
}

// List returns one page of orders newest-first. coVen empty = all sellers
// (admin/supervisor view). Search matches the exact number or the client
// code/name as substring; the name lives on clientes, hence the join.
func (r *pedidoRepo) List(ctx context.Context, coVen string, filter dto.PedidoFilter, limit int) ([]model.Pedido, int64, error) {
	var pedidos []model.Pedido
	var total int64
	offset := (filter.Page - 1) * limit

	q := r.db.WithContext(ctx).Model(&model.Pedido{})

	if coVen != "" {
		q = q.Where("encabezado.co_ven = ?", coVen)
	}
	if filter.Status != "" {
		q = q.Where("encabezado.status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Joins("LEFT JOIN clientes ON clientes.co_cli = encabezado.co_cli").
			Where("CAST(encabezado.fact_num AS VARCHAR) = ? OR encabezado.co_cli LIKE ? OR clientes.cli_des LIKE ?",
				filter.Search, like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Cliente").
		Order("encabezado.fact_num DESC").
		Offset(offset).Limit(limit).
		Find(&pedidos).Error

	return pedidos, total, err
}

// MonthStats aggregates the calendar month's orders by status. Voided orders
// are excluded from the amounts.
func (r *pedidoRepo) MonthStats(ctx context.Context, coVen string) ([]dto.EstadoPedidoStat, error) {
	var stats []dto.EstadoPedidoStat
	q := r.db.WithContext(ctx).Model(&model.Pedido{}).
		Select("status, COUNT(*) AS cantidad, SUM(tot_neto + iva) AS monto").
		Where("anulada = 0").
		Where("YEAR(fec_emis) = YEAR(GETDATE()) AND MONTH(fec_emis) = MONTH(GETDATE())")
	if coVen != "" {
		q = q.Where("co_ven = ?", coVen)
	}
	err := q.Group("status").Scan(&stats).Error
	return stats, err
}
