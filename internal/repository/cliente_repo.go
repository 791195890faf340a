package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Simoleans/profit/internal/dto"
	"github.com/Simoleans/profit/internal/model"
)

type ClienteRepository interface {
	FindByCoCli(ctx context.Context, coCli string) (*model.Cliente, error)
	FindByCoClis(ctx context.Context, coClis []string) ([]model.Cliente, error)
	Exists(ctx context.Context, coCli string) (bool, error)
	List(ctx context.Context, coVen string, filter dto.ClienteFilter, limit int) ([]model.Cliente, int64, error)
	Autocomplete(ctx context.Context, coVen, term string, limit int) ([]model.Cliente, error)
	Desactivar(ctx context.Context, coCli string) error
	Count(ctx context.Context, coVen string) (int64, error)
	SinPedidos(ctx context.Context, coVen string, limit int) ([]dto.ClienteSinPedidos, error)
	SinVentasRecientes(ctx context.Context, coVen string, limit int) ([]dto.ClienteSinVentas, error)

	// Pending clients (clientes_temp), keyed by rif.
	CreateTemp(ctx context.Context, c *model.ClienteTemp) error
	FindTempByRif(ctx context.Context, rif string) (*model.ClienteTemp, error)
	UpdateTemp(ctx context.Context, c *model.ClienteTemp) error
	ListTemp(ctx context.Context, coVen string, filter dto.ClienteFilter, limit int) ([]model.ClienteTemp, int64, error)
	RifEnUso(ctx context.Context, rif string) (bool, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) FindByCoCli(ctx context.Context, coCli string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Where("co_cli = ?", coCli).First(&c).Error
	return &c, err
}

func (r *clienteRepo) FindByCoClis(ctx context.Context, coClis []string) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Where("co_cli IN ?", coClis).Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Exists(ctx context.Context, coCli string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("co_cli = ? AND inactivo = 0", coCli).
		Count(&n).Error
	return n > 0, err
}

func (r *clienteRepo) List(ctx context.Context, coVen string, filter dto.ClienteFilter, limit int) ([]model.Cliente, int64, error) {
	var clientes []model.Cliente
	var total int64
	offset := (filter.Page - 1) * limit

	q := r.db.WithContext(ctx).Model(&model.Cliente{}).Where("inactivo = 0")
	if coVen != "" {
		q = q.Where("co_ven = ?", coVen)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("co_cli LIKE ? OR cli_des LIKE ? OR rif LIKE ?", like, like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("cli_des").Offset(offset).Limit(limit).Find(&clientes).Error
	return clientes, total, err
}

func (r *clienteRepo) Autocomplete(ctx context.Context, coVen, term string, limit int) ([]model.Cliente, error) {
	var clientes []model.Cliente
	like := "%" + term + "%"
	q := r.db.WithContext(ctx).Where("inactivo = 0").
		Where("co_cli LIKE ? OR cli_des LIKE ?", like, like)
	if coVen != "" {
		q = q.Where("co_ven = ?", coVen)
	}
	err := q.Order("cli_des").Limit(limit).Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Desactivar(ctx context.Context, coCli string) error {
	return r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("co_cli = ?", coCli).
		Update("inactivo", 1).Error
}

func (r *clienteRepo) Count(ctx context.Context, coVen string) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Cliente{}).Where("inactivo = 0")
	if coVen != "" {
		q = q.Where("co_ven = ?", coVen)
	}
	err := q.Count(&n).Error
	return n, err
}

// SinPedidos lists active clients with no rows in encabezado at all.
func (r *clienteRepo) SinPedidos(ctx context.Context, coVen string, limit int) ([]dto.ClienteSinPedidos, error) {
	var rows []dto.ClienteSinPedidos
	sql := `
		SELECT TOP (?) c.co_cli, c.cli_des, ISNULL(z.zon_des, '') AS zona, c.telefonos AS telefno
		FROM clientes c
		LEFT JOIN zona z ON z.co_zon = c.co_zon
		WHERE c.inactivo = 0
		  AND NOT EXISTS (SELECT 1 FROM encabezado e WHERE e.co_cli = c.co_cli)`
	args := []interface{}{limit}
	if coVen != "" {
		sql += " AND c.co_ven = ?"
		args = append(args, coVen)
	}
	sql += " ORDER BY c.cli_des"
	err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error
	return rows, err
}

// SinVentasRecientes lists clients whose last invoice is older than three
// months, with their monthly invoiced average over the trailing year.
func (r *clienteRepo) SinVentasRecientes(ctx context.Context, coVen string, limit int) ([]dto.ClienteSinVentas, error) {
	var rows []dto.ClienteSinVentas
	sql := `
		SELECT TOP (?) c.co_cli, c.cli_des,
		       CONVERT(VARCHAR(10), MAX(f.fec_emis), 120) AS ultima_venta,
		       ROUND(SUM(f.tot_neto) / 12.0, 2) AS promedio_venta
		FROM clientes c
		JOIN factura f ON f.co_cli = c.co_cli AND f.anulada = 0
		WHERE c.inactivo = 0`
	args := []interface{}{limit}
	if coVen != "" {
		sql += " AND c.co_ven = ?"
		args = append(args, coVen)
	}
	sql += `
		GROUP BY c.co_cli, c.cli_des
		HAVING MAX(f.fec_emis) < DATEADD(MONTH, -3, GETDATE())
		ORDER BY MAX(f.fec_emis)`
	err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error
	return rows, err
}

// ─── clientes_temp ───────────────────────────────────────────────────────────

func (r *clienteRepo) CreateTemp(ctx context.Context, c *model.ClienteTemp) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindTempByRif(ctx context.Context, rif string) (*model.ClienteTemp, error) {
	var c model.ClienteTemp
	err := r.db.WithContext(ctx).Where("rif = ?", rif).First(&c).Error
	return &c, err
}

func (r *clienteRepo) UpdateTemp(ctx context.Context, c *model.ClienteTemp) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) ListTemp(ctx context.Context, coVen string, filter dto.ClienteFilter, limit int) ([]model.ClienteTemp, int64, error) {
	var clientes []model.ClienteTemp
	var total int64
	offset := (filter.Page - 1) * limit

	q := r.db.WithContext(ctx).Model(&model.ClienteTemp{}).Where("status = 1")
	if coVen != "" {
		q = q.Where("co_ven = ?", coVen)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("rif LIKE ? OR cli_des LIKE ?", like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&clientes).Error
	return clientes, total, err
}

// RifEnUso checks both the pending and the confirmed table; a rif already
// confirmed must not be re-registered as pending.
func (r *clienteRepo) RifEnUso(ctx context.Context, rif string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.ClienteTemp{}).Where("rif = ?", rif).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	if err := r.db.WithContext(ctx).Model(&model.Cliente{}).Where("RTRIM(rif) = ?", rif).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
