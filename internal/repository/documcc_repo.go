package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Simoleans/profit/internal/model"
)

// DocumCCRepository reads accounts-receivable documents. All balance math
// (signing, per-document rounding, overdue split) happens in the service
// layer; the repository only narrows the row set.
type DocumCCRepository interface {
	Pendientes(ctx context.Context, coVen string) ([]model.DocumCC, error)
	PendientesPorCliente(ctx context.Context, coCli string, limit int) ([]model.DocumCC, error)
	CountFacturasAbiertas(ctx context.Context, coVen string) (int64, error)
	CountFacturasAbiertasSupervisor(ctx context.Context, coSup string) (int64, error)
}

type documCCRepo struct{ db *gorm.DB }

func NewDocumCCRepository(db *gorm.DB) DocumCCRepository { return &documCCRepo{db: db} }

// Pendientes returns open reference-currency documents, optionally narrowed
// to one seller. The moneda column comes char-padded, hence the RTRIM.
func (r *documCCRepo) Pendientes(ctx context.Context, coVen string) ([]model.DocumCC, error) {
	var docs []model.DocumCC
	q := r.db.WithContext(ctx).
		Preload("Cliente").
		Where("saldo <> 0 AND anulado = 0 AND RTRIM(moneda) = ?", model.MonedaReferencia)
	if coVen != "" {
		q = q.Where("co_ven = ?", coVen)
	}
	err := q.Order("co_ven, co_cli, fec_emis").Find(&docs).Error
	return docs, err
}

func (r *documCCRepo) PendientesPorCliente(ctx context.Context, coCli string, limit int) ([]model.DocumCC, error) {
	var docs []model.DocumCC
	err := r.db.WithContext(ctx).
		Where("co_cli = ? AND saldo <> 0 AND anulado = 0 AND RTRIM(moneda) = ?", coCli, model.MonedaReferencia).
		Order("fec_emis").Limit(limit).
		Find(&docs).Error
	return docs, err
}

// CountFacturasAbiertas counts open invoices at the main branch, skipping
// rows flagged as tax adjustments (campo8 = 'IVA').
func (r *documCCRepo) CountFacturasAbiertas(ctx context.Context, coVen string) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Factura{}).
		Where("saldo > 0 AND anulada = 0 AND co_sucu = ?", "001").
		Where("ISNULL(RTRIM(campo8), '') <> ?", "IVA")
	if coVen != "" {
		q = q.Where("co_ven = ?", coVen)
	}
	err := q.Count(&n).Error
	return n, err
}

// CountFacturasAbiertasSupervisor counts open invoices across every seller
// reporting to the supervisor (vendedor.campo1 holds the supervisor code).
func (r *documCCRepo) CountFacturasAbiertasSupervisor(ctx context.Context, coSup string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Factura{}).
		Joins("JOIN vendedor v ON v.co_ven = factura.co_ven").
		Where("RTRIM(v.campo1) = ?", coSup).
		Where("factura.saldo > 0 AND factura.anulada = 0 AND factura.co_sucu = ?", "001").
		Where("ISNULL(RTRIM(factura.campo8), '') <> ?", "IVA").
		Count(&n).Error
	return n, err
}
