package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Simoleans/profit/internal/model"
)

// VendedorRepository reads the ERP's seller and supervisor tables. User
// creation validates co_ven against these before a row enters the user store.
type VendedorRepository interface {
	FindByCoVen(ctx context.Context, coVen string) (*model.Vendedor, error)
	FindSupervisor(ctx context.Context, coSup string) (*model.Supervisor, error)
}

type vendedorRepo struct{ db *gorm.DB }

func NewVendedorRepository(db *gorm.DB) VendedorRepository { return &vendedorRepo{db: db} }

func (r *vendedorRepo) FindByCoVen(ctx context.Context, coVen string) (*model.Vendedor, error) {
	var v model.Vendedor
	err := r.db.WithContext(ctx).Where("co_ven = ?", coVen).First(&v).Error
	return &v, err
}

func (r *vendedorRepo) FindSupervisor(ctx context.Context, coSup string) (*model.Supervisor, error) {
	var s model.Supervisor
	err := r.db.WithContext(ctx).Where("co_sup = ?", coSup).First(&s).Error
	return &s, err
}
