package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Simoleans/profit/internal/model"
)

// UsuarioRepository talks to the MySQL user store. Seller and supervisor
// lookups hit the ERP connection instead, see VendedorRepository.
type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByCoVen(ctx context.Context, coVen string) (*model.Usuario, error)
	FindByCoVens(ctx context.Context, coVens []string) ([]model.Usuario, error)
	FindByID(ctx context.Context, id uint) (*model.Usuario, error)
	List(ctx context.Context) ([]model.Usuario, error)
	Update(ctx context.Context, u *model.Usuario) error
	SoftDelete(ctx context.Context, id uint) error
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) FindByCoVen(ctx context.Context, coVen string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("co_ven = ? AND activo = true", coVen).First(&u).Error
	return &u, err
}

// FindByCoVens batch-resolves sellers for list views in one round trip.
func (r *usuarioRepo) FindByCoVens(ctx context.Context, coVens []string) ([]model.Usuario, error) {
	var users []model.Usuario
	err := r.db.WithContext(ctx).Where("co_ven IN ?", coVens).Find(&users).Error
	return users, err
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uint) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, id).Error
	return &u, err
}

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	var users []model.Usuario
	err := r.db.WithContext(ctx).Where("activo = true").Order("nombre").Find(&users).Error
	return users, err
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *usuarioRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).Where("id = ?", id).Update("activo", false).Error
}
