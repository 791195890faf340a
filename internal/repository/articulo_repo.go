package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Simoleans/profit/internal/dto"
	"github.com/Simoleans/profit/internal/model"
)

type ArticuloRepository interface {
	FindByCoArt(ctx context.Context, coArt string) (*model.Articulo, error)
	FindByCoArts(ctx context.Context, coArts []string) ([]model.Articulo, error)
	List(ctx context.Context, filter dto.ArticuloFilter, limit int) ([]model.Articulo, int64, error)
	Autocomplete(ctx context.Context, term string, limit int) ([]model.Articulo, error)
	Promociones(ctx context.Context, limit int) ([]model.Articulo, error)
	CountPromociones(ctx context.Context) (int64, error)
	Categorias(ctx context.Context) ([]model.Categoria, error)
	Lineas(ctx context.Context) ([]model.Linea, error)
	Sublineas(ctx context.Context) ([]model.Sublinea, error)
}

type articuloRepo struct{ db *gorm.DB }

func NewArticuloRepository(db *gorm.DB) ArticuloRepository { return &articuloRepo{db: db} }

func (r *articuloRepo) FindByCoArt(ctx context.Context, coArt string) (*model.Articulo, error) {
	var a model.Articulo
	err := r.db.WithContext(ctx).Where("co_art = ?", coArt).First(&a).Error
	return &a, err
}

func (r *articuloRepo) FindByCoArts(ctx context.Context, coArts []string) ([]model.Articulo, error) {
	var articulos []model.Articulo
	err := r.db.WithContext(ctx).Where("co_art IN ?", coArts).Find(&articulos).Error
	return articulos, err
}

func (r *articuloRepo) List(ctx context.Context, filter dto.ArticuloFilter, limit int) ([]model.Articulo, int64, error) {
	var articulos []model.Articulo
	var total int64
	offset := (filter.Page - 1) * limit

	q := r.db.WithContext(ctx).Model(&model.Articulo{}).Where("anulado = 0")
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("co_art LIKE ? OR art_des LIKE ?", like, like)
	}
	if filter.CoLin != "" {
		q = q.Where("co_lin = ?", filter.CoLin)
	}
	if filter.CoCat != "" {
		q = q.Where("RTRIM(co_cat) = ?", filter.CoCat)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Linea").Order("art_des").Offset(offset).Limit(limit).Find(&articulos).Error
	return articulos, total, err
}

func (r *articuloRepo) Autocomplete(ctx context.Context, term string, limit int) ([]model.Articulo, error) {
	var articulos []model.Articulo
	like := "%" + term + "%"
	err := r.db.WithContext(ctx).
		Where("anulado = 0 AND stock_act > 0").
		Where("co_art LIKE ? OR art_des LIKE ?", like, like).
		Order("art_des").Limit(limit).
		Find(&articulos).Error
	return articulos, err
}

func (r *articuloRepo) Promociones(ctx context.Context, limit int) ([]model.Articulo, error) {
	var articulos []model.Articulo
	err := r.db.WithContext(ctx).
		Where("anulado = 0 AND RTRIM(co_cat) = ? AND stock_act > 0", model.CategoriaPromocion).
		Order("art_des").Limit(limit).
		Find(&articulos).Error
	return articulos, err
}

func (r *articuloRepo) CountPromociones(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Articulo{}).
		Where("anulado = 0 AND RTRIM(co_cat) = ? AND stock_act > 0", model.CategoriaPromocion).
		Count(&n).Error
	return n, err
}

func (r *articuloRepo) Categorias(ctx context.Context) ([]model.Categoria, error) {
	var cats []model.Categoria
	err := r.db.WithContext(ctx).Order("cat_des").Find(&cats).Error
	return cats, err
}

func (r *articuloRepo) Lineas(ctx context.Context) ([]model.Linea, error) {
	var lineas []model.Linea
	err := r.db.WithContext(ctx).Order("lin_des").Find(&lineas).Error
	return lineas, err
}

func (r *articuloRepo) Sublineas(ctx context.Context) ([]model.Sublinea, error) {
	var subs []model.Sublinea
	err := r.db.WithContext(ctx).Order("subl_des").Find(&subs).Error
	return subs, err
}
