package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Simoleans/profit/internal/model"
)

type MediaRepository interface {
	Create(ctx context.Context, m *model.Media) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Media, error)
	ListByRif(ctx context.Context, rif string) ([]model.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type mediaRepo struct{ db *gorm.DB }

func NewMediaRepository(db *gorm.DB) MediaRepository { return &mediaRepo{db: db} }

func (r *mediaRepo) Create(ctx context.Context, m *model.Media) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mediaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Media, error) {
	var m model.Media
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	return &m, err
}

func (r *mediaRepo) ListByRif(ctx context.Context, rif string) ([]model.Media, error) {
	var media []model.Media
	err := r.db.WithContext(ctx).Where("rif = ?", rif).Order("created_at").Find(&media).Error
	return media, err
}

func (r *mediaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Media{}).Error
}
