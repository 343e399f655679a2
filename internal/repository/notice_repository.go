package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/coremade/core-hp/internal/database"
	"github.com/coremade/core-hp/internal/models"
	"github.com/coremade/core-hp/internal/utils"
)

// GormNoticeRepository is a GORM implementation of NoticeRepository
type GormNoticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository creates a new NoticeRepository
func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &GormNoticeRepository{db: db}
}

func (r *GormNoticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

func (r *GormNoticeRepository) FindByID(ctx context.Context, id uint64) (*models.Notice, error) {
	var notice models.Notice
	if err := r.db.WithContext(ctx).First(&notice, id).Error; err != nil {
		return nil, err
	}
	return &notice, nil
}

// List returns pinned notices first, then the newest
func (r *GormNoticeRepository) List(ctx context.Context, params utils.PaginationParams) ([]models.Notice, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Notice{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notices []models.Notice
	if err := r.db.WithContext(ctx).
		Order("pinned DESC").
		Order("created_at DESC").
		Order("id DESC").
		Scopes(database.Paginate(params)).
		Find(&notices).Error; err != nil {
		return nil, 0, err
	}

	return notices, total, nil
}

func (r *GormNoticeRepository) Update(ctx context.Context, notice *models.Notice) error {
	return r.db.WithContext(ctx).Save(notice).Error
}

func (r *GormNoticeRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&models.Notice{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementViews bumps the view counter without touching updated_at
func (r *GormNoticeRepository) IncrementViews(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).
		Model(&models.Notice{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}
