package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coremade/core-hp/internal/models"
)

// GormCodeRepository is a GORM implementation of CodeRepository
type GormCodeRepository struct {
	db *gorm.DB
}

// NewCodeRepository creates a new CodeRepository
func NewCodeRepository(db *gorm.DB) CodeRepository {
	return &GormCodeRepository{db: db}
}

// ListByGroup lists the codes of a group in display order
func (r *GormCodeRepository) ListByGroup(ctx context.Context, groupCode string, includeUnused bool) ([]models.Code, error) {
	query := r.db.WithContext(ctx).Where("group_code = ?", groupCode)
	if !includeUnused {
		query = query.Where("used = ?", true)
	}

	var codes []models.Code
	if err := query.Order("sort_order ASC").Order("code ASC").Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// Upsert creates a code or updates its name, order and usage flag
func (r *GormCodeRepository) Upsert(ctx context.Context, code *models.Code) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "group_code"}, {Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "sort_order", "used"}),
		}).
		Create(code).Error
}

// Delete deletes one code
func (r *GormCodeRepository) Delete(ctx context.Context, groupCode, code string) error {
	result := r.db.WithContext(ctx).
		Where("group_code = ? AND code = ?", groupCode, code).
		Delete(&models.Code{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
