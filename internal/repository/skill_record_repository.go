package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/coremade/core-hp/internal/models"
)

// GormSkillRecordRepository is a GORM implementation of SkillRecordRepository
type GormSkillRecordRepository struct {
	db *gorm.DB
}

// NewSkillRecordRepository creates a new SkillRecordRepository
func NewSkillRecordRepository(db *gorm.DB) SkillRecordRepository {
	return &GormSkillRecordRepository{db: db}
}

// Create creates a new skill record
func (r *GormSkillRecordRepository) Create(ctx context.Context, record *models.SkillRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Exists reports whether the developer already has a record for the start month
func (r *GormSkillRecordRepository) Exists(ctx context.Context, developerID, startYM string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SkillRecord{}).
		Where("developer_id = ? AND start_ym = ?", developerID, startYM).
		Count(&count).Error
	return count > 0, err
}

// ListByDeveloper lists a developer's records, latest first
func (r *GormSkillRecordRepository) ListByDeveloper(ctx context.Context, developerID string) ([]models.SkillRecord, error) {
	var records []models.SkillRecord
	if err := r.db.WithContext(ctx).
		Where("developer_id = ?", developerID).
		Order("start_ym DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Delete deletes one record
func (r *GormSkillRecordRepository) Delete(ctx context.Context, developerID, startYM string) error {
	result := r.db.WithContext(ctx).
		Where("developer_id = ? AND start_ym = ?", developerID, startYM).
		Delete(&models.SkillRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
