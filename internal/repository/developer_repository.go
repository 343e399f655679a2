package repository

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coremade/core-hp/internal/database"
	"github.com/coremade/core-hp/internal/filter"
	"github.com/coremade/core-hp/internal/models"
	"github.com/coremade/core-hp/internal/utils"
)

const skillRecordJoin = "LEFT JOIN skill_records ON skill_records.developer_id = developers.id"

// GormDeveloperRepository is a GORM implementation of DeveloperRepository
type GormDeveloperRepository struct {
	db   *gorm.DB
	gate *database.Gate
}

// NewDeveloperRepository creates a new DeveloperRepository. Listings hold a
// gate slot for their whole duration.
func NewDeveloperRepository(db *gorm.DB, gate *database.Gate) DeveloperRepository {
	return &GormDeveloperRepository{db: db, gate: gate}
}

// Create creates a new developer
func (r *GormDeveloperRepository) Create(ctx context.Context, developer *models.Developer) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(developer).Error
}

// FindByID finds a developer by ID with optional preloading
func (r *GormDeveloperRepository) FindByID(ctx context.Context, id string, preload ...string) (*models.Developer, error) {
	var developer models.Developer
	query := r.db.WithContext(ctx)

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Where("id = ?", id).First(&developer).Error; err != nil {
		return nil, err
	}

	return &developer, nil
}

// FindByEmail finds a developer by email
func (r *GormDeveloperRepository) FindByEmail(ctx context.Context, email string) (*models.Developer, error) {
	var developer models.Developer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&developer).Error; err != nil {
		return nil, err
	}
	return &developer, nil
}

// List returns one page of distinct developers and the exact distinct total.
//
// Predicates over skill records either arrive as EXISTS subqueries, which never
// multiply developer rows, or read joined skill_records columns directly, in
// which case the join is a LEFT JOIN and both the page and the count are reduced
// to distinct developer ids.
func (r *GormDeveloperRepository) List(ctx context.Context, f DeveloperFilter) ([]models.Developer, int64, error) {
	release, err := r.gate.Acquire(ctx)
	if err != nil {
		if errors.Is(err, database.ErrPoolExhausted) {
			return nil, 0, storeError(err)
		}
		return nil, 0, err
	}
	defer release()

	// Queries run to completion even when the caller goes away.
	ctx = context.WithoutCancel(ctx)
	joined := filter.References(f.Where, filter.SkillRecordTable)

	var (
		developers []models.Developer
		total      int64
		g          errgroup.Group
	)

	g.Go(func() error {
		query := r.filtered(ctx, f.Where, joined)
		if joined {
			query = query.Distinct("developers.id")
		}
		return query.Count(&total).Error
	})

	g.Go(func() error {
		query := r.filtered(ctx, f.Where, joined)
		if joined {
			query = query.Distinct("developers.*")
		}
		switch f.OrderBy {
		case OrderByName:
			query = query.Order("developers.name ASC").Order("developers.id ASC")
		default:
			query = query.Order("developers.created_at DESC").Order("developers.id ASC")
		}
		return query.Scopes(database.Paginate(utils.PaginationParams{Offset: f.Offset, Limit: f.Limit})).Find(&developers).Error
	})

	if err := g.Wait(); err != nil {
		return nil, 0, storeError(err)
	}

	return developers, total, nil
}

func (r *GormDeveloperRepository) filtered(ctx context.Context, where filter.Predicate, joined bool) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Developer{})
	if joined {
		query = query.Joins(skillRecordJoin)
	}
	if sql, args := filter.ToSQL(where); sql != "" {
		query = query.Where(sql, args...)
	}
	return query
}

// Update updates a developer without touching its associations
func (r *GormDeveloperRepository) Update(ctx context.Context, developer *models.Developer) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(developer).Error
}

// Delete deletes a developer and its project assignments. Skill records are
// only deleted with cascade; otherwise the caller makes sure none remain.
func (r *GormDeveloperRepository) Delete(ctx context.Context, id string, cascade bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if cascade {
			if err := tx.Where("developer_id = ?", id).Delete(&models.SkillRecord{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("developer_id = ?", id).Delete(&models.ProjectAssignment{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Developer{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// CountSkillRecords counts the skill records of a developer
func (r *GormDeveloperRepository) CountSkillRecords(ctx context.Context, developerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SkillRecord{}).
		Where("developer_id = ?", developerID).
		Count(&count).Error
	return count, err
}
