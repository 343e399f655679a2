package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/coremade/core-hp/internal/filter"
	"github.com/coremade/core-hp/internal/models"
	"github.com/coremade/core-hp/internal/utils"
)

// ErrStoreUnavailable marks failures to reach or query the store. Callers may retry them.
var ErrStoreUnavailable = errors.New("store unavailable")

// IsRetryable reports whether err is a store failure worth retrying.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

func storeError(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}

// DeveloperOrder selects the ordering of a developer listing. Both orders end
// with the developer id so that pages are stable.
type DeveloperOrder int

const (
	// OrderNewestFirst orders by creation time, newest first.
	OrderNewestFirst DeveloperOrder = iota
	// OrderByName orders alphabetically by name.
	OrderByName
)

// DeveloperFilter holds the predicate, ordering and window of a developer listing
type DeveloperFilter struct {
	Where   filter.Predicate
	OrderBy DeveloperOrder
	Offset  int
	Limit   int
}

// DeveloperRepository defines the interface for developer data access
type DeveloperRepository interface {
	// Create creates a new developer
	Create(ctx context.Context, developer *models.Developer) error

	// FindByID finds a developer by ID with optional preloading
	FindByID(ctx context.Context, id string, preload ...string) (*models.Developer, error)

	// FindByEmail finds a developer by email
	FindByEmail(ctx context.Context, email string) (*models.Developer, error)

	// List returns one page of distinct developers matching the filter and the
	// exact number of distinct developers matching it
	List(ctx context.Context, filter DeveloperFilter) ([]models.Developer, int64, error)

	// Update updates a developer without touching its associations
	Update(ctx context.Context, developer *models.Developer) error

	// Delete deletes a developer and its assignments, and with cascade also its skill records
	Delete(ctx context.Context, id string, cascade bool) error

	// CountSkillRecords counts the skill records of a developer
	CountSkillRecords(ctx context.Context, developerID string) (int64, error)
}

// SkillRecordRepository defines the interface for skill history data access
type SkillRecordRepository interface {
	// Create creates a new skill record
	Create(ctx context.Context, record *models.SkillRecord) error

	// Exists reports whether the developer already has a record for the start month
	Exists(ctx context.Context, developerID, startYM string) (bool, error)

	// ListByDeveloper lists a developer's records, latest first
	ListByDeveloper(ctx context.Context, developerID string) ([]models.SkillRecord, error)

	// Delete deletes one record
	Delete(ctx context.Context, developerID, startYM string) error
}

// ProjectFilter holds filtering options for listing projects
type ProjectFilter struct {
	Status *models.ProjectStatus
	Name   string
	Offset int
	Limit  int
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, project *models.Project) error

	// FindByID finds a project by ID
	FindByID(ctx context.Context, id uint64) (*models.Project, error)

	// List retrieves projects with filtering and pagination
	List(ctx context.Context, filter ProjectFilter) ([]models.Project, int64, error)

	// Update updates a project
	Update(ctx context.Context, project *models.Project) error

	// Delete soft deletes a project and removes its assignments
	Delete(ctx context.Context, id uint64) error

	// Assign creates or replaces a developer assignment
	Assign(ctx context.Context, assignment *models.ProjectAssignment) error

	// ListAssignments lists the assignments of a project with developers preloaded
	ListAssignments(ctx context.Context, projectID uint64) ([]models.ProjectAssignment, error)

	// RemoveAssignment removes a developer from a project
	RemoveAssignment(ctx context.Context, projectID uint64, developerID string) error
}

// NoticeRepository defines the interface for notice board data access
type NoticeRepository interface {
	Create(ctx context.Context, notice *models.Notice) error
	FindByID(ctx context.Context, id uint64) (*models.Notice, error)
	List(ctx context.Context, params utils.PaginationParams) ([]models.Notice, int64, error)
	Update(ctx context.Context, notice *models.Notice) error
	Delete(ctx context.Context, id uint64) error
	IncrementViews(ctx context.Context, id uint64) error
}

// CodeRepository defines the interface for reference code data access
type CodeRepository interface {
	ListByGroup(ctx context.Context, groupCode string, includeUnused bool) ([]models.Code, error)
	Upsert(ctx context.Context, code *models.Code) error
	Delete(ctx context.Context, groupCode, code string) error
}
