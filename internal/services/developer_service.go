package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/coremade/core-hp/internal/config"
	"github.com/coremade/core-hp/internal/constants"
	"github.com/coremade/core-hp/internal/filter"
	"github.com/coremade/core-hp/internal/models"
	"github.com/coremade/core-hp/internal/repository"
	"github.com/coremade/core-hp/internal/utils"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrDeveloperNotFound        = errors.New("developer not found")
	ErrNameRequired             = errors.New("name is required")
	ErrEmailRequired            = errors.New("email is required")
	ErrEmailTaken               = errors.New("email is already registered")
	ErrDeveloperHasSkillRecords = errors.New("developer still has skill records")
	ErrSkillRecordNotFound      = errors.New("skill record not found")
	ErrSkillRecordExists        = errors.New("a skill record for this start month already exists")
	ErrInvalidYearMonth         = errors.New("year-month must be formatted as YYYY-MM")
	ErrInvalidPeriod            = errors.New("end month is before start month")
)

var yearMonthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// DeveloperServiceConfig holds the settings that shape developer listings and deletes
type DeveloperServiceConfig struct {
	DefaultPageSize int
	SkillMatchMode  filter.SkillMatchMode
	DeletePolicy    string
}

// DeveloperServiceConfigFrom derives the service settings from application config
func DeveloperServiceConfigFrom(cfg *config.Config) DeveloperServiceConfig {
	return DeveloperServiceConfig{
		DefaultPageSize: cfg.DefaultPageSize,
		SkillMatchMode:  filter.ParseSkillMatchMode(cfg.SkillMatchMode),
		DeletePolicy:    cfg.DeveloperDeletePolicy,
	}
}

// DeveloperService handles developer business logic
type DeveloperService struct {
	developerRepo repository.DeveloperRepository
	skillRepo     repository.SkillRecordRepository
	cfg           DeveloperServiceConfig
}

// NewDeveloperService creates a new DeveloperService
func NewDeveloperService(developerRepo repository.DeveloperRepository, skillRepo repository.SkillRecordRepository, cfg DeveloperServiceConfig) *DeveloperService {
	if cfg.DefaultPageSize < 1 {
		cfg.DefaultPageSize = constants.DefaultPageSize
	}
	if cfg.DeletePolicy == "" {
		cfg.DeletePolicy = config.DeletePolicyReject
	}
	return &DeveloperService{
		developerRepo: developerRepo,
		skillRepo:     skillRepo,
		cfg:           cfg,
	}
}

// DefaultPageSize returns the page size used when a request gives none
func (s *DeveloperService) DefaultPageSize() int {
	return s.cfg.DefaultPageSize
}

// ListDevelopersInput represents the listing criteria and page window
type ListDevelopersInput struct {
	Criteria filter.DeveloperCriteria
	Page     int
	PageSize int
}

// ListDevelopers returns one page of developers matching the criteria, newest first
func (s *DeveloperService) ListDevelopers(ctx context.Context, input ListDevelopersInput) (*utils.Page[models.Developer], error) {
	params := utils.NewPaginationParams(input.Page, input.PageSize, s.cfg.DefaultPageSize)
	where := filter.BuildDeveloperPredicate(input.Criteria, s.cfg.SkillMatchMode)

	log.Debug().
		Str("where", filter.Describe(where)).
		Int("page", params.Page).
		Int("page_size", params.Limit).
		Msg("listing developers")

	developers, total, err := s.developerRepo.List(ctx, repository.DeveloperFilter{
		Where:   where,
		OrderBy: repository.OrderNewestFirst,
		Offset:  params.Offset,
		Limit:   params.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list developers: %w", err)
	}

	return utils.NewPage(developers, total, params), nil
}

// SearchDevelopers runs a free-text search over developer names and skill
// history, ordered by name, with a fixed page size
func (s *DeveloperService) SearchDevelopers(ctx context.Context, query string, page int) (*utils.Page[models.Developer], error) {
	params := utils.NewPaginationParams(page, constants.SearchPageSize, constants.SearchPageSize)
	where := filter.FreeText(query)

	developers, total, err := s.developerRepo.List(ctx, repository.DeveloperFilter{
		Where:   where,
		OrderBy: repository.OrderByName,
		Offset:  params.Offset,
		Limit:   params.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search developers: %w", err)
	}

	return utils.NewPage(developers, total, params), nil
}

// DeveloperInput carries the writable developer fields
type DeveloperInput struct {
	Name            string
	Email           string
	Phone           string
	Address         string
	BirthDate       *time.Time
	Gender          string
	Position        string
	Grade           string
	StartDate       *time.Time
	CareerStartDate *time.Time
	Married         bool
	MilitaryStatus  string
	MilitaryBranch  string
	MilitaryRank    string
	EvaluationCode  string
}

func (in DeveloperInput) apply(d *models.Developer) {
	d.Name = strings.TrimSpace(in.Name)
	d.Email = strings.TrimSpace(in.Email)
	d.Phone = in.Phone
	d.Address = in.Address
	d.BirthDate = in.BirthDate
	d.Gender = in.Gender
	d.Position = in.Position
	d.Grade = in.Grade
	d.StartDate = in.StartDate
	d.CareerStartDate = in.CareerStartDate
	d.Married = in.Married
	d.MilitaryStatus = in.MilitaryStatus
	d.MilitaryBranch = in.MilitaryBranch
	d.MilitaryRank = in.MilitaryRank
	d.EvaluationCode = in.EvaluationCode
}

// GetDeveloper returns a developer with its skill history
func (s *DeveloperService) GetDeveloper(ctx context.Context, id string) (*models.Developer, error) {
	developer, err := s.developerRepo.FindByID(ctx, id, "SkillRecords")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeveloperNotFound
		}
		return nil, fmt.Errorf("failed to find developer: %w", err)
	}

	return developer, nil
}

// CreateDeveloper registers a developer with a unique email
func (s *DeveloperService) CreateDeveloper(ctx context.Context, input DeveloperInput) (*models.Developer, error) {
	developer := &models.Developer{}
	input.apply(developer)

	if err := s.validate(ctx, developer); err != nil {
		return nil, err
	}

	if err := s.developerRepo.Create(ctx, developer); err != nil {
		return nil, fmt.Errorf("failed to create developer: %w", err)
	}

	return developer, nil
}

// UpdateDeveloper replaces the writable fields of a developer
func (s *DeveloperService) UpdateDeveloper(ctx context.Context, id string, input DeveloperInput) (*models.Developer, error) {
	developer, err := s.developerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeveloperNotFound
		}
		return nil, fmt.Errorf("failed to find developer: %w", err)
	}

	input.apply(developer)
	if err := s.validate(ctx, developer); err != nil {
		return nil, err
	}

	if err := s.developerRepo.Update(ctx, developer); err != nil {
		return nil, fmt.Errorf("failed to update developer: %w", err)
	}

	return developer, nil
}

func (s *DeveloperService) validate(ctx context.Context, developer *models.Developer) error {
	if developer.Name == "" {
		return ErrNameRequired
	}
	if developer.Email == "" {
		return ErrEmailRequired
	}

	existing, err := s.developerRepo.FindByEmail(ctx, developer.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil && existing.ID != developer.ID {
		return ErrEmailTaken
	}

	return nil
}

// DeleteDeveloper deletes a developer. Under the reject policy a developer with
// skill records is kept and ErrDeveloperHasSkillRecords is returned; under the
// cascade policy the records go too.
func (s *DeveloperService) DeleteDeveloper(ctx context.Context, id string) error {
	cascade := s.cfg.DeletePolicy == config.DeletePolicyCascade

	if !cascade {
		count, err := s.developerRepo.CountSkillRecords(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count skill records: %w", err)
		}
		if count > 0 {
			return ErrDeveloperHasSkillRecords
		}
	}

	if err := s.developerRepo.Delete(ctx, id, cascade); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDeveloperNotFound
		}
		return fmt.Errorf("failed to delete developer: %w", err)
	}

	return nil
}

// SkillRecordInput carries the fields of one skill history entry
type SkillRecordInput struct {
	StartYM      string
	EndYM        string
	ProjectName  string
	Client       string
	Practitioner string
	Task         string
	Model        string
	OS           string
	Language     string
	DBMS         string
	Tool         string
	Protocol     string
	Etc          string
}

// ListSkillRecords returns a developer's skill history, latest first. A
// non-empty skills query keeps only the records whose category columns
// jointly contain every token.
func (s *DeveloperService) ListSkillRecords(ctx context.Context, developerID, skills string) ([]models.SkillRecord, error) {
	if _, err := s.GetDeveloper(ctx, developerID); err != nil {
		return nil, err
	}

	records, err := s.skillRepo.ListByDeveloper(ctx, developerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list skill records: %w", err)
	}

	where := filter.MatchSkillRecord(skills)
	if where == nil {
		return records, nil
	}
	matched := records[:0]
	for _, record := range records {
		if filter.Evaluate(where, record) {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// AddSkillRecord adds a history entry; a developer has at most one entry per start month
func (s *DeveloperService) AddSkillRecord(ctx context.Context, developerID string, input SkillRecordInput) (*models.SkillRecord, error) {
	if !yearMonthPattern.MatchString(input.StartYM) {
		return nil, ErrInvalidYearMonth
	}
	if input.EndYM != "" {
		if !yearMonthPattern.MatchString(input.EndYM) {
			return nil, ErrInvalidYearMonth
		}
		// YYYY-MM compares correctly as a string
		if input.EndYM < input.StartYM {
			return nil, ErrInvalidPeriod
		}
	}

	if _, err := s.developerRepo.FindByID(ctx, developerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeveloperNotFound
		}
		return nil, fmt.Errorf("failed to find developer: %w", err)
	}

	exists, err := s.skillRepo.Exists(ctx, developerID, input.StartYM)
	if err != nil {
		return nil, fmt.Errorf("failed to check skill record: %w", err)
	}
	if exists {
		return nil, ErrSkillRecordExists
	}

	record := &models.SkillRecord{
		DeveloperID:  developerID,
		StartYM:      input.StartYM,
		EndYM:        input.EndYM,
		ProjectName:  input.ProjectName,
		Client:       input.Client,
		Practitioner: input.Practitioner,
		Task:         input.Task,
		Model:        input.Model,
		OS:           input.OS,
		Language:     input.Language,
		DBMS:         input.DBMS,
		Tool:         input.Tool,
		Protocol:     input.Protocol,
		Etc:          input.Etc,
	}
	if err := s.skillRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create skill record: %w", err)
	}

	return record, nil
}

// DeleteSkillRecord removes one history entry
func (s *DeveloperService) DeleteSkillRecord(ctx context.Context, developerID, startYM string) error {
	if err := s.skillRepo.Delete(ctx, developerID, startYM); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSkillRecordNotFound
		}
		return fmt.Errorf("failed to delete skill record: %w", err)
	}
	return nil
}
