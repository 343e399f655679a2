package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/coremade/core-hp/internal/models"
	"github.com/coremade/core-hp/internal/repository"
	"github.com/coremade/core-hp/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrProjectNameRequired  = errors.New("project name is required")
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrInvalidDateRange     = errors.New("end date is before start date")
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrInvalidAssignment    = errors.New("invalid assignment status")
)

// ProjectService handles project and staffing business logic
type ProjectService struct {
	projectRepo     repository.ProjectRepository
	developerRepo   repository.DeveloperRepository
	defaultPageSize int
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, developerRepo repository.DeveloperRepository, defaultPageSize int) *ProjectService {
	return &ProjectService{
		projectRepo:     projectRepo,
		developerRepo:   developerRepo,
		defaultPageSize: defaultPageSize,
	}
}

// ListProjectsInput represents filters for listing projects
type ListProjectsInput struct {
	Status   *models.ProjectStatus
	Name     string
	Page     int
	PageSize int
}

// ProjectInput carries the writable project fields
type ProjectInput struct {
	Name        string
	Client      string
	Status      models.ProjectStatus
	StartDate   *time.Time
	EndDate     *time.Time
	Description string
	Model       string
	OS          string
	Language    string
	DBMS        string
	Tool        string
	Protocol    string
	Etc         string
}

// AssignDeveloperInput represents input for staffing a developer on a project
type AssignDeveloperInput struct {
	DeveloperID string
	Task        string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      models.AssignmentStatus
}

// ListProjects returns one page of projects, newest first
func (s *ProjectService) ListProjects(ctx context.Context, input ListProjectsInput) (*utils.Page[models.Project], error) {
	if input.Status != nil && !input.Status.Valid() {
		return nil, ErrInvalidProjectStatus
	}

	params := utils.NewPaginationParams(input.Page, input.PageSize, s.defaultPageSize)
	projects, total, err := s.projectRepo.List(ctx, repository.ProjectFilter{
		Status: input.Status,
		Name:   strings.TrimSpace(input.Name),
		Offset: params.Offset,
		Limit:  params.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return utils.NewPage(projects, total, params), nil
}

// GetProject returns a project
func (s *ProjectService) GetProject(ctx context.Context, id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// CreateProject creates a project, PLANNING unless a status is given
func (s *ProjectService) CreateProject(ctx context.Context, input ProjectInput) (*models.Project, error) {
	project := &models.Project{}
	if err := applyProjectInput(project, input); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// UpdateProject replaces the writable fields of a project
func (s *ProjectService) UpdateProject(ctx context.Context, id uint64, input ProjectInput) (*models.Project, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = project.Status
	}
	if err := applyProjectInput(project, input); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

func applyProjectInput(project *models.Project, input ProjectInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return ErrProjectNameRequired
	}
	if input.Status == "" {
		input.Status = models.ProjectStatusPlanning
	}
	if !input.Status.Valid() {
		return ErrInvalidProjectStatus
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return ErrInvalidDateRange
	}

	project.Name = name
	project.Client = input.Client
	project.Status = input.Status
	project.StartDate = input.StartDate
	project.EndDate = input.EndDate
	project.Description = input.Description
	project.Model = input.Model
	project.OS = input.OS
	project.Language = input.Language
	project.DBMS = input.DBMS
	project.Tool = input.Tool
	project.Protocol = input.Protocol
	project.Etc = input.Etc
	return nil
}

// DeleteProject soft deletes a project and releases its assignments
func (s *ProjectService) DeleteProject(ctx context.Context, id uint64) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// ListAssignments returns the developers staffed on a project
func (s *ProjectService) ListAssignments(ctx context.Context, projectID uint64) ([]models.ProjectAssignment, error) {
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	assignments, err := s.projectRepo.ListAssignments(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// AssignDeveloper staffs a developer on a project. Assigning the same
// developer again replaces the previous assignment.
func (s *ProjectService) AssignDeveloper(ctx context.Context, projectID uint64, input AssignDeveloperInput) (*models.ProjectAssignment, error) {
	if input.Status == "" {
		input.Status = models.AssignmentStatusAssigned
	}
	if input.Status != models.AssignmentStatusAssigned && input.Status != models.AssignmentStatusReleased {
		return nil, ErrInvalidAssignment
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, ErrInvalidDateRange
	}

	if _, err := s.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	if _, err := s.developerRepo.FindByID(ctx, input.DeveloperID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeveloperNotFound
		}
		return nil, fmt.Errorf("failed to find developer: %w", err)
	}

	assignment := &models.ProjectAssignment{
		ProjectID:   projectID,
		DeveloperID: input.DeveloperID,
		Task:        input.Task,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      input.Status,
	}
	if err := s.projectRepo.Assign(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to assign developer: %w", err)
	}
	return assignment, nil
}

// RemoveAssignment takes a developer off a project
func (s *ProjectService) RemoveAssignment(ctx context.Context, projectID uint64, developerID string) error {
	if err := s.projectRepo.RemoveAssignment(ctx, projectID, developerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to remove assignment: %w", err)
	}
	return nil
}
