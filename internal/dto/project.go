package dto

import (
	"time"

	"github.com/coremade/core-hp/internal/models"
	"github.com/coremade/core-hp/internal/utils"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64               `json:"id"`
	Name        string               `json:"name"`
	Client      string               `json:"client"`
	Status      models.ProjectStatus `json:"status"`
	StartDate   *time.Time           `json:"start_date"`
	EndDate     *time.Time           `json:"end_date"`
	Description string               `json:"description"`
	Model       string               `json:"model"`
	OS          string               `json:"os"`
	Language    string               `json:"language"`
	DBMS        string               `json:"dbms"`
	Tool        string               `json:"tool"`
	Protocol    string               `json:"protocol"`
	Etc         string               `json:"etc"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// AssignmentDTO represents a developer's assignment to a project
type AssignmentDTO struct {
	ProjectID uint64                  `json:"project_id"`
	Developer DeveloperSummaryDTO     `json:"developer"`
	Task      string                  `json:"task"`
	StartDate *time.Time              `json:"start_date"`
	EndDate   *time.Time              `json:"end_date"`
	Status    models.AssignmentStatus `json:"status"`
}

// DeveloperSummaryDTO is the short form of a developer used inside other resources
type DeveloperSummaryDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Grade    string `json:"grade"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects   []ProjectDTO `json:"projects"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalCount int64        `json:"total_count"`
	TotalPages int          `json:"total_pages"`
}

// ProjectRequest is the body of project create and update requests
type ProjectRequest struct {
	Name        string               `json:"name" binding:"required,max=255"`
	Client      string               `json:"client" binding:"max=255"`
	Status      models.ProjectStatus `json:"status"`
	StartDate   *time.Time           `json:"start_date"`
	EndDate     *time.Time           `json:"end_date"`
	Description string               `json:"description"`
	Model       string               `json:"model" binding:"max=255"`
	OS          string               `json:"os" binding:"max=255"`
	Language    string               `json:"language" binding:"max=255"`
	DBMS        string               `json:"dbms" binding:"max=255"`
	Tool        string               `json:"tool" binding:"max=255"`
	Protocol    string               `json:"protocol" binding:"max=255"`
	Etc         string               `json:"etc" binding:"max=255"`
}

// AssignmentRequest is the body of an assignment request
type AssignmentRequest struct {
	DeveloperID string                  `json:"developer_id" binding:"required"`
	Task        string                  `json:"task" binding:"max=255"`
	StartDate   *time.Time              `json:"start_date"`
	EndDate     *time.Time              `json:"end_date"`
	Status      models.AssignmentStatus `json:"status"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Client:      project.Client,
		Status:      project.Status,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		Description: project.Description,
		Model:       project.Model,
		OS:          project.OS,
		Language:    project.Language,
		DBMS:        project.DBMS,
		Tool:        project.Tool,
		Protocol:    project.Protocol,
		Etc:         project.Etc,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// ToAssignmentDTO converts a ProjectAssignment model to AssignmentDTO
func ToAssignmentDTO(assignment models.ProjectAssignment) AssignmentDTO {
	return AssignmentDTO{
		ProjectID: assignment.ProjectID,
		Developer: DeveloperSummaryDTO{
			ID:       assignment.DeveloperID,
			Name:     assignment.Developer.Name,
			Position: assignment.Developer.Position,
			Grade:    assignment.Developer.Grade,
		},
		Task:      assignment.Task,
		StartDate: assignment.StartDate,
		EndDate:   assignment.EndDate,
		Status:    assignment.Status,
	}
}

// ToProjectListResponse converts a page of projects to ProjectListResponse
func ToProjectListResponse(page *utils.Page[models.Project]) ProjectListResponse {
	items := make([]ProjectDTO, len(page.Items))
	for i, project := range page.Items {
		items[i] = ToProjectDTO(project)
	}

	return ProjectListResponse{
		Projects:   items,
		Page:       page.Page,
		PageSize:   page.Limit,
		TotalCount: page.Total,
		TotalPages: page.TotalPages(),
	}
}
