package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coremade/core-hp/internal/dto"
	apierrors "github.com/coremade/core-hp/internal/errors"
	"github.com/coremade/core-hp/internal/models"
	"github.com/coremade/core-hp/internal/services"
	"github.com/coremade/core-hp/internal/utils"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	pageSize       int
}

func NewProjectHandler(projectService *services.ProjectService, pageSize int) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		pageSize:       pageSize,
	}
}

// ListProjects returns projects, optionally filtered by status and name
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	params := utils.GetPaginationParams(c, h.pageSize)

	input := services.ListProjectsInput{
		Name:     c.Query("name"),
		Page:     params.Page,
		PageSize: params.Limit,
	}
	if status := c.Query("status"); status != "" {
		s := models.ProjectStatus(status)
		input.Status = &s
	}

	page, err := h.projectService.ListProjects(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectListResponse(page))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch project")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), toProjectInput(req))
	if err != nil {
		respondServiceError(c, err, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), id, toProjectInput(req))
	if err != nil {
		respondServiceError(c, err, "Failed to update project")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// ListAssignments returns the developers staffed on a project
func (h *ProjectHandler) ListAssignments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	assignments, err := h.projectService.ListAssignments(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch assignments")
		return
	}

	items := make([]dto.AssignmentDTO, len(assignments))
	for i, assignment := range assignments {
		items[i] = dto.ToAssignmentDTO(assignment)
	}
	c.JSON(http.StatusOK, gin.H{"assignments": items})
}

// AssignDeveloper staffs a developer on a project
func (h *ProjectHandler) AssignDeveloper(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	assignment, err := h.projectService.AssignDeveloper(c.Request.Context(), id, services.AssignDeveloperInput{
		DeveloperID: req.DeveloperID,
		Task:        req.Task,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to assign developer")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"project_id":   assignment.ProjectID,
		"developer_id": assignment.DeveloperID,
		"task":         assignment.Task,
		"status":       assignment.Status,
	})
}

// RemoveAssignment takes a developer off a project
func (h *ProjectHandler) RemoveAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.RemoveAssignment(c.Request.Context(), id, c.Param("developerId")); err != nil {
		respondServiceError(c, err, "Failed to remove assignment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Assignment removed successfully"})
}

func toProjectInput(req dto.ProjectRequest) services.ProjectInput {
	return services.ProjectInput{
		Name:        req.Name,
		Client:      req.Client,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Model:       req.Model,
		OS:          req.OS,
		Language:    req.Language,
		DBMS:        req.DBMS,
		Tool:        req.Tool,
		Protocol:    req.Protocol,
		Etc:         req.Etc,
	}
}
