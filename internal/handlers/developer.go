package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coremade/core-hp/internal/constants"
	"github.com/coremade/core-hp/internal/dto"
	apierrors "github.com/coremade/core-hp/internal/errors"
	"github.com/coremade/core-hp/internal/filter"
	"github.com/coremade/core-hp/internal/services"
	"github.com/coremade/core-hp/internal/utils"
)

// DeveloperHandler serves developer listing, search and profile endpoints.
type DeveloperHandler struct {
	developerService *services.DeveloperService
}

// NewDeveloperHandler creates a new DeveloperHandler.
func NewDeveloperHandler(developerService *services.DeveloperService) *DeveloperHandler {
	return &DeveloperHandler{
		developerService: developerService,
	}
}

// ListDevelopers handles GET /developers. Filters are never rejected; a
// malformed value just matches nothing.
func (h *DeveloperHandler) ListDevelopers(c *gin.Context) {
	params := utils.GetPaginationParams(c, h.developerService.DefaultPageSize())

	page, err := h.developerService.ListDevelopers(c.Request.Context(), services.ListDevelopersInput{
		Criteria: filter.DeveloperCriteria{
			Name:     c.Query("name"),
			Email:    c.Query("email"),
			Phone:    c.Query("phone"),
			Gender:   c.Query("gender"),
			Position: c.Query("position"),
			Grade:    c.Query("grade"),
			Skills:   c.Query("skills"),
		},
		Page:     params.Page,
		PageSize: params.Limit,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to fetch developers")
		return
	}

	c.JSON(http.StatusOK, dto.ToDeveloperListResponse(page))
}

// SearchDevelopers handles GET /projects/developers, the free-text developer
// search used when staffing a project. The page size is fixed.
func (h *DeveloperHandler) SearchDevelopers(c *gin.Context) {
	pageNum, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		pageNum = constants.MinPage
	}

	page, err := h.developerService.SearchDevelopers(c.Request.Context(), c.Query("query"), pageNum)
	if err != nil {
		respondServiceError(c, err, "Failed to search developers")
		return
	}

	c.JSON(http.StatusOK, dto.ToDeveloperSearchResponse(page))
}

// GetDeveloper returns a developer with its skill history.
func (h *DeveloperHandler) GetDeveloper(c *gin.Context) {
	developer, err := h.developerService.GetDeveloper(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch developer")
		return
	}

	c.JSON(http.StatusOK, dto.ToDeveloperDTO(*developer))
}

// CreateDeveloper registers a developer.
func (h *DeveloperHandler) CreateDeveloper(c *gin.Context) {
	var req dto.DeveloperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	developer, err := h.developerService.CreateDeveloper(c.Request.Context(), toDeveloperInput(req))
	if err != nil {
		respondServiceError(c, err, "Failed to create developer")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDeveloperDTO(*developer))
}

// UpdateDeveloper replaces a developer's profile fields.
func (h *DeveloperHandler) UpdateDeveloper(c *gin.Context) {
	var req dto.DeveloperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	developer, err := h.developerService.UpdateDeveloper(c.Request.Context(), c.Param("id"), toDeveloperInput(req))
	if err != nil {
		respondServiceError(c, err, "Failed to update developer")
		return
	}

	c.JSON(http.StatusOK, dto.ToDeveloperDTO(*developer))
}

// DeleteDeveloper deletes a developer according to the configured delete policy.
func (h *DeveloperHandler) DeleteDeveloper(c *gin.Context) {
	if err := h.developerService.DeleteDeveloper(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete developer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Developer deleted successfully"})
}

// ListSkillRecords returns a developer's skill history, optionally narrowed by ?skills=.
func (h *DeveloperHandler) ListSkillRecords(c *gin.Context) {
	records, err := h.developerService.ListSkillRecords(c.Request.Context(), c.Param("id"), c.Query("skills"))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch skill records")
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": dto.ToSkillRecordDTOs(records)})
}

// AddSkillRecord adds one entry to a developer's skill history.
func (h *DeveloperHandler) AddSkillRecord(c *gin.Context) {
	var req dto.SkillRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.developerService.AddSkillRecord(c.Request.Context(), c.Param("id"), services.SkillRecordInput{
		StartYM:      req.StartYM,
		EndYM:        req.EndYM,
		ProjectName:  req.ProjectName,
		Client:       req.Client,
		Practitioner: req.Practitioner,
		Task:         req.Task,
		Model:        req.Model,
		OS:           req.OS,
		Language:     req.Language,
		DBMS:         req.DBMS,
		Tool:         req.Tool,
		Protocol:     req.Protocol,
		Etc:          req.Etc,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create skill record")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSkillRecordDTO(*record))
}

// DeleteSkillRecord removes one entry from a developer's skill history.
func (h *DeveloperHandler) DeleteSkillRecord(c *gin.Context) {
	if err := h.developerService.DeleteSkillRecord(c.Request.Context(), c.Param("id"), c.Param("startYm")); err != nil {
		respondServiceError(c, err, "Failed to delete skill record")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill record deleted successfully"})
}

func toDeveloperInput(req dto.DeveloperRequest) services.DeveloperInput {
	return services.DeveloperInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		BirthDate:       req.BirthDate,
		Gender:          req.Gender,
		Position:        req.Position,
		Grade:           req.Grade,
		StartDate:       req.StartDate,
		CareerStartDate: req.CareerStartDate,
		Married:         req.Married,
		MilitaryStatus:  req.MilitaryStatus,
		MilitaryBranch:  req.MilitaryBranch,
		MilitaryRank:    req.MilitaryRank,
		EvaluationCode:  req.EvaluationCode,
	}
}
