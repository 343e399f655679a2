package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coremade/core-hp/internal/dto"
	apierrors "github.com/coremade/core-hp/internal/errors"
	"github.com/coremade/core-hp/internal/models"
	"github.com/coremade/core-hp/internal/services"
)

type CodeHandler struct {
	codeService *services.CodeService
}

func NewCodeHandler(codeService *services.CodeService) *CodeHandler {
	return &CodeHandler{codeService: codeService}
}

// ListCodes returns the codes of a group. Unused codes are included with ?all=true.
func (h *CodeHandler) ListCodes(c *gin.Context) {
	codes, err := h.codeService.ListCodes(c.Request.Context(), c.Param("group"), c.Query("all") == "true")
	if err != nil {
		respondServiceError(c, err, "Failed to fetch codes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"codes": codes})
}

// SaveCode creates or replaces a code; a missing used flag means used
func (h *CodeHandler) SaveCode(c *gin.Context) {
	var req dto.CodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	used := true
	if req.Used != nil {
		used = *req.Used
	}

	code, err := h.codeService.SaveCode(c.Request.Context(), models.Code{
		GroupCode: req.GroupCode,
		Code:      req.Code,
		Name:      req.Name,
		SortOrder: req.SortOrder,
		Used:      used,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to save code")
		return
	}

	c.JSON(http.StatusOK, code)
}

func (h *CodeHandler) DeleteCode(c *gin.Context) {
	if err := h.codeService.DeleteCode(c.Request.Context(), c.Param("group"), c.Param("code")); err != nil {
		respondServiceError(c, err, "Failed to delete code")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Code deleted successfully"})
}
