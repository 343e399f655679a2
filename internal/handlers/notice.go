package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coremade/core-hp/internal/dto"
	apierrors "github.com/coremade/core-hp/internal/errors"
	"github.com/coremade/core-hp/internal/services"
	"github.com/coremade/core-hp/internal/utils"
)

type NoticeHandler struct {
	noticeService *services.NoticeService
	pageSize      int
}

func NewNoticeHandler(noticeService *services.NoticeService, pageSize int) *NoticeHandler {
	return &NoticeHandler{
		noticeService: noticeService,
		pageSize:      pageSize,
	}
}

func (h *NoticeHandler) ListNotices(c *gin.Context) {
	params := utils.GetPaginationParams(c, h.pageSize)

	page, err := h.noticeService.ListNotices(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch notices")
		return
	}

	c.JSON(http.StatusOK, dto.ToNoticeListResponse(page))
}

// GetNotice returns a notice and counts the view
func (h *NoticeHandler) GetNotice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	notice, err := h.noticeService.GetNotice(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch notice")
		return
	}

	c.JSON(http.StatusOK, notice)
}

func (h *NoticeHandler) CreateNotice(c *gin.Context) {
	var req dto.NoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	notice, err := h.noticeService.CreateNotice(c.Request.Context(), services.NoticeInput{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
		Pinned:  req.Pinned,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create notice")
		return
	}

	c.JSON(http.StatusCreated, notice)
}

func (h *NoticeHandler) UpdateNotice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.NoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	notice, err := h.noticeService.UpdateNotice(c.Request.Context(), id, services.NoticeInput{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
		Pinned:  req.Pinned,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to update notice")
		return
	}

	c.JSON(http.StatusOK, notice)
}

func (h *NoticeHandler) DeleteNotice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.noticeService.DeleteNotice(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to delete notice")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notice deleted successfully"})
}
