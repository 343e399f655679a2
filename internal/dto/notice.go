package dto

import (
	"github.com/coremade/core-hp/internal/models"
	"github.com/coremade/core-hp/internal/utils"
)

// NoticeListResponse represents a paginated list of notices
type NoticeListResponse struct {
	Notices    []models.Notice `json:"notices"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalCount int64           `json:"total_count"`
	TotalPages int             `json:"total_pages"`
}

type NoticeRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content"`
	Author  string `json:"author" binding:"max=100"`
	Pinned  bool   `json:"pinned"`
}

type CodeRequest struct {
	GroupCode string `json:"group_code" binding:"required,max=30"`
	Code      string `json:"code" binding:"required,max=30"`
	Name      string `json:"name" binding:"required,max=100"`
	SortOrder int    `json:"sort_order"`
	Used      *bool  `json:"used"`
}

func ToNoticeListResponse(page *utils.Page[models.Notice]) NoticeListResponse {
	return NoticeListResponse{
		Notices:    page.Items,
		Page:       page.Page,
		PageSize:   page.Limit,
		TotalCount: page.Total,
		TotalPages: page.TotalPages(),
	}
}
