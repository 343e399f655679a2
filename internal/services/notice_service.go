package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coremade/core-hp/internal/models"
	"github.com/coremade/core-hp/internal/repository"
	"github.com/coremade/core-hp/internal/utils"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrNoticeNotFound = errors.New("notice not found")
	ErrTitleRequired  = errors.New("title is required")
)

// NoticeService handles notice board business logic
type NoticeService struct {
	noticeRepo      repository.NoticeRepository
	defaultPageSize int
}

// NewNoticeService creates a new NoticeService
func NewNoticeService(noticeRepo repository.NoticeRepository, defaultPageSize int) *NoticeService {
	return &NoticeService{
		noticeRepo:      noticeRepo,
		defaultPageSize: defaultPageSize,
	}
}

// NoticeInput carries the writable notice fields
type NoticeInput struct {
	Title   string
	Content string
	Author  string
	Pinned  bool
}

// ListNotices returns one page of notices, pinned first
func (s *NoticeService) ListNotices(ctx context.Context, page, pageSize int) (*utils.Page[models.Notice], error) {
	params := utils.NewPaginationParams(page, pageSize, s.defaultPageSize)
	notices, total, err := s.noticeRepo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	return utils.NewPage(notices, total, params), nil
}

// GetNotice returns a notice and counts the view
func (s *NoticeService) GetNotice(ctx context.Context, id uint64) (*models.Notice, error) {
	notice, err := s.noticeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoticeNotFound
		}
		return nil, fmt.Errorf("failed to find notice: %w", err)
	}

	// A lost view count is not worth failing the read
	if err := s.noticeRepo.IncrementViews(ctx, id); err != nil {
		log.Warn().Err(err).Uint64("notice_id", id).Msg("failed to count notice view")
	} else {
		notice.ViewCount++
	}

	return notice, nil
}

// CreateNotice posts a notice
func (s *NoticeService) CreateNotice(ctx context.Context, input NoticeInput) (*models.Notice, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	notice := &models.Notice{
		Title:   title,
		Content: input.Content,
		Author:  input.Author,
		Pinned:  input.Pinned,
	}
	if err := s.noticeRepo.Create(ctx, notice); err != nil {
		return nil, fmt.Errorf("failed to create notice: %w", err)
	}
	return notice, nil
}

// UpdateNotice replaces the writable fields of a notice
func (s *NoticeService) UpdateNotice(ctx context.Context, id uint64, input NoticeInput) (*models.Notice, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	notice, err := s.noticeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoticeNotFound
		}
		return nil, fmt.Errorf("failed to find notice: %w", err)
	}

	notice.Title = title
	notice.Content = input.Content
	notice.Author = input.Author
	notice.Pinned = input.Pinned
	if err := s.noticeRepo.Update(ctx, notice); err != nil {
		return nil, fmt.Errorf("failed to update notice: %w", err)
	}
	return notice, nil
}

// DeleteNotice deletes a notice
func (s *NoticeService) DeleteNotice(ctx context.Context, id uint64) error {
	if err := s.noticeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoticeNotFound
		}
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	return nil
}
