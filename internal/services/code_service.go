package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coremade/core-hp/internal/models"
	"github.com/coremade/core-hp/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCodeNotFound     = errors.New("code not found")
	ErrCodeKeyRequired  = errors.New("group code and code are required")
	ErrCodeNameRequired = errors.New("code name is required")
)

// CodeService manages the reference-code registry
type CodeService struct {
	codeRepo repository.CodeRepository
}

// NewCodeService creates a new CodeService
func NewCodeService(codeRepo repository.CodeRepository) *CodeService {
	return &CodeService{codeRepo: codeRepo}
}

// ListCodes returns the codes of a group in display order
func (s *CodeService) ListCodes(ctx context.Context, groupCode string, includeUnused bool) ([]models.Code, error) {
	codes, err := s.codeRepo.ListByGroup(ctx, strings.ToUpper(strings.TrimSpace(groupCode)), includeUnused)
	if err != nil {
		return nil, fmt.Errorf("failed to list codes: %w", err)
	}
	if codes == nil {
		codes = []models.Code{}
	}
	return codes, nil
}

// SaveCode creates or replaces a code
func (s *CodeService) SaveCode(ctx context.Context, code models.Code) (*models.Code, error) {
	code.GroupCode = strings.ToUpper(strings.TrimSpace(code.GroupCode))
	code.Code = strings.TrimSpace(code.Code)
	code.Name = strings.TrimSpace(code.Name)
	if code.GroupCode == "" || code.Code == "" {
		return nil, ErrCodeKeyRequired
	}
	if code.Name == "" {
		return nil, ErrCodeNameRequired
	}

	if err := s.codeRepo.Upsert(ctx, &code); err != nil {
		return nil, fmt.Errorf("failed to save code: %w", err)
	}
	return &code, nil
}

// DeleteCode removes a code
func (s *CodeService) DeleteCode(ctx context.Context, groupCode, code string) error {
	if err := s.codeRepo.Delete(ctx, strings.ToUpper(strings.TrimSpace(groupCode)), code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCodeNotFound
		}
		return fmt.Errorf("failed to delete code: %w", err)
	}
	return nil
}
