package dto

import (
	"time"

	"github.com/coremade/core-hp/internal/models"
	"github.com/coremade/core-hp/internal/utils"
)

// SkillRecordDTO represents one skill history entry in API responses
type SkillRecordDTO struct {
	StartYM      string `json:"start_ym"`
	EndYM        string `json:"end_ym"`
	ProjectName  string `json:"project_name"`
	Client       string `json:"client"`
	Practitioner string `json:"practitioner"`
	Task         string `json:"task"`
	Model        string `json:"model"`
	OS           string `json:"os"`
	Language     string `json:"language"`
	DBMS         string `json:"dbms"`
	Tool         string `json:"tool"`
	Protocol     string `json:"protocol"`
	Etc          string `json:"etc"`
}

// DeveloperDTO represents a developer in API responses
type DeveloperDTO struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	Address         string           `json:"address"`
	BirthDate       *time.Time       `json:"birth_date"`
	Gender          string           `json:"gender"`
	Position        string           `json:"position"`
	Grade           string           `json:"grade"`
	StartDate       *time.Time       `json:"start_date"`
	CareerStartDate *time.Time       `json:"career_start_date"`
	Married         bool             `json:"married"`
	MilitaryStatus  string           `json:"military_status"`
	MilitaryBranch  string           `json:"military_branch"`
	MilitaryRank    string           `json:"military_rank"`
	EvaluationCode  string           `json:"evaluation_code"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	Skills          []SkillRecordDTO `json:"skills,omitempty"`
}

// DeveloperListResponse is the envelope of GET /developers
type DeveloperListResponse struct {
	Developers []DeveloperDTO `json:"developers"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
}

// DeveloperSearchResponse is the envelope of GET /projects/developers
type DeveloperSearchResponse struct {
	Developers  []DeveloperDTO `json:"developers"`
	HasMore     bool           `json:"hasMore"`
	CurrentPage int            `json:"currentPage"`
	TotalCount  int64          `json:"totalCount"`
}

// DeveloperRequest is the body of developer create and update requests
type DeveloperRequest struct {
	Name            string     `json:"name" binding:"required,max=100"`
	Email           string     `json:"email" binding:"required,email,max=255"`
	Phone           string     `json:"phone" binding:"max=30"`
	Address         string     `json:"address" binding:"max=255"`
	BirthDate       *time.Time `json:"birth_date"`
	Gender          string     `json:"gender" binding:"max=10"`
	Position        string     `json:"position" binding:"max=50"`
	Grade           string     `json:"grade" binding:"max=50"`
	StartDate       *time.Time `json:"start_date"`
	CareerStartDate *time.Time `json:"career_start_date"`
	Married         bool       `json:"married"`
	MilitaryStatus  string     `json:"military_status" binding:"max=20"`
	MilitaryBranch  string     `json:"military_branch" binding:"max=20"`
	MilitaryRank    string     `json:"military_rank" binding:"max=20"`
	EvaluationCode  string     `json:"evaluation_code" binding:"max=20"`
}

// SkillRecordRequest is the body of a skill history create request
type SkillRecordRequest struct {
	StartYM      string `json:"start_ym" binding:"required"`
	EndYM        string `json:"end_ym"`
	ProjectName  string `json:"project_name" binding:"max=255"`
	Client       string `json:"client" binding:"max=255"`
	Practitioner string `json:"practitioner" binding:"max=255"`
	Task         string `json:"task"`
	Model        string `json:"model" binding:"max=255"`
	OS           string `json:"os" binding:"max=255"`
	Language     string `json:"language" binding:"max=255"`
	DBMS         string `json:"dbms" binding:"max=255"`
	Tool         string `json:"tool" binding:"max=255"`
	Protocol     string `json:"protocol" binding:"max=255"`
	Etc          string `json:"etc" binding:"max=255"`
}

// Conversion functions

// ToSkillRecordDTO converts a SkillRecord model to SkillRecordDTO
func ToSkillRecordDTO(record models.SkillRecord) SkillRecordDTO {
	return SkillRecordDTO{
		StartYM:      record.StartYM,
		EndYM:        record.EndYM,
		ProjectName:  record.ProjectName,
		Client:       record.Client,
		Practitioner: record.Practitioner,
		Task:         record.Task,
		Model:        record.Model,
		OS:           record.OS,
		Language:     record.Language,
		DBMS:         record.DBMS,
		Tool:         record.Tool,
		Protocol:     record.Protocol,
		Etc:          record.Etc,
	}
}

// ToSkillRecordDTOs converts skill records, never returning nil
func ToSkillRecordDTOs(records []models.SkillRecord) []SkillRecordDTO {
	items := make([]SkillRecordDTO, len(records))
	for i, record := range records {
		items[i] = ToSkillRecordDTO(record)
	}
	return items
}

// ToDeveloperDTO converts a Developer model to DeveloperDTO
func ToDeveloperDTO(developer models.Developer) DeveloperDTO {
	dto := DeveloperDTO{
		ID:              developer.ID,
		Name:            developer.Name,
		Email:           developer.Email,
		Phone:           developer.Phone,
		Address:         developer.Address,
		BirthDate:       developer.BirthDate,
		Gender:          developer.Gender,
		Position:        developer.Position,
		Grade:           developer.Grade,
		StartDate:       developer.StartDate,
		CareerStartDate: developer.CareerStartDate,
		Married:         developer.Married,
		MilitaryStatus:  developer.MilitaryStatus,
		MilitaryBranch:  developer.MilitaryBranch,
		MilitaryRank:    developer.MilitaryRank,
		EvaluationCode:  developer.EvaluationCode,
		CreatedAt:       developer.CreatedAt,
		UpdatedAt:       developer.UpdatedAt,
	}

	// Include skill history if preloaded
	if len(developer.SkillRecords) > 0 {
		dto.Skills = ToSkillRecordDTOs(developer.SkillRecords)
	}

	return dto
}

func toDeveloperDTOs(developers []models.Developer) []DeveloperDTO {
	items := make([]DeveloperDTO, len(developers))
	for i, developer := range developers {
		items[i] = ToDeveloperDTO(developer)
	}
	return items
}

// ToDeveloperListResponse builds the listing envelope from a page
func ToDeveloperListResponse(page *utils.Page[models.Developer]) DeveloperListResponse {
	return DeveloperListResponse{
		Developers: toDeveloperDTOs(page.Items),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.Limit,
	}
}

// ToDeveloperSearchResponse builds the search envelope from a page
func ToDeveloperSearchResponse(page *utils.Page[models.Developer]) DeveloperSearchResponse {
	return DeveloperSearchResponse{
		Developers:  toDeveloperDTOs(page.Items),
		HasMore:     page.HasMore(),
		CurrentPage: page.Page,
		TotalCount:  page.Total,
	}
}
