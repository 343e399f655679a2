package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coremade/core-hp/internal/models"
)

// defaultCodes is the static reference-code table loaded at startup.
var defaultCodes = []models.Code{
	{GroupCode: "GENDER", Code: "M", Name: "Male", SortOrder: 1},
	{GroupCode: "GENDER", Code: "F", Name: "Female", SortOrder: 2},

	{GroupCode: "POSITION", Code: "STAFF", Name: "Staff", SortOrder: 1},
	{GroupCode: "POSITION", Code: "SENIOR", Name: "Senior", SortOrder: 2},
	{GroupCode: "POSITION", Code: "MANAGER", Name: "Manager", SortOrder: 3},
	{GroupCode: "POSITION", Code: "DIRECTOR", Name: "Director", SortOrder: 4},

	{GroupCode: "GRADE", Code: "JUNIOR", Name: "Junior", SortOrder: 1},
	{GroupCode: "GRADE", Code: "INTERMEDIATE", Name: "Intermediate", SortOrder: 2},
	{GroupCode: "GRADE", Code: "SENIOR", Name: "Senior", SortOrder: 3},
	{GroupCode: "GRADE", Code: "EXPERT", Name: "Expert", SortOrder: 4},

	{GroupCode: "MILITARY_STATUS", Code: "DONE", Name: "Completed", SortOrder: 1},
	{GroupCode: "MILITARY_STATUS", Code: "EXEMPT", Name: "Exempt", SortOrder: 2},
	{GroupCode: "MILITARY_STATUS", Code: "NA", Name: "Not applicable", SortOrder: 3},

	{GroupCode: "PROJECT_STATUS", Code: string(models.ProjectStatusPlanning), Name: "Planning", SortOrder: 1},
	{GroupCode: "PROJECT_STATUS", Code: string(models.ProjectStatusInProgress), Name: "In progress", SortOrder: 2},
	{GroupCode: "PROJECT_STATUS", Code: string(models.ProjectStatusCompleted), Name: "Completed", SortOrder: 3},
	{GroupCode: "PROJECT_STATUS", Code: string(models.ProjectStatusOnHold), Name: "On hold", SortOrder: 4},

	{GroupCode: "SKILL_CATEGORY", Code: "MODEL", Name: "Model", SortOrder: 1},
	{GroupCode: "SKILL_CATEGORY", Code: "OS", Name: "Operating system", SortOrder: 2},
	{GroupCode: "SKILL_CATEGORY", Code: "LANGUAGE", Name: "Language", SortOrder: 3},
	{GroupCode: "SKILL_CATEGORY", Code: "DBMS", Name: "Database", SortOrder: 4},
	{GroupCode: "SKILL_CATEGORY", Code: "TOOL", Name: "Tool", SortOrder: 5},
	{GroupCode: "SKILL_CATEGORY", Code: "PROTOCOL", Name: "Protocol", SortOrder: 6},
	{GroupCode: "SKILL_CATEGORY", Code: "ETC", Name: "Other", SortOrder: 7},
}

// SeedCodes inserts the default reference codes, leaving existing rows untouched.
func SeedCodes(db *gorm.DB) error {
	codes := make([]models.Code, len(defaultCodes))
	copy(codes, defaultCodes)
	for i := range codes {
		codes[i].Used = true
	}

	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&codes)
	if result.Error != nil {
		return fmt.Errorf("failed to seed codes: %w", result.Error)
	}

	log.Info().Int64("inserted", result.RowsAffected).Msg("Reference codes seeded")
	return nil
}
