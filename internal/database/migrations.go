package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AddIndexes adds the secondary indexes used by listing and search queries
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Developer listing filters
		{"developers", "idx_developers_position_grade", "position, grade"},
		{"developers", "idx_developers_gender", "gender"},

		// Skill record lookups by developer are covered by the primary key
		{"skill_records", "idx_skill_records_project_name", "project_name"},

		// Assignments by developer
		{"project_assignments", "idx_project_assignments_developer_id", "developer_id"},

		// Notice board ordering
		{"notices", "idx_notices_pinned_created_at", "pinned, created_at"},

		// Code lookups by group
		{"codes", "idx_codes_group_sort", "group_code, sort_order"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.table, idx.name) {
			log.Debug().Str("index", idx.name).Msg("Index already exists, skipping")
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Info().Str("index", idx.name).Str("table", idx.table).Msg("Created index")
	}

	return nil
}

// MigrateDatabase runs schema migrations and adds indexes
func MigrateDatabase(db *gorm.DB) error {
	if err := Migrate(db); err != nil {
		return err
	}

	if err := AddIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	return nil
}
