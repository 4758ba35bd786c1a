package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adds indexes to the responses table. Valid on both SQLite and Postgres.
func AddIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_responses_created_at ON responses (created_at)",
		"CREATE INDEX IF NOT EXISTS idx_responses_company_project ON responses (company_name, project_name)",
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			return err
		}
	}
	return nil
}
