package migrations

import (
	"github.com/PavaniTiago/readiness-survey-api/internal/domain/entities"

	"gorm.io/gorm"
)

// Migrate cria ou atualiza a tabela responses
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&entities.ResponseRecord{})
}
