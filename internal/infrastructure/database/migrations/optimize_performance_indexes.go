package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OptimizePerformanceIndexes adiciona índices parciais para as consultas de pesquisas pendentes e concluídas
func OptimizePerformanceIndexes(db *gorm.DB, log *zap.Logger) error {
	log.Debug("adding partial indexes")

	indexes := []string{
		// Pesquisas criadas mas ainda sem respostas
		"CREATE INDEX IF NOT EXISTS idx_responses_pending ON responses (created_at) WHERE answers_json IS NULL",
		// Pesquisas com respostas enviadas
		"CREATE INDEX IF NOT EXISTS idx_responses_answered ON responses (created_at) WHERE answers_json IS NOT NULL",
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			return err
		}
	}

	log.Debug("partial indexes ready", zap.Int("count", len(indexes)))
	return nil
}
