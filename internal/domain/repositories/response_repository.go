package repositories

import (
	"context"
	"errors"

	"github.com/PavaniTiago/readiness-survey-api/internal/domain/entities"
	"gorm.io/gorm"
)

// ResponseRepository persiste os registros da pesquisa
type ResponseRepository interface {
	Create(ctx context.Context, record *entities.ResponseRecord) error
	SaveAnswers(ctx context.Context, id string, answersJSON string) error
	FindByID(ctx context.Context, id string) (*entities.ResponseRecord, error)
}

type responseRepository struct {
	db *gorm.DB
}

// NewResponseRepository cria o repositório sobre uma conexão GORM já aberta
func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db}
}

// Create insere o registro; retorna apenas depois do commit
func (r *responseRepository) Create(ctx context.Context, record *entities.ResponseRecord) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(record).Error
	})
	if err != nil {
		return &entities.StorageError{Op: "create response", Err: err}
	}
	return nil
}

// SaveAnswers substitui por completo o conjunto de respostas do registro
func (r *responseRepository) SaveAnswers(ctx context.Context, id string, answersJSON string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.ResponseRecord{}).
			Where("id = ?", id).
			Update("answers_json", answersJSON)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return entities.ErrResponseNotFound
		}
		return nil
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, entities.ErrResponseNotFound) {
		return err
	}
	return &entities.StorageError{Op: "save answers", Err: err}
}

// FindByID retorna o registro exatamente como armazenado
func (r *responseRepository) FindByID(ctx context.Context, id string) (*entities.ResponseRecord, error) {
	var record entities.ResponseRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrResponseNotFound
		}
		return nil, &entities.StorageError{Op: "find response", Err: err}
	}
	return &record, nil
}
