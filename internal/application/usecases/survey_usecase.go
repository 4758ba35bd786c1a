package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PavaniTiago/readiness-survey-api/internal/domain/entities"
	"github.com/PavaniTiago/readiness-survey-api/internal/domain/questionnaire"
	"github.com/PavaniTiago/readiness-survey-api/internal/domain/repositories"
	"github.com/PavaniTiago/readiness-survey-api/internal/domain/scoring"
	"github.com/PavaniTiago/readiness-survey-api/internal/utils"
	"github.com/google/uuid"
)

// CreateResponseInput são os campos de contexto enviados na criação
type CreateResponseInput struct {
	CompanyName     string `json:"company_name"`
	ProjectName     string `json:"project_name"`
	GoLiveDate      string `json:"go_live_date"`
	RespondentRole  string `json:"respondent_role"`
	RespondentEmail string `json:"respondent_email"`
}

// ResponseView é o registro com as respostas decodificadas e as notas recalculadas
type ResponseView struct {
	entities.ResponseRecord `yaml:",inline"`
	Answers                 entities.Answers        `json:"answers" yaml:"answers"`
	Scores                  *entities.SurveyResults `json:"scores" yaml:"scores"`
}

// SurveyUseCase implementa os casos de uso da pesquisa de prontidão
type SurveyUseCase interface {
	CreateResponse(ctx context.Context, input CreateResponseInput) (string, error)
	SubmitAnswers(ctx context.Context, id string, body []byte) error
	GetResponse(ctx context.Context, id string) (*ResponseView, error)
	ExportResponse(ctx context.Context, id string) ([]byte, error)
}

type surveyUseCase struct {
	responseRepo repositories.ResponseRepository
	newID        func() string
	now          func() time.Time
}

// Option ajusta dependências do caso de uso
type Option func(*surveyUseCase)

// WithClock substitui o relógio usado em created_at
func WithClock(now func() time.Time) Option {
	return func(u *surveyUseCase) { u.now = now }
}

// WithIDGenerator substitui o gerador de IDs
func WithIDGenerator(newID func() string) Option {
	return func(u *surveyUseCase) { u.newID = newID }
}

// NewSurveyUseCase cria uma nova instância de SurveyUseCase
func NewSurveyUseCase(responseRepo repositories.ResponseRepository, opts ...Option) SurveyUseCase {
	u := &surveyUseCase{
		responseRepo: responseRepo,
		newID:        uuid.NewString,
		now:          utils.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateResponse valida o contexto e grava um registro sem respostas
func (u *surveyUseCase) CreateResponse(ctx context.Context, input CreateResponseInput) (string, error) {
	company := strings.TrimSpace(input.CompanyName)
	project := strings.TrimSpace(input.ProjectName)
	if company == "" || project == "" {
		field := "company_name"
		if company != "" {
			field = "project_name"
		}
		return "", entities.NewValidationError(field, entities.CodeRequired, "company_name and project_name are required")
	}

	record := &entities.ResponseRecord{
		ID:              u.newID(),
		CreatedAt:       u.now(),
		CompanyName:     company,
		ProjectName:     project,
		GoLiveDate:      optional(input.GoLiveDate),
		RespondentRole:  optional(input.RespondentRole),
		RespondentEmail: optional(input.RespondentEmail),
	}
	if err := u.responseRepo.Create(ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

// SubmitAnswers substitui o conjunto de respostas de um registro existente
func (u *surveyUseCase) SubmitAnswers(ctx context.Context, id string, body []byte) error {
	if _, err := u.responseRepo.FindByID(ctx, id); err != nil {
		return err
	}

	answers, err := ParseAnswers(body)
	if err != nil {
		return err
	}

	blob, err := encodeAnswers(answers)
	if err != nil {
		return err
	}
	return u.responseRepo.SaveAnswers(ctx, id, blob)
}

// GetResponse lê o registro e recalcula as notas; notas nulas enquanto incompleto
func (u *surveyUseCase) GetResponse(ctx context.Context, id string) (*ResponseView, error) {
	record, err := u.responseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	answers, err := decodeAnswers(record.AnswersJSON)
	if err != nil {
		return nil, &entities.StorageError{Op: "decode answers", Err: err}
	}

	view := &ResponseView{ResponseRecord: *record, Answers: answers}
	if questionnaire.IsComplete(answers) {
		results := scoring.Compute(answers)
		view.Scores = &results
	}
	return view, nil
}

// ExportResponse gera o CSV do registro
func (u *surveyUseCase) ExportResponse(ctx context.Context, id string) ([]byte, error) {
	view, err := u.GetResponse(ctx, id)
	if err != nil {
		return nil, err
	}

	out, err := BuildCSV(view)
	if err != nil {
		return nil, fmt.Errorf("failed to build csv for %s: %w", id, err)
	}
	return out, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
