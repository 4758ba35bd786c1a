package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/PavaniTiago/readiness-survey-api/internal/domain/entities"
	"github.com/PavaniTiago/readiness-survey-api/internal/domain/repositories"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2026, 10, 19, 14, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T) SurveyUseCase {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&entities.ResponseRecord{}))

	seq := 0
	return NewSurveyUseCase(
		repositories.NewResponseRepository(db),
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("resp-%d", seq)
		}),
	)
}

func createDefault(t *testing.T, uc SurveyUseCase) string {
	t.Helper()
	id, err := uc.CreateResponse(context.Background(), CreateResponseInput{
		CompanyName: "Acme Corp",
		ProjectName: "FP&A rollout",
	})
	require.NoError(t, err)
	return id
}

func TestCreateResponse_RequiresCompanyAndProject(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.CreateResponse(ctx, CreateResponseInput{ProjectName: "P"})
	verr := requireValidation(t, err)
	assert.Equal(t, "company_name", verr.Field)
	assert.Equal(t, "company_name and project_name are required", verr.Message)

	_, err = uc.CreateResponse(ctx, CreateResponseInput{CompanyName: "C", ProjectName: "   "})
	verr = requireValidation(t, err)
	assert.Equal(t, "project_name", verr.Field)
}

func TestCreateResponse_DistinctIDsForIdenticalInput(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&entities.ResponseRecord{}))
	// Gerador padrão (UUID)
	uc := NewSurveyUseCase(repositories.NewResponseRepository(db))

	input := CreateResponseInput{CompanyName: "Acme", ProjectName: "Rollout"}
	first, err := uc.CreateResponse(context.Background(), input)
	require.NoError(t, err)
	second, err := uc.CreateResponse(context.Background(), input)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, first, 36)
}

func TestCreateResponse_OptionalFieldsStoredAsNull(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	id, err := uc.CreateResponse(ctx, CreateResponseInput{
		CompanyName:    "  Acme  ",
		ProjectName:    "Rollout",
		RespondentRole: "Head of FP&A",
	})
	require.NoError(t, err)

	view, err := uc.GetResponse(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Acme", view.CompanyName)
	assert.True(t, fixedNow.Equal(view.CreatedAt))
	assert.Nil(t, view.GoLiveDate)
	assert.Nil(t, view.RespondentEmail)
	require.NotNil(t, view.RespondentRole)
	assert.Equal(t, "Head of FP&A", *view.RespondentRole)
	assert.Empty(t, view.Answers)
	assert.Nil(t, view.Scores)
}

func TestGetResponse_NotFound(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.GetResponse(context.Background(), "missing")
	assert.ErrorIs(t, err, entities.ErrResponseNotFound)

	var serr *entities.StorageError
	assert.False(t, errors.As(err, &serr))
}

func TestSubmitAnswers_UnknownIDBeforeValidation(t *testing.T) {
	uc := newTestUseCase(t)

	err := uc.SubmitAnswers(context.Background(), "missing", []byte(`{}`))
	assert.ErrorIs(t, err, entities.ErrResponseNotFound)
}

func TestSubmitAnswers_ComputesScoresOnRead(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()
	id := createDefault(t, uc)

	require.NoError(t, uc.SubmitAnswers(ctx, id, answersBody(t, 5, nil)))

	view, err := uc.GetResponse(ctx, id)
	require.NoError(t, err)
	assert.Len(t, view.Answers, 15)
	require.NotNil(t, view.Scores)
	assert.Equal(t, 100, view.Scores.Overall)
	assert.Equal(t, entities.TrafficLightGreen, view.Scores.OverallTrafficLight)
}

func TestSubmitAnswers_OverwritesPreviousSet(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()
	id := createDefault(t, uc)

	require.NoError(t, uc.SubmitAnswers(ctx, id, answersBody(t, 5, nil)))
	require.NoError(t, uc.SubmitAnswers(ctx, id, answersBody(t, 1, nil)))

	view, err := uc.GetResponse(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Answers["Q1"])
	require.NotNil(t, view.Scores)
	assert.Equal(t, 0, view.Scores.Overall)
	assert.Len(t, view.Scores.GatingWarnings, 3)
}

func TestSubmitAnswers_RejectedSetLeavesStoredAnswers(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()
	id := createDefault(t, uc)

	require.NoError(t, uc.SubmitAnswers(ctx, id, answersBody(t, 4, nil)))

	err := uc.SubmitAnswers(ctx, id, answersBody(t, 4, map[string]interface{}{"Q3": 6}))
	verr := requireValidation(t, err)
	assert.Equal(t, "Q3", verr.Field)

	view, err := uc.GetResponse(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 4, view.Answers["Q3"])
}

func TestExportResponse_WithoutAnswers(t *testing.T) {
	uc := newTestUseCase(t)
	id := createDefault(t, uc)

	out, err := uc.ExportResponse(context.Background(), id)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	assert.Equal(t, "Field,Value", lines[0])
	assert.Equal(t, "Company,Acme Corp", lines[1])
	assert.Equal(t, "Project,FP&A rollout", lines[2])
	assert.Equal(t, "Date,2026-10-19T14:00:00.000Z", lines[6])
	assert.Equal(t, "Question ID,Dimension,Question,Answer", lines[8])
	assert.Equal(t, "Q1,Sponsorship & Leadership,An executive sponsor is identified and actively engaged.,", lines[9])
	assert.Equal(t, "Dimension,Score,Traffic Light", lines[len(lines)-1])
	assert.NotContains(t, string(out), "Overall Score")
}

func TestExportResponse_NotFound(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.ExportResponse(context.Background(), "missing")
	assert.ErrorIs(t, err, entities.ErrResponseNotFound)
}
