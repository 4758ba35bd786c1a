package usecases

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/PavaniTiago/readiness-survey-api/internal/domain/entities"
	"github.com/PavaniTiago/readiness-survey-api/internal/domain/questionnaire"
	"github.com/PavaniTiago/readiness-survey-api/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeView(company string) *ResponseView {
	answers := entities.Answers{}
	for _, q := range questionnaire.Questions() {
		answers[q.ID] = 4
	}
	results := scoring.Compute(answers)
	return &ResponseView{
		ResponseRecord: entities.ResponseRecord{
			ID:          "r-1",
			CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			CompanyName: company,
			ProjectName: "Rollout",
		},
		Answers: answers,
		Scores:  &results,
	}
}

func TestBuildCSV_CompleteIncludesScores(t *testing.T) {
	out, err := BuildCSV(completeView("Acme"))
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(out))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	// csv.Reader pula linhas em branco
	last := records[len(records)-1]
	assert.Equal(t, []string{"Overall Score", "75", "green"}, last)

	var dims [][]string
	for _, rec := range records {
		if len(rec) == 3 && rec[0] != "Dimension" && rec[0] != "Overall Score" {
			dims = append(dims, rec)
		}
	}
	require.Len(t, dims, 5)
	assert.Equal(t, []string{"Sponsorship & Leadership", "75", "green"}, dims[0])

	assert.Contains(t, string(out), "\nQ15,Data & Tooling Readiness,")
	assert.Contains(t, string(out), "\n\nOverall Score,75,green\n")
}

func TestBuildCSV_QuotesSpecialCharacters(t *testing.T) {
	out, err := BuildCSV(completeView(`Acme, "Global"`))
	require.NoError(t, err)

	assert.Contains(t, string(out), "Company,\"Acme, \"\"Global\"\"\"\n")
	// Texto da Q8 tem aspas e a Q7 tem vírgulas
	assert.Contains(t, string(out), `Q8,Capacity & Roles,"People have dedicated time (not ""on top of everything else"").",4`)
	assert.Contains(t, string(out), `Q7,Capacity & Roles,"Key roles are named (process owner, data owner, change lead).",4`)

	r := csv.NewReader(bytes.NewReader(out))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Company", `Acme, "Global"`}, records[1])
}

func TestBuildCSV_NewlineInField(t *testing.T) {
	view := completeView("Acme")
	role := "Lead\nFinance"
	view.RespondentRole = &role

	out, err := BuildCSV(view)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Respondent Role,\"Lead\nFinance\"\n")
}
