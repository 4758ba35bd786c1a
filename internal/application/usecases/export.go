package usecases

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/PavaniTiago/readiness-survey-api/internal/domain/questionnaire"
	"github.com/PavaniTiago/readiness-survey-api/internal/utils"
)

// BuildCSV monta o documento de exportação: contexto, perguntas e, se completo, as notas
func BuildCSV(view *ResponseView) ([]byte, error) {
	rows := [][]string{
		{"Field", "Value"},
		{"Company", view.CompanyName},
		{"Project", view.ProjectName},
		{"Go-live Date", deref(view.GoLiveDate)},
		{"Respondent Role", deref(view.RespondentRole)},
		{"Respondent Email", deref(view.RespondentEmail)},
		{"Date", utils.FormatTimestamp(view.CreatedAt)},
		{},
		{"Question ID", "Dimension", "Question", "Answer"},
	}

	for _, q := range questionnaire.Questions() {
		answer := ""
		if v, ok := view.Answers[q.ID]; ok {
			answer = strconv.Itoa(v)
		}
		rows = append(rows, []string{q.ID, string(q.Dimension), q.Text, answer})
	}
	rows = append(rows, []string{}, []string{"Dimension", "Score", "Traffic Light"})

	if view.Scores != nil {
		for _, d := range view.Scores.Dimensions {
			rows = append(rows, []string{string(d.Dimension), strconv.Itoa(d.Score), string(d.TrafficLight)})
		}
		rows = append(rows,
			[]string{},
			[]string{"Overall Score", strconv.Itoa(view.Scores.Overall), string(view.Scores.OverallTrafficLight)},
		)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
