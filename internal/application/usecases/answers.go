package usecases

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/PavaniTiago/readiness-survey-api/internal/domain/entities"
	"github.com/PavaniTiago/readiness-survey-api/internal/domain/questionnaire"
	"github.com/tidwall/gjson"
)

const (
	minAnswer = 1
	maxAnswer = 5
)

// ParseAnswers valida o corpo {"answers": {...}} contra o questionário.
// Ausente, não numérico, fora da faixa e ID desconhecido geram códigos distintos.
func ParseAnswers(body []byte) (entities.Answers, error) {
	if !gjson.ValidBytes(body) {
		return nil, entities.NewValidationError("body", entities.CodeInvalidBody, "request body must be valid JSON")
	}

	raw := gjson.GetBytes(body, "answers")
	if !raw.IsObject() {
		return nil, entities.NewValidationError("answers", entities.CodeRequired, "answers object is required")
	}

	answers := make(entities.Answers, questionnaire.Count())
	for _, q := range questionnaire.Questions() {
		v := raw.Get(q.ID)
		if !v.Exists() || v.Type == gjson.Null {
			return nil, entities.NewValidationError(q.ID, entities.CodeMissing, fmt.Sprintf("Missing answer for %s", q.ID))
		}
		if v.Type != gjson.Number {
			return nil, rangeError(q.ID, entities.CodeNotANumber)
		}
		f := v.Float()
		if f != math.Trunc(f) || f < minAnswer || f > maxAnswer {
			return nil, rangeError(q.ID, entities.CodeOutOfRange)
		}
		answers[q.ID] = int(f)
	}

	var unknown string
	raw.ForEach(func(key, _ gjson.Result) bool {
		if _, ok := questionnaire.Lookup(key.String()); !ok {
			unknown = key.String()
			return false
		}
		return true
	})
	if unknown != "" {
		return nil, entities.NewValidationError(unknown, entities.CodeUnknownQuestion, fmt.Sprintf("unknown question id %s", unknown))
	}

	return answers, nil
}

func rangeError(id, code string) error {
	return entities.NewValidationError(id, code, fmt.Sprintf("%s must be a number between %d and %d", id, minAnswer, maxAnswer))
}

// encodeAnswers serializa o conjunto para a coluna answers_json
func encodeAnswers(answers entities.Answers) (string, error) {
	b, err := json.Marshal(answers)
	if err != nil {
		return "", fmt.Errorf("failed to encode answers: %w", err)
	}
	return string(b), nil
}

// decodeAnswers lê o blob armazenado; nulo ou vazio vira conjunto vazio
func decodeAnswers(blob *string) (entities.Answers, error) {
	answers := entities.Answers{}
	if blob == nil || *blob == "" {
		return answers, nil
	}
	if err := json.Unmarshal([]byte(*blob), &answers); err != nil {
		return nil, fmt.Errorf("failed to decode stored answers: %w", err)
	}
	return answers, nil
}
