// Package scoring turns a survey answer set into readiness results.
//
// Compute is a pure function: the same answers always give the same results.
// A missing answer counts as the neutral value 3.
package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/PavaniTiago/readiness-survey-api/internal/domain/entities"
	"github.com/PavaniTiago/readiness-survey-api/internal/domain/questionnaire"
)

const (
	neutralAnswer = 3
	gatingLimit   = 2

	redBelow            = 40
	orangeBelow         = 70
	recommendationBelow = 60
	secondRiskBelow     = 70
)

const allGoodRecommendation = "All dimensions are in good shape. Continue monitoring and maintain stakeholder alignment."

type recommendationRule struct {
	dimension entities.Dimension
	signal    string
	text      string
}

// Ordered as the dimensions are declared. Value Case and Process have no signal question.
var recommendationRules = []recommendationRule{
	{
		dimension: entities.DimensionSponsorship,
		signal:    "Q1",
		text:      "Establish an active executive sponsor, set up a decision forum, and implement weekly governance cadence.",
	},
	{
		dimension: entities.DimensionValueCase,
		text:      "Define a clear value case with measurable KPIs and enforce a scope freeze to prevent scope creep.",
	},
	{
		dimension: entities.DimensionCapacity,
		signal:    "Q8",
		text:      "Create a staffing plan with explicit time allocation for the project and identify change champions.",
	},
	{
		dimension: entities.DimensionProcess,
		text:      "Conduct a process mapping workshop and establish a formal change request process.",
	},
	{
		dimension: entities.DimensionDataTooling,
		signal:    "Q13",
		text:      "Complete a data inventory, unblock data access, and create a concrete integration plan for Pigment.",
	},
}

// TrafficLight classifies a 0-100 score.
func TrafficLight(score int) entities.TrafficLight {
	switch {
	case score < redBelow:
		return entities.TrafficLightRed
	case score < orangeBelow:
		return entities.TrafficLightOrange
	default:
		return entities.TrafficLightGreen
	}
}

// Compute scores an answer set.
func Compute(answers entities.Answers) entities.SurveyResults {
	dims := dimensionScores(answers)

	sum := 0
	for _, d := range dims {
		sum += d.Score
	}
	overall := int(math.Round(float64(sum) / float64(len(dims))))

	return entities.SurveyResults{
		Overall:             overall,
		OverallTrafficLight: TrafficLight(overall),
		Dimensions:          dims,
		Risks:               risks(dims, answers),
		Recommendations:     recommendations(dims, answers),
		GatingWarnings:      gatingWarnings(answers),
	}
}

func valueOf(answers entities.Answers, id string) int {
	if v, ok := answers[id]; ok {
		return v
	}
	return neutralAnswer
}

func dimensionScores(answers entities.Answers) []entities.DimensionScore {
	dims := questionnaire.Dimensions()
	out := make([]entities.DimensionScore, 0, len(dims))
	for _, dim := range dims {
		qs := questionnaire.ByDimension(dim)
		total := 0
		for _, q := range qs {
			total += valueOf(answers, q.ID)
		}
		avg := float64(total) / float64(len(qs))
		score := int(math.Round(((avg - 1) / 4) * 100))
		out = append(out, entities.DimensionScore{
			Dimension:    dim,
			Score:        score,
			Avg:          avg,
			TrafficLight: TrafficLight(score),
		})
	}
	return out
}

func failedGating(answers entities.Answers) []entities.Question {
	var out []entities.Question
	for _, q := range questionnaire.Gating() {
		if valueOf(answers, q.ID) <= gatingLimit {
			out = append(out, q)
		}
	}
	return out
}

func gatingWarnings(answers entities.Answers) []string {
	warnings := []string{}
	for _, q := range failedGating(answers) {
		warnings = append(warnings, fmt.Sprintf("Gating risk: \"%s\" scored %d (≤2)", q.Text, valueOf(answers, q.ID)))
	}
	return warnings
}

func risks(dims []entities.DimensionScore, answers entities.Answers) []string {
	sorted := make([]entities.DimensionScore, len(dims))
	copy(sorted, dims)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score < sorted[j].Score
	})

	out := []string{
		fmt.Sprintf("Lowest dimension: %s (%d/100)", sorted[0].Dimension, sorted[0].Score),
	}
	if len(sorted) > 1 && sorted[1].Score < secondRiskBelow {
		out = append(out, fmt.Sprintf("Second lowest: %s (%d/100)", sorted[1].Dimension, sorted[1].Score))
	}
	for _, q := range failedGating(answers) {
		out = append(out, fmt.Sprintf("Critical gap: \"%s\" rated %d/5", q.Text, valueOf(answers, q.ID)))
	}
	return out
}

func recommendations(dims []entities.DimensionScore, answers entities.Answers) []string {
	scores := make(map[entities.Dimension]int, len(dims))
	for _, d := range dims {
		scores[d.Dimension] = d.Score
	}

	var out []string
	for _, rule := range recommendationRules {
		triggered := scores[rule.dimension] < recommendationBelow
		if rule.signal != "" && valueOf(answers, rule.signal) <= gatingLimit {
			triggered = true
		}
		if triggered {
			out = append(out, rule.text)
		}
	}
	if len(out) == 0 {
		out = append(out, allGoodRecommendation)
	}
	return out
}
