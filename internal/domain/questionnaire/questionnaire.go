// Package questionnaire holds the fixed question catalog of the readiness survey.
package questionnaire

import "github.com/PavaniTiago/readiness-survey-api/internal/domain/entities"

// Dimensions in declaration order. Ties in scoring keep this order.
var dimensions = []entities.Dimension{
	entities.DimensionSponsorship,
	entities.DimensionValueCase,
	entities.DimensionCapacity,
	entities.DimensionProcess,
	entities.DimensionDataTooling,
}

var questions = []entities.Question{
	// Sponsorship & Leadership
	{ID: "Q1", Text: "An executive sponsor is identified and actively engaged.", Dimension: entities.DimensionSponsorship, IsGating: true},
	{ID: "Q2", Text: "Decision-makers are aligned on objectives and timeline.", Dimension: entities.DimensionSponsorship},
	{ID: "Q3", Text: "Frontline managers support the change and will reinforce it.", Dimension: entities.DimensionSponsorship},

	// Value Case & Scope
	{ID: "Q4", Text: "Business outcomes and success metrics are clear.", Dimension: entities.DimensionValueCase},
	{ID: "Q5", Text: "Scope is defined and unlikely to change significantly.", Dimension: entities.DimensionValueCase},
	{ID: "Q6", Text: "Trade-offs (speed vs scope vs quality) are explicitly agreed.", Dimension: entities.DimensionValueCase},

	// Capacity & Roles
	{ID: "Q7", Text: "Key roles are named (process owner, data owner, change lead).", Dimension: entities.DimensionCapacity},
	{ID: "Q8", Text: `People have dedicated time (not "on top of everything else").`, Dimension: entities.DimensionCapacity, IsGating: true},
	{ID: "Q9", Text: "Resourcing is realistic through go-live and hypercare.", Dimension: entities.DimensionCapacity},

	// Process & Governance
	{ID: "Q10", Text: "Target processes are documented and agreed.", Dimension: entities.DimensionProcess},
	{ID: "Q11", Text: "Governance cadence exists (steerco, decisions, escalation path).", Dimension: entities.DimensionProcess},
	{ID: "Q12", Text: "Change request management is defined (who decides, how, when).", Dimension: entities.DimensionProcess},

	// Data & Tooling Readiness
	{ID: "Q13", Text: "Data sources are identified and accessible for Pigment.", Dimension: entities.DimensionDataTooling, IsGating: true},
	{ID: "Q14", Text: "Data quality is sufficient OR a concrete remediation plan exists.", Dimension: entities.DimensionDataTooling},
	{ID: "Q15", Text: "Integrations/security/access (SSO/RBAC/ETL/API) are planned and testable in time.", Dimension: entities.DimensionDataTooling},
}

var byID = func() map[string]entities.Question {
	m := make(map[string]entities.Question, len(questions))
	for _, q := range questions {
		m[q.ID] = q
	}
	return m
}()

// Questions returns a copy of the catalog in display order.
func Questions() []entities.Question {
	out := make([]entities.Question, len(questions))
	copy(out, questions)
	return out
}

// Dimensions returns the five dimensions in declaration order.
func Dimensions() []entities.Dimension {
	out := make([]entities.Dimension, len(dimensions))
	copy(out, dimensions)
	return out
}

// Count is the number of questions a complete answer set must hold.
func Count() int {
	return len(questions)
}

// Lookup returns the question with the given id.
func Lookup(id string) (entities.Question, bool) {
	q, ok := byID[id]
	return q, ok
}

// ByDimension returns the questions of one dimension in catalog order.
func ByDimension(dim entities.Dimension) []entities.Question {
	var out []entities.Question
	for _, q := range questions {
		if q.Dimension == dim {
			out = append(out, q)
		}
	}
	return out
}

// Gating returns the gating questions in catalog order.
func Gating() []entities.Question {
	var out []entities.Question
	for _, q := range questions {
		if q.IsGating {
			out = append(out, q)
		}
	}
	return out
}

// IsComplete reports whether every catalog question has an answer.
func IsComplete(answers entities.Answers) bool {
	for _, q := range questions {
		if _, ok := answers[q.ID]; !ok {
			return false
		}
	}
	return true
}
