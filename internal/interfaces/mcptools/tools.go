// Package mcptools exposes the readiness survey as MCP tools over stdio.
package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PavaniTiago/readiness-survey-api/internal/application/usecases"
	"github.com/PavaniTiago/readiness-survey-api/internal/domain/entities"
	"github.com/PavaniTiago/readiness-survey-api/internal/domain/questionnaire"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListQuestionsTool handles list_questions.
type ListQuestionsTool struct{}

func NewListQuestionsTool() *ListQuestionsTool {
	return &ListQuestionsTool{}
}

func (t *ListQuestionsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_questions",
		mcp.WithDescription("List the 15 readiness questions grouped by dimension. Gating questions are marked."),
	)
}

func (t *ListQuestionsTool) Handle(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	for _, dim := range questionnaire.Dimensions() {
		fmt.Fprintf(&sb, "## %s\n", dim)
		for _, q := range questionnaire.ByDimension(dim) {
			marker := ""
			if q.IsGating {
				marker = " [gating]"
			}
			fmt.Fprintf(&sb, "- %s%s: %s\n", q.ID, marker, q.Text)
		}
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(strings.TrimRight(sb.String(), "\n")), nil
}

// ResultsTool handles readiness_results.
type ResultsTool struct {
	surveyUseCase usecases.SurveyUseCase
}

func NewResultsTool(surveyUseCase usecases.SurveyUseCase) *ResultsTool {
	return &ResultsTool{surveyUseCase: surveyUseCase}
}

func (t *ResultsTool) Definition() mcp.Tool {
	return mcp.NewTool("readiness_results",
		mcp.WithDescription("Fetch a survey response with its answers and recomputed scores. Scores are null until all 15 answers are present."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Response ID returned when the survey was created."),
		),
	)
}

func (t *ResultsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := strings.TrimSpace(req.GetString("id", ""))
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}

	view, err := t.surveyUseCase.GetResponse(ctx, id)
	if err != nil {
		return toolError(id, err)
	}

	out, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding response %s: %w", id, err)
	}
	return mcp.NewToolResultText(string(out)), nil
}

// ExportTool handles readiness_export.
type ExportTool struct {
	surveyUseCase usecases.SurveyUseCase
}

func NewExportTool(surveyUseCase usecases.SurveyUseCase) *ExportTool {
	return &ExportTool{surveyUseCase: surveyUseCase}
}

func (t *ExportTool) Definition() mcp.Tool {
	return mcp.NewTool("readiness_export",
		mcp.WithDescription("Export a survey response as CSV: context fields, every question with its answer and, when complete, the scores."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Response ID returned when the survey was created."),
		),
	)
}

func (t *ExportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := strings.TrimSpace(req.GetString("id", ""))
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}

	out, err := t.surveyUseCase.ExportResponse(ctx, id)
	if err != nil {
		return toolError(id, err)
	}
	return mcp.NewToolResultText(string(out)), nil
}

// toolError devolve not found como resultado de erro da ferramenta; o resto sobe como erro do protocolo
func toolError(id string, err error) (*mcp.CallToolResult, error) {
	if errors.Is(err, entities.ErrResponseNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("response %s not found", id)), nil
	}
	return nil, err
}
