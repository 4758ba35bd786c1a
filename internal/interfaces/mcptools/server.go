package mcptools

import (
	"github.com/PavaniTiago/readiness-survey-api/internal/application/usecases"
	"github.com/mark3labs/mcp-go/server"
)

const serverInstructions = `Change readiness survey tools.
Use list_questions to see the questionnaire, readiness_results to read a response with its scores,
and readiness_export to get the CSV export of a response.`

// NewServer registra as ferramentas sobre o caso de uso informado
func NewServer(surveyUseCase usecases.SurveyUseCase, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"readiness-survey",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions),
	)

	listTool := NewListQuestionsTool()
	s.AddTool(listTool.Definition(), listTool.Handle)

	resultsTool := NewResultsTool(surveyUseCase)
	s.AddTool(resultsTool.Definition(), resultsTool.Handle)

	exportTool := NewExportTool(surveyUseCase)
	s.AddTool(exportTool.Definition(), exportTool.Handle)

	return s
}
