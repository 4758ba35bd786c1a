package handlers

import (
	"github.com/PavaniTiago/readiness-survey-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Version é reportada pelo health check
const Version = "1.0.0"

type Handlers struct {
	Survey *SurveyHandler
}

func NewHandlers(surveyUseCase usecases.SurveyUseCase, log *zap.Logger) *Handlers {
	return &Handlers{
		Survey: NewSurveyHandler(surveyUseCase, log),
	}
}

func (h *Handlers) RegisterRoutes(app *fiber.App) {
	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": Version,
		})
	})

	api := app.Group("/api")
	api.Get("/questions", h.Survey.GetQuestions)

	responses := api.Group("/responses")
	responses.Post("/", h.Survey.CreateResponse)
	responses.Post("/:id/answers", h.Survey.SubmitAnswers)
	responses.Get("/:id", h.Survey.GetResponse)
	responses.Get("/:id/export.csv", h.Survey.ExportResponse)
}
