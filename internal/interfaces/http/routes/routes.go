package routes

import (
	"github.com/PavaniTiago/readiness-survey-api/internal/application/usecases"
	"github.com/PavaniTiago/readiness-survey-api/internal/domain/repositories"
	"github.com/PavaniTiago/readiness-survey-api/internal/interfaces/http/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, log *zap.Logger) {
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// ETag para GETs repetidos; as notas são recalculadas, o corpo é que é comparado
	app.Use(etag.New())

	// Repositories
	responseRepo := repositories.NewResponseRepository(db)

	// Use Cases
	surveyUseCase := usecases.NewSurveyUseCase(responseRepo)

	// Handlers
	handlers.NewHandlers(surveyUseCase, log).RegisterRoutes(app)
}
