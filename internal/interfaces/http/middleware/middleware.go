package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// SetupMiddlewares registra recover, request id, log de requisições e CORS
func SetupMiddlewares(app *fiber.App, allowOrigins string, log *zap.Logger) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Error("panic recovered", zap.Any("panic", e), zap.String("path", c.Path()))
		},
	}))

	app.Use(requestid.New())

	app.Use(RequestLogger(log))

	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
		// Content-Disposition precisa ser visível para o download do CSV
		ExposeHeaders: "Content-Disposition",
		MaxAge:        300, // 5 minutes
	}))
}
