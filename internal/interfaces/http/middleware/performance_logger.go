package middleware

import (
	"time"

	"github.com/PavaniTiago/readiness-survey-api/internal/infrastructure/database"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SlowRequestThreshold marca requisições que merecem nível warn
const SlowRequestThreshold = 500 * time.Millisecond

// RequestLogger mede o tempo de resposta e propaga o request id até o GORM
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, _ := c.Locals("requestid").(string)
		c.SetUserContext(database.WithRequestID(c.UserContext(), id))

		// Registrar o tempo de início
		start := time.Now()

		err := c.Next()
		if err != nil {
			// deixa o ErrorHandler do app escrever o status antes do log
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		duration := time.Since(start)
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", duration),
			zap.String("request_id", id),
		}

		if duration >= SlowRequestThreshold {
			log.Warn("slow request", fields...)
		} else {
			log.Info("request", fields...)
		}
		return nil
	}
}
