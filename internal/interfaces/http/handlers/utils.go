package handlers

import (
	"errors"

	"github.com/PavaniTiago/readiness-survey-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var errInvalidJSON = errors.New("invalid JSON body")

// decodeBody usa o decoder JSON configurado no app; corpo vazio vale como {}
func decodeBody(c *fiber.Ctx, out any) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	if err := c.App().Config().JSONDecoder(body, out); err != nil {
		return errInvalidJSON
	}
	return nil
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// respondError traduz os erros de domínio para status HTTP
func (h *SurveyHandler) respondError(c *fiber.Ctx, op string, err error) error {
	var validationErr *entities.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return badRequest(c, validationErr)
	case errors.Is(err, entities.ErrResponseNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	default:
		h.log.Error("request failed",
			zap.String("op", op),
			zap.String("response_id", c.Params("id")),
			requestIDField(c),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}

func requestIDField(c *fiber.Ctx) zap.Field {
	id, _ := c.Locals("requestid").(string)
	return zap.String("request_id", id)
}
