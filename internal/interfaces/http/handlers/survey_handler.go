package handlers

import (
	"fmt"

	"github.com/PavaniTiago/readiness-survey-api/internal/application/usecases"
	"github.com/PavaniTiago/readiness-survey-api/internal/domain/questionnaire"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SurveyHandler lida com requisições relacionadas à pesquisa de prontidão
type SurveyHandler struct {
	surveyUseCase usecases.SurveyUseCase
	log           *zap.Logger
}

// NewSurveyHandler cria uma nova instância de SurveyHandler
func NewSurveyHandler(surveyUseCase usecases.SurveyUseCase, log *zap.Logger) *SurveyHandler {
	return &SurveyHandler{
		surveyUseCase: surveyUseCase,
		log:           log,
	}
}

// GetQuestions retorna o catálogo fixo de perguntas e as dimensões
// @Summary Retorna o questionário
// @Tags survey
// @Produce json
// @Success 200 {object} map[string]interface{} "Perguntas e dimensões"
// @Router /api/questions [get]
func (h *SurveyHandler) GetQuestions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"questions":  questionnaire.Questions(),
		"dimensions": questionnaire.Dimensions(),
	})
}

// CreateResponse cria um registro sem respostas
// @Summary Cria uma resposta
// @Tags survey
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "ID criado"
// @Failure 400 {object} map[string]interface{} "Erro de validação"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /api/responses [post]
func (h *SurveyHandler) CreateResponse(c *fiber.Ctx) error {
	var input usecases.CreateResponseInput
	if err := decodeBody(c, &input); err != nil {
		return badRequest(c, err)
	}

	id, err := h.surveyUseCase.CreateResponse(c.UserContext(), input)
	if err != nil {
		return h.respondError(c, "create response", err)
	}

	h.log.Info("response created", zap.String("response_id", id), requestIDField(c))
	return c.JSON(fiber.Map{"id": id})
}

// SubmitAnswers substitui as respostas de um registro
// @Summary Envia as respostas
// @Tags survey
// @Accept json
// @Produce json
// @Param id path string true "ID da resposta"
// @Success 200 {object} map[string]interface{} "success"
// @Failure 400 {object} map[string]interface{} "Erro de validação"
// @Failure 404 {object} map[string]interface{} "Não encontrado"
// @Router /api/responses/{id}/answers [post]
func (h *SurveyHandler) SubmitAnswers(c *fiber.Ctx) error {
	id := c.Params("id")

	// fasthttp reaproveita o buffer do corpo após o handler
	body := append([]byte(nil), c.Body()...)

	if err := h.surveyUseCase.SubmitAnswers(c.UserContext(), id, body); err != nil {
		return h.respondError(c, "submit answers", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetResponse retorna o registro, as respostas e as notas
// @Summary Retorna uma resposta
// @Tags survey
// @Produce json
// @Param id path string true "ID da resposta"
// @Success 200 {object} usecases.ResponseView
// @Failure 404 {object} map[string]interface{} "Não encontrado"
// @Router /api/responses/{id} [get]
func (h *SurveyHandler) GetResponse(c *fiber.Ctx) error {
	view, err := h.surveyUseCase.GetResponse(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.respondError(c, "get response", err)
	}
	return c.JSON(view)
}

// ExportResponse devolve o CSV como anexo
// @Summary Exporta uma resposta em CSV
// @Tags survey
// @Produce text/csv
// @Param id path string true "ID da resposta"
// @Router /api/responses/{id}/export.csv [get]
func (h *SurveyHandler) ExportResponse(c *fiber.Ctx) error {
	id := c.Params("id")

	out, err := h.surveyUseCase.ExportResponse(c.UserContext(), id)
	if err != nil {
		return h.respondError(c, "export response", err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=\"survey-%s.csv\"", id))
	return c.Send(out)
}
