package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"neunet/recruitment-api/internal/models"
	"neunet/recruitment-api/internal/repositories"
)

type QuestionnaireHandler struct {
	repo repositories.QuestionnaireRepository
}

func NewQuestionnaireHandler(repo repositories.QuestionnaireRepository) *QuestionnaireHandler {
	return &QuestionnaireHandler{repo: repo}
}

// HandleCreate handles POST /questionnaire/create. Success echoes the
// validated input; store-assigned metadata is only visible on a later read.
func (h *QuestionnaireHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.QuestionnaireCreate

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	questionnaire := &models.Questionnaire{
		ID:            req.ID,
		JobID:         req.JobID,
		Questionnaire: datatypes.NewJSONType(req.Questionnaire),
	}

	if err := h.repo.Create(questionnaire); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Failed to create questionnaire",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Questionnaire store unavailable",
		})
	}

	return c.JSON(req)
}

// HandleGetByJobID handles GET /questionnaire/:job_id.
func (h *QuestionnaireHandler) HandleGetByJobID(c *fiber.Ctx) error {
	jobID := c.Params("job_id")

	questionnaire, err := h.repo.FindByJobID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Questionnaire not found",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Questionnaire store unavailable",
		})
	}

	return c.JSON(questionnaire.ToResponse())
}
