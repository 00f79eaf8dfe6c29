package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"neunet/recruitment-api/internal/models"
	"neunet/recruitment-api/internal/repositories"
	"neunet/recruitment-api/internal/services"
)

type ApplicationHandler struct {
	repo   repositories.ApplicationRepository
	worker services.Worker
}

func NewApplicationHandler(repo repositories.ApplicationRepository, worker services.Worker) *ApplicationHandler {
	return &ApplicationHandler{repo: repo, worker: worker}
}

// HandleSubmit handles POST /applications/submit.
func (h *ApplicationHandler) HandleSubmit(c *fiber.Ctx) error {
	var req models.ApplicationCreate

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

	application := &models.Application{
		ID:                 req.ID,
		JobID:              req.JobID,
		JobQuestionnaireID: req.JobQuestionnaireID,
		CandidateEmail:     req.CandidateEmail,
		Applications:       datatypes.NewJSONType(req.Applications),
	}

	if err := h.repo.Create(application); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Failed to submit application",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Application store unavailable",
		})
	}

	// Resume indexing runs in the background
	h.worker.EnqueueApplication(application.ID)

	return c.JSON(req)
}

// HandleGetByJobID handles GET /applications/job/:job_id. An unknown job id
// yields an empty array, never a 404.
func (h *ApplicationHandler) HandleGetByJobID(c *fiber.Ctx) error {
	jobID := c.Params("job_id")

	applications, err := h.repo.FindByJobID(jobID)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Application store unavailable",
		})
	}

	responses := []models.ApplicationResponse{}
	for i := range applications {
		responses = append(responses, applications[i].ToResponse())
	}

	return c.JSON(responses)
}

// HandleGetByID handles GET /applications/:application_id.
func (h *ApplicationHandler) HandleGetByID(c *fiber.Ctx) error {
	applicationID := c.Params("application_id")

	application, err := h.repo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Application not found",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Application store unavailable",
		})
	}

	return c.JSON(application.ToResponse())
}
