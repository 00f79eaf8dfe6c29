package handlers

import (
	"github.com/gofiber/fiber/v2"

	"neunet/recruitment-api/internal/models"
	"neunet/recruitment-api/internal/services"
)

type SearchHandler struct {
	gemini services.GeminiService
	index  services.ResumeIndex
}

func NewSearchHandler(gemini services.GeminiService, index services.ResumeIndex) *SearchHandler {
	return &SearchHandler{gemini: gemini, index: index}
}

// HandleSearch handles GET /candidates/search?q=...&job_id=...&limit=...
// Semantic search over indexed resume text, optionally scoped to one job.
func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "q is required",
		})
	}

	jobID := c.Query("job_id")
	limit := c.QueryInt("limit", 5)
	if limit <= 0 || limit > 50 {
		limit = 5
	}

	embedding, err := h.gemini.GenerateEmbedding(c.Context(), query)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to embed search query",
		})
	}

	results, err := h.index.SearchCandidates(c.Context(), embedding, jobID, limit)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Resume index unavailable",
		})
	}

	return c.JSON(models.CandidateSearchResponse{
		Query:   query,
		Results: results,
	})
}
