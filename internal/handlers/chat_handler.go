package handlers

import (
	"github.com/gofiber/fiber/v2"

	"neunet/recruitment-api/internal/models"
	"neunet/recruitment-api/internal/services"
)

type ChatHandler struct {
	assistant services.AssistantService
}

func NewChatHandler(assistant services.AssistantService) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

// HandleSend handles POST /chat/send. Only the last message in the
// conversation is consumed.
func (h *ChatHandler) HandleSend(c *fiber.Ctx) error {
	var req models.ChatRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if len(req.Messages) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No message provided",
		})
	}

	lastMessage := req.Messages[len(req.Messages)-1]

	candidateEmail := ""
	if req.CandidateEmail != nil {
		candidateEmail = *req.CandidateEmail
	}

	result, err := h.assistant.ProcessMessage(c.Context(), lastMessage.Content, req.JobID, candidateEmail)
	if err != nil {
		// Raw error text passthrough, kept for behavior compatibility
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(result)
}
