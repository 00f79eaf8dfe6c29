package handlers

import (
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neunet/recruitment-api/internal/models"
)

func newChatApp(assistant *fakeAssistant) *fiber.App {
	app := fiber.New()
	h := NewChatHandler(assistant)
	app.Post("/api/v1/chat/send", h.HandleSend)
	return app
}

func TestChatSend_EmptyMessages(t *testing.T) {
	app := newChatApp(&fakeAssistant{})

	payload := map[string]interface{}{
		"messages":        []interface{}{},
		"job_id":          3,
		"candidate_email": "a@b.com",
	}

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/chat/send", payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatSend_ConsumesLastMessageOnly(t *testing.T) {
	assistant := &fakeAssistant{
		response: &models.ChatResponse{
			Response:         "Here are the top candidates. I can send email to each.",
			SuggestedActions: []map[string]string{{"type": "send email", "suggestion": "Would you like me to send an email?"}},
		},
	}
	app := newChatApp(assistant)

	payload := map[string]interface{}{
		"messages": []map[string]string{
			{"role": "user", "content": "first question"},
			{"role": "assistant", "content": "first answer"},
			{"role": "user", "content": "show me top candidates"},
		},
		"job_id": 42,
	}

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/chat/send", payload))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "show me top candidates", assistant.lastMessage)
	require.NotNil(t, assistant.lastJobID)
	assert.Equal(t, 42, *assistant.lastJobID)
	assert.Empty(t, assistant.lastEmail)

	var body models.ChatResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, assistant.response.Response, body.Response)
	require.Len(t, body.SuggestedActions, 1)
	assert.Equal(t, "send email", body.SuggestedActions[0]["type"])
}

func TestChatSend_AssistantErrorIsRawServerError(t *testing.T) {
	assistant := &fakeAssistant{err: errors.New("deployment quota exhausted")}
	app := newChatApp(assistant)

	payload := map[string]interface{}{
		"messages": []map[string]string{{"role": "user", "content": "hello"}},
	}

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/chat/send", payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Contains(t, string(raw), "deployment quota exhausted")
}
