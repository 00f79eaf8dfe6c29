package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGemini struct {
	reply      string
	chatErr    error
	embedding  []float32
	embedErr   error
	lastSystem string
	lastInput  string
}

func (f *fakeGemini) GenerateChat(ctx context.Context, systemPrompt, message string) (string, error) {
	f.lastSystem = systemPrompt
	f.lastInput = message
	if f.chatErr != nil {
		return "", f.chatErr
	}
	return f.reply, nil
}

func (f *fakeGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if f.embedErr != nil {
		return nil, f.embedErr
	}
	return f.embedding, nil
}

func TestExtractSuggestedActions_SingleKeyword(t *testing.T) {
	actions := extractSuggestedActions("I can Schedule Interview with the candidate tomorrow.")

	require.Len(t, actions, 1)
	assert.Equal(t, "schedule interview", actions[0]["type"])
	assert.Equal(t, "Should I schedule an interview?", actions[0]["suggestion"])
}

func TestExtractSuggestedActions_NoKeyword(t *testing.T) {
	actions := extractSuggestedActions("The candidate has five years of Go experience.")

	require.NotNil(t, actions)
	assert.Empty(t, actions)
}

func TestExtractSuggestedActions_TableOrder(t *testing.T) {
	// Keywords appear in the reply in reverse table order; output must
	// still follow the table.
	content := "First create job, then update status, and finally send email."
	actions := extractSuggestedActions(content)

	require.Len(t, actions, 3)
	assert.Equal(t, "send email", actions[0]["type"])
	assert.Equal(t, "update status", actions[1]["type"])
	assert.Equal(t, "create job", actions[2]["type"])
}

func TestExtractSuggestedActions_NoDuplicates(t *testing.T) {
	actions := extractSuggestedActions("send email now, then send email again")

	require.Len(t, actions, 1)
	assert.Equal(t, "send email", actions[0]["type"])
}

func TestEnrichMessage(t *testing.T) {
	jobID := 42

	assert.Equal(t, "hello", enrichMessage("hello", nil, ""))
	assert.Equal(t, "For job ID 42: hello", enrichMessage("hello", &jobID, ""))
	assert.Equal(t, "hello (regarding candidate: a@b.com)", enrichMessage("hello", nil, "a@b.com"))
	assert.Equal(t,
		"For job ID 42: hello (regarding candidate: a@b.com)",
		enrichMessage("hello", &jobID, "a@b.com"),
	)
}

func TestProcessMessage_Success(t *testing.T) {
	gemini := &fakeGemini{reply: "You should fetch candidates for this role."}
	assistant := NewAssistantService(gemini)

	jobID := 7
	result, err := assistant.ProcessMessage(context.Background(), "who fits?", &jobID, "a@b.com")
	require.NoError(t, err)

	assert.Equal(t, "You should fetch candidates for this role.", result.Response)
	require.Len(t, result.SuggestedActions, 1)
	assert.Equal(t, "fetch candidates", result.SuggestedActions[0]["type"])
	assert.Equal(t, "For job ID 7: who fits? (regarding candidate: a@b.com)", gemini.lastInput)
}

func TestProcessMessage_UpstreamFailureFallsBack(t *testing.T) {
	gemini := &fakeGemini{chatErr: errors.New("rate limited")}
	assistant := NewAssistantService(gemini)

	result, err := assistant.ProcessMessage(context.Background(), "hello", nil, "")
	require.NoError(t, err)

	assert.Equal(t,
		"I apologize, but I encountered an error processing your request. Please try again.",
		result.Response,
	)
	require.NotNil(t, result.SuggestedActions)
	assert.Empty(t, result.SuggestedActions)
}
