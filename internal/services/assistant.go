package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"neunet/recruitment-api/internal/models"
)

// systemPrompt advertises the assistant's capabilities. None of them are
// executed by this service; suggested actions are advisory only and the
// actual operation stays with the caller.
const systemPrompt = `You are an AI recruitment assistant with access to the following functions:
1. Fetch top candidates by percentage or count
2. Send emails to candidates
3. Update application status
4. Create and manage job descriptions
5. Execute custom SQL queries

When appropriate, suggest these actions to help with recruitment tasks.
`

const fallbackResponse = "I apologize, but I encountered an error processing your request. Please try again."

// ActionRule maps a keyword phrase found in the assistant reply to the
// suggestion surfaced with it. Rules are an ordered table: suggested actions
// follow table order, not the order keywords appear in the reply.
type ActionRule struct {
	Keyword    string
	Suggestion string
}

var ActionRules = []ActionRule{
	{Keyword: "send email", Suggestion: "Would you like me to send an email?"},
	{Keyword: "schedule interview", Suggestion: "Should I schedule an interview?"},
	{Keyword: "fetch candidates", Suggestion: "Would you like me to fetch candidate details?"},
	{Keyword: "update status", Suggestion: "Should I update the candidate's status?"},
	{Keyword: "create job", Suggestion: "Would you like me to create a job posting?"},
}

type AssistantService interface {
	ProcessMessage(ctx context.Context, message string, jobID *int, candidateEmail string) (*models.ChatResponse, error)
}

type assistantService struct {
	gemini GeminiService
}

func NewAssistantService(gemini GeminiService) AssistantService {
	return &assistantService{gemini: gemini}
}

// ProcessMessage implements AssistantService. Upstream failures are not
// propagated: the caller gets a fixed fallback reply with no actions.
func (a *assistantService) ProcessMessage(ctx context.Context, message string, jobID *int, candidateEmail string) (*models.ChatResponse, error) {
	enriched := enrichMessage(message, jobID, candidateEmail)

	content, err := a.gemini.GenerateChat(ctx, systemPrompt, enriched)
	if err != nil {
		log.Printf("❌ Assistant call failed: %v\n", err)
		return &models.ChatResponse{
			Response:         fallbackResponse,
			SuggestedActions: []map[string]string{},
		}, nil
	}

	return &models.ChatResponse{
		Response:         content,
		SuggestedActions: extractSuggestedActions(content),
	}, nil
}

// enrichMessage annotates the message with job and candidate context as
// plain text, not structured context.
func enrichMessage(message string, jobID *int, candidateEmail string) string {
	enriched := message
	if jobID != nil {
		enriched = fmt.Sprintf("For job ID %d: %s", *jobID, message)
	}
	if candidateEmail != "" {
		enriched = fmt.Sprintf("%s (regarding candidate: %s)", enriched, candidateEmail)
	}
	return enriched
}

// extractSuggestedActions scans the reply for each rule's keyword,
// case-insensitively, and emits at most one action per rule.
func extractSuggestedActions(content string) []map[string]string {
	actions := []map[string]string{}

	contentLower := strings.ToLower(content)
	for _, rule := range ActionRules {
		if strings.Contains(contentLower, rule.Keyword) {
			actions = append(actions, map[string]string{
				"type":       rule.Keyword,
				"suggestion": rule.Suggestion,
			})
		}
	}

	return actions
}
