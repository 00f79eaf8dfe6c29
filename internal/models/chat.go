package models

// ChatMessage is one turn in the conversation sent by the client. Only the
// last message is consumed by the assistant.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages       []ChatMessage `json:"messages"`
	JobID          *int          `json:"job_id,omitempty"`
	CandidateEmail *string       `json:"candidate_email,omitempty"`
}

// ChatResponse carries the assistant reply plus keyword-triggered suggested
// actions. Each action is a flat string map with "type" and "suggestion" keys.
type ChatResponse struct {
	Response         string              `json:"response"`
	SuggestedActions []map[string]string `json:"suggested_actions"`
}
