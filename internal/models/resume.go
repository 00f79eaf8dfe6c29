package models

// ResumeUploadResponse returns the extracted resume text so the frontend can
// prefill an application before submitting it.
type ResumeUploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Text         string `json:"text"`
	PageCount    int    `json:"page_count"`
}

// CandidateMatch is one semantic search hit over the resume index.
type CandidateMatch struct {
	CandidateEmail string  `json:"candidate_email"`
	ApplicationID  string  `json:"application_id"`
	JobID          string  `json:"job_id"`
	Score          float32 `json:"score"`
	Snippet        string  `json:"snippet"`
}

type CandidateSearchResponse struct {
	Query   string           `json:"query"`
	Results []CandidateMatch `json:"results"`
}
