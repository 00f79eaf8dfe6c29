package models

import (
	"fmt"
	"math"
	"time"

	"gorm.io/datatypes"
)

// CandidateApplication is one candidate's record inside an application
// document, keyed by the candidate's unique id.
type CandidateApplication struct {
	UniqueID       string  `json:"Unique_id"`
	Ranking        float64 `json:"ranking"`
	Conversation   string  `json:"conversation"`
	Resume         string  `json:"resume"`
	JobDescription string  `json:"job_description"`
}

type ApplicationCreate struct {
	JobID              string                          `json:"job_id" validate:"required"`
	JobQuestionnaireID string                          `json:"job_questionnaire_id" validate:"required"`
	ID                 string                          `json:"id,omitempty"`
	CandidateEmail     string                          `json:"candidate_email" validate:"required"`
	Applications       map[string]CandidateApplication `json:"applications,omitempty"`
}

func (a *ApplicationCreate) Validate() error {
	if a.JobID == "" {
		return fmt.Errorf("job_id is required")
	}
	if a.JobQuestionnaireID == "" {
		return fmt.Errorf("job_questionnaire_id is required")
	}
	if a.CandidateEmail == "" {
		return fmt.Errorf("candidate_email is required")
	}
	for key, candidate := range a.Applications {
		if key != candidate.UniqueID {
			return fmt.Errorf("applications key %q does not match Unique_id %q", key, candidate.UniqueID)
		}
		if math.IsNaN(candidate.Ranking) || math.IsInf(candidate.Ranking, 0) {
			return fmt.Errorf("ranking for candidate %q is not a finite number", key)
		}
	}
	return nil
}

// Application is the stored document in the applications collection.
// Multiple applications may exist per job id.
type Application struct {
	ID                 string                                          `gorm:"type:text;primaryKey" json:"id"`
	JobID              string                                          `gorm:"type:text;not null;index" json:"job_id"`
	JobQuestionnaireID string                                          `gorm:"type:text;not null" json:"job_questionnaire_id"`
	CandidateEmail     string                                          `gorm:"type:text;not null" json:"candidate_email"`
	Applications       datatypes.JSONType[map[string]CandidateApplication] `gorm:"type:jsonb" json:"applications"`
	ETag               string                                          `gorm:"type:text" json:"-"`
	IndexedAt          *time.Time                                      `json:"-"`
	CreatedAt          time.Time                                       `json:"-"`
	UpdatedAt          time.Time                                       `json:"-"`
}

func (Application) TableName() string {
	return "applications"
}

type ApplicationResponse struct {
	JobID              string                          `json:"job_id"`
	JobQuestionnaireID string                          `json:"job_questionnaire_id"`
	ID                 string                          `json:"id"`
	CandidateEmail     string                          `json:"candidate_email"`
	Applications       map[string]CandidateApplication `json:"applications"`
	ETag               string                          `json:"_etag,omitempty"`
	TS                 int64                           `json:"_ts,omitempty"`
}

func (a *Application) ToResponse() ApplicationResponse {
	applications := a.Applications.Data()
	if applications == nil {
		applications = map[string]CandidateApplication{}
	}

	return ApplicationResponse{
		JobID:              a.JobID,
		JobQuestionnaireID: a.JobQuestionnaireID,
		ID:                 a.ID,
		CandidateEmail:     a.CandidateEmail,
		Applications:       applications,
		ETag:               a.ETag,
		TS:                 a.UpdatedAt.Unix(),
	}
}
