package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Question is a single weighted entry inside a questionnaire category.
type Question struct {
	Question string `json:"question" validate:"required"`
	Weight   int    `json:"weight"`
	Scoring  string `json:"scoring"`
}

// QuestionnaireCreate is the submission payload. Category names are the map
// keys, so they are unique within one questionnaire by construction.
type QuestionnaireCreate struct {
	Questionnaire map[string][]Question `json:"questionnaire" validate:"required"`
	JobID         string                `json:"job_id" validate:"required"`
	ID            string                `json:"id,omitempty"`
}

func (q *QuestionnaireCreate) Validate() error {
	if q.JobID == "" {
		return fmt.Errorf("job_id is required")
	}
	if len(q.Questionnaire) == 0 {
		return fmt.Errorf("questionnaire must contain at least one category")
	}
	for category, questions := range q.Questionnaire {
		if len(questions) == 0 {
			return fmt.Errorf("category %q has no questions", category)
		}
		for i, question := range questions {
			if question.Question == "" {
				return fmt.Errorf("category %q question %d has no text", category, i)
			}
		}
	}
	return nil
}

// Questionnaire is the stored document in the job_questionnaires collection.
// At most one questionnaire exists per job id by convention, not by index.
type Questionnaire struct {
	ID            string                                    `gorm:"type:text;primaryKey" json:"id"`
	JobID         string                                    `gorm:"type:text;not null;index" json:"job_id"`
	Questionnaire datatypes.JSONType[map[string][]Question] `gorm:"type:jsonb" json:"questionnaire"`
	ETag          string                                    `gorm:"type:text" json:"-"`
	CreatedAt     time.Time                                 `json:"-"`
	UpdatedAt     time.Time                                 `json:"-"`
}

func (Questionnaire) TableName() string {
	return "job_questionnaires"
}

// QuestionnaireResponse is the read representation. Store metadata is
// populated only by the persistence gateway, never required on input.
type QuestionnaireResponse struct {
	Questionnaire map[string][]Question `json:"questionnaire"`
	JobID         string                `json:"job_id"`
	ID            string                `json:"id,omitempty"`
	ETag          string                `json:"_etag,omitempty"`
	TS            int64                 `json:"_ts,omitempty"`
}

func (q *Questionnaire) ToResponse() QuestionnaireResponse {
	return QuestionnaireResponse{
		Questionnaire: q.Questionnaire.Data(),
		JobID:         q.JobID,
		ID:            q.ID,
		ETag:          q.ETag,
		TS:            q.UpdatedAt.Unix(),
	}
}
