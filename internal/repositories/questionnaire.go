package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"neunet/recruitment-api/internal/models"
)

type QuestionnaireRepository interface {
	Create(questionnaire *models.Questionnaire) error
	FindByJobID(jobID string) (*models.Questionnaire, error)
}

type questionnaireRepository struct {
	db *gorm.DB
}

func NewQuestionnaireRepository(db *gorm.DB) QuestionnaireRepository {
	return &questionnaireRepository{db: db}
}

// Create implements QuestionnaireRepository. The store assigns an id when
// the caller did not supply one, and stamps a fresh etag on every write.
func (r *questionnaireRepository) Create(questionnaire *models.Questionnaire) error {
	if questionnaire.ID == "" {
		questionnaire.ID = uuid.New().String()
	}
	questionnaire.ETag = uuid.New().String()

	if err := r.db.Create(questionnaire).Error; err != nil {
		if translated := translateError(err); errors.Is(translated, ErrDuplicate) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create questionnaire: %w", err)
	}

	return nil
}

// FindByJobID implements QuestionnaireRepository. Returns the first matching
// document; ErrNotFound when no questionnaire exists for the job.
func (r *questionnaireRepository) FindByJobID(jobID string) (*models.Questionnaire, error) {
	var questionnaire models.Questionnaire
	if err := r.db.Where("job_id = ?", jobID).First(&questionnaire).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find questionnaire: %w", err)
	}

	return &questionnaire, nil
}
