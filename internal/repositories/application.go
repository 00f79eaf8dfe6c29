package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"neunet/recruitment-api/internal/models"
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByJobID(jobID string) ([]models.Application, error)
	FindUnindexed(limit int) ([]models.Application, error)
	MarkIndexed(id string) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(application *models.Application) error {
	if application.ID == "" {
		application.ID = uuid.New().String()
	}
	application.ETag = uuid.New().String()

	if err := r.db.Create(application).Error; err != nil {
		if translated := translateError(err); errors.Is(translated, ErrDuplicate) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

func (r *applicationRepository) FindByID(id string) (*models.Application, error) {
	var application models.Application
	if err := r.db.Where("id = ?", id).First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}

	return &application, nil
}

// FindByJobID returns every application for a job. An unknown job id is an
// empty result, not an error.
func (r *applicationRepository) FindByJobID(jobID string) ([]models.Application, error) {
	var applications []models.Application
	if err := r.db.Where("job_id = ?", jobID).Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("failed to find applications: %w", err)
	}

	return applications, nil
}

// FindUnindexed returns applications whose resumes have not been pushed to
// the vector index yet, oldest first.
func (r *applicationRepository) FindUnindexed(limit int) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Where("indexed_at IS NULL").
		Order("created_at ASC").
		Limit(limit).
		Find(&applications).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find unindexed applications: %w", err)
	}

	return applications, nil
}

func (r *applicationRepository) MarkIndexed(id string) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"indexed_at": time.Now(),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark application indexed: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
