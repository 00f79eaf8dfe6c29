package handlers

import (
	"context"

	"neunet/recruitment-api/internal/models"
	"neunet/recruitment-api/internal/repositories"
)

type fakeQuestionnaireRepo struct {
	byJob     map[string]*models.Questionnaire
	createErr error
	findErr   error
}

func newFakeQuestionnaireRepo() *fakeQuestionnaireRepo {
	return &fakeQuestionnaireRepo{byJob: map[string]*models.Questionnaire{}}
}

func (f *fakeQuestionnaireRepo) Create(questionnaire *models.Questionnaire) error {
	if f.createErr != nil {
		return f.createErr
	}
	if questionnaire.ID == "" {
		questionnaire.ID = "generated-id"
	}
	questionnaire.ETag = "etag-test"
	f.byJob[questionnaire.JobID] = questionnaire
	return nil
}

func (f *fakeQuestionnaireRepo) FindByJobID(jobID string) (*models.Questionnaire, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	questionnaire, ok := f.byJob[jobID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return questionnaire, nil
}

type fakeApplicationRepo struct {
	byID      map[string]*models.Application
	createErr error
	findErr   error
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{byID: map[string]*models.Application{}}
}

func (f *fakeApplicationRepo) Create(application *models.Application) error {
	if f.createErr != nil {
		return f.createErr
	}
	if application.ID == "" {
		application.ID = "generated-id"
	}
	application.ETag = "etag-test"
	f.byID[application.ID] = application
	return nil
}

func (f *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	application, ok := f.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return application, nil
}

func (f *fakeApplicationRepo) FindByJobID(jobID string) ([]models.Application, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var result []models.Application
	for _, application := range f.byID {
		if application.JobID == jobID {
			result = append(result, *application)
		}
	}
	return result, nil
}

func (f *fakeApplicationRepo) FindUnindexed(limit int) ([]models.Application, error) {
	return nil, nil
}

func (f *fakeApplicationRepo) MarkIndexed(id string) error {
	return nil
}

type fakeWorker struct {
	enqueued []string
}

func (f *fakeWorker) Start(ctx context.Context)             {}
func (f *fakeWorker) Stop()                                 {}
func (f *fakeWorker) EnqueueApplication(applicationID string) {
	f.enqueued = append(f.enqueued, applicationID)
}

type fakeAssistant struct {
	response    *models.ChatResponse
	err         error
	lastMessage string
	lastJobID   *int
	lastEmail   string
}

func (f *fakeAssistant) ProcessMessage(ctx context.Context, message string, jobID *int, candidateEmail string) (*models.ChatResponse, error) {
	f.lastMessage = message
	f.lastJobID = jobID
	f.lastEmail = candidateEmail
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}
