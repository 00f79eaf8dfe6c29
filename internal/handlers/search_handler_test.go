package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neunet/recruitment-api/internal/models"
)

type fakeGemini struct {
	embedding []float32
	embedErr  error
}

func (f *fakeGemini) GenerateChat(ctx context.Context, systemPrompt, message string) (string, error) {
	return "", nil
}

func (f *fakeGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if f.embedErr != nil {
		return nil, f.embedErr
	}
	return f.embedding, nil
}

type fakeResumeIndex struct {
	matches   []models.CandidateMatch
	searchErr error
	lastJobID string
	lastLimit int
}

func (f *fakeResumeIndex) InitCollection() error { return nil }

func (f *fakeResumeIndex) UpsertResumeChunk(ctx context.Context, applicationID, jobID, candidateEmail, text string, embedding []float32) error {
	return nil
}

func (f *fakeResumeIndex) SearchCandidates(ctx context.Context, queryEmbedding []float32, jobID string, limit int) ([]models.CandidateMatch, error) {
	f.lastJobID = jobID
	f.lastLimit = limit
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.matches, nil
}

func (f *fakeResumeIndex) DeleteApplication(ctx context.Context, applicationID string) error {
	return nil
}

func newSearchApp(gemini *fakeGemini, index *fakeResumeIndex) *fiber.App {
	app := fiber.New()
	h := NewSearchHandler(gemini, index)
	app.Get("/api/v1/candidates/search", h.HandleSearch)
	return app
}

func TestCandidateSearch_MissingQuery(t *testing.T) {
	app := newSearchApp(&fakeGemini{}, &fakeResumeIndex{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/candidates/search", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCandidateSearch_ReturnsMatches(t *testing.T) {
	index := &fakeResumeIndex{
		matches: []models.CandidateMatch{
			{CandidateEmail: "a@b.com", ApplicationID: "A1", JobID: "J1", Score: 0.88, Snippet: "Go engineer"},
		},
	}
	app := newSearchApp(&fakeGemini{embedding: []float32{0.1, 0.2}}, index)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/candidates/search?q=golang&job_id=J1&limit=3", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.CandidateSearchResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "golang", body.Query)
	require.Len(t, body.Results, 1)
	assert.Equal(t, "a@b.com", body.Results[0].CandidateEmail)
	assert.Equal(t, "J1", index.lastJobID)
	assert.Equal(t, 3, index.lastLimit)
}

func TestCandidateSearch_EmbeddingFailure(t *testing.T) {
	app := newSearchApp(&fakeGemini{embedErr: errors.New("quota exceeded")}, &fakeResumeIndex{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/candidates/search?q=golang", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestCandidateSearch_IndexFailure(t *testing.T) {
	index := &fakeResumeIndex{searchErr: errors.New("collection missing")}
	app := newSearchApp(&fakeGemini{embedding: []float32{0.1}}, index)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/candidates/search?q=golang", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}
