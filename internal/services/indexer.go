package services

import (
	"context"
	"fmt"
	"log"

	"neunet/recruitment-api/internal/repositories"
)

const resumeChunkSize = 1000

// IndexerService pushes the resume text of every candidate in an application
// into the vector index so the candidate search endpoint can find them.
type IndexerService interface {
	IndexApplication(ctx context.Context, applicationID string) error
}

type indexerService struct {
	appRepo repositories.ApplicationRepository
	gemini  GeminiService
	index   ResumeIndex
	chunker TextChunker
}

func NewIndexerService(
	appRepo repositories.ApplicationRepository,
	gemini GeminiService,
	index ResumeIndex,
) IndexerService {
	return &indexerService{
		appRepo: appRepo,
		gemini:  gemini,
		index:   index,
		chunker: NewTextChunker(),
	}
}

// IndexApplication implements IndexerService.
func (s *indexerService) IndexApplication(ctx context.Context, applicationID string) error {
	application, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		return fmt.Errorf("failed to load application: %w", err)
	}

	for uniqueID, candidate := range application.Applications.Data() {
		if candidate.Resume == "" {
			continue
		}

		chunks := s.chunker.ChunkText(CleanText(candidate.Resume), resumeChunkSize)
		for _, chunk := range chunks {
			embedding, err := s.gemini.GenerateEmbedding(ctx, chunk)
			if err != nil {
				return fmt.Errorf("failed to embed resume for candidate %s: %w", uniqueID, err)
			}

			if err := s.index.UpsertResumeChunk(
				ctx,
				application.ID,
				application.JobID,
				candidate.UniqueID,
				chunk,
				embedding,
			); err != nil {
				return fmt.Errorf("failed to index resume for candidate %s: %w", uniqueID, err)
			}
		}

		log.Printf("📇 Indexed %d resume chunks for candidate %s\n", len(chunks), uniqueID)
	}

	if err := s.appRepo.MarkIndexed(application.ID); err != nil {
		return fmt.Errorf("failed to mark application indexed: %w", err)
	}

	return nil
}
