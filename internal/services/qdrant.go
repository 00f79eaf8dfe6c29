package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"neunet/recruitment-api/internal/models"
)

// ResumeIndex is the vector index over submitted resume text, one point per
// resume chunk with the owning application in the payload.
type ResumeIndex interface {
	InitCollection() error
	UpsertResumeChunk(ctx context.Context, applicationID, jobID, candidateEmail, text string, embedding []float32) error
	SearchCandidates(ctx context.Context, queryEmbedding []float32, jobID string, limit int) ([]models.CandidateMatch, error)
	DeleteApplication(ctx context.Context, applicationID string) error
}

type resumeIndex struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewResumeIndex(urlStr, apiKey, collectionName string) (ResumeIndex, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &resumeIndex{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements ResumeIndex.
func (r *resumeIndex) InitCollection() error {
	ctx := context.Background()

	exists, err := r.client.CollectionExists(ctx, r.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Resume collection already exists")
		return nil
	}

	err = r.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: r.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     r.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", r.collectionName)
	return nil
}

// UpsertResumeChunk implements ResumeIndex.
func (r *resumeIndex) UpsertResumeChunk(ctx context.Context, applicationID, jobID, candidateEmail, text string, embedding []float32) error {
	pointID := uuid.New()

	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(uint64(pointID.ID())),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"application_id":  applicationID,
			"job_id":          jobID,
			"candidate_email": candidateEmail,
			"text":            text,
		}),
	}

	_, err := r.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: r.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// SearchCandidates implements ResumeIndex. An empty jobID searches across
// all jobs.
func (r *resumeIndex) SearchCandidates(ctx context.Context, queryEmbedding []float32, jobID string, limit int) ([]models.CandidateMatch, error) {
	var filter *qdrant.Filter
	if jobID != "" {
		filter = &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("job_id", jobID),
			},
		}
	}

	searchResult, err := r.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: r.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := []models.CandidateMatch{}
	for _, point := range searchResult {
		payload := point.Payload

		match := models.CandidateMatch{
			Score: point.Score,
		}

		if v, ok := payload["application_id"]; ok {
			if val, ok := v.GetKind().(*qdrant.Value_StringValue); ok {
				match.ApplicationID = val.StringValue
			}
		}

		if v, ok := payload["job_id"]; ok {
			if val, ok := v.GetKind().(*qdrant.Value_StringValue); ok {
				match.JobID = val.StringValue
			}
		}

		if v, ok := payload["candidate_email"]; ok {
			if val, ok := v.GetKind().(*qdrant.Value_StringValue); ok {
				match.CandidateEmail = val.StringValue
			}
		}

		if v, ok := payload["text"]; ok {
			if val, ok := v.GetKind().(*qdrant.Value_StringValue); ok {
				match.Snippet = val.StringValue
			}
		}

		results = append(results, match)
	}

	return results, nil
}

// DeleteApplication implements ResumeIndex.
func (r *resumeIndex) DeleteApplication(ctx context.Context, applicationID string) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("application_id", applicationID),
		},
	}

	_, err := r.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: r.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})

	if err != nil {
		return fmt.Errorf("failed to delete application points: %w", err)
	}

	return nil
}
