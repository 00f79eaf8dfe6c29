package services

import (
	"context"
	"log"
	"sync"
	"time"

	"neunet/recruitment-api/internal/repositories"
)

// Worker runs resume indexing in the background so application submission
// never waits on the embedding API.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueApplication(applicationID string)
}

type worker struct {
	appRepo      repositories.ApplicationRepository
	indexer      IndexerService
	jobQueue     chan string
	concurrency  int
	pollInterval time.Duration
	wg           sync.WaitGroup
	stopChan     chan struct{}
}

func NewWorker(
	appRepo repositories.ApplicationRepository,
	indexer IndexerService,
	concurrency int,
	pollInterval time.Duration,
) Worker {
	return &worker{
		appRepo:      appRepo,
		indexer:      indexer,
		jobQueue:     make(chan string, 100),
		concurrency:  concurrency,
		pollInterval: pollInterval,
		stopChan:     make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting indexing worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollUnindexed(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping indexing worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Indexing worker stopped")
}

// EnqueueApplication implements Worker.
func (w *worker) EnqueueApplication(applicationID string) {
	select {
	case w.jobQueue <- applicationID:
		log.Printf("📥 Application %s enqueued for indexing\n", applicationID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue application %s\n", applicationID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case applicationID := <-w.jobQueue:
			if err := w.indexer.IndexApplication(ctx, applicationID); err != nil {
				log.Printf("❌ Worker #%d failed to index application %s: %v\n", workerID, applicationID, err)
			} else {
				log.Printf("✅ Worker #%d indexed application %s\n", workerID, applicationID)
			}
		}
	}
}

// pollUnindexed re-enqueues applications the queue missed, e.g. submissions
// accepted right before a restart.
func (w *worker) pollUnindexed(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			pending, err := w.appRepo.FindUnindexed(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch unindexed applications: %v\n", err)
				continue
			}

			for _, application := range pending {
				w.EnqueueApplication(application.ID)
			}
		}
	}
}
