package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"mockmate/resume-checker/internal/models"
	"mockmate/resume-checker/internal/repositories"
)

// HistorySink accepts completed analyses for background persistence.
type HistorySink interface {
	Enqueue(record models.AnalysisRecord) bool
}

type HistoryWorker interface {
	HistorySink
	Start(ctx context.Context)
	Stop()
}

type historyWorker struct {
	repo        repositories.AnalysisRepository
	jobQueue    chan models.AnalysisRecord
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
	stopOnce    sync.Once
	// mu orders Enqueue against Stop so nothing is queued after the final drain.
	mu      sync.RWMutex
	stopped bool
	logger  zerolog.Logger
}

func NewHistoryWorker(
	repo repositories.AnalysisRepository,
	concurrency int,
	queueSize int,
	logger zerolog.Logger,
) HistoryWorker {
	if concurrency <= 0 {
		concurrency = 1
	}
	if queueSize <= 0 {
		queueSize = 100
	}
	return &historyWorker{
		repo:        repo,
		jobQueue:    make(chan models.AnalysisRecord, queueSize),
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
		logger:      logger.With().Str("component", "history_worker").Logger(),
	}
}

// Start implements HistoryWorker.
func (w *historyWorker) Start(ctx context.Context) {
	w.logger.Info().Int("workers", w.concurrency).Msg("🚀 Starting history workers")

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}
}

// Stop signals the workers, lets them flush what is already queued and waits.
func (w *historyWorker) Stop() {
	w.halt()
	w.wg.Wait()
	w.logger.Info().Msg("✅ History workers stopped")
}

// halt closes the intake. Records accepted before it are still drained.
func (w *historyWorker) halt() {
	w.stopOnce.Do(func() {
		w.logger.Info().Msg("🛑 Stopping history workers...")
		w.mu.Lock()
		w.stopped = true
		close(w.stopChan)
		w.mu.Unlock()
	})
}

// Enqueue never blocks the request path: when the queue is full or the
// worker is stopped the record is dropped and false is returned.
func (w *historyWorker) Enqueue(record models.AnalysisRecord) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.stopped {
		w.logger.Warn().Str("request_id", record.RequestID.String()).Msg("⚠️ History worker stopped, record dropped")
		return false
	}

	select {
	case w.jobQueue <- record:
		return true
	default:
		w.logger.Warn().Str("request_id", record.RequestID.String()).Msg("⚠️ History queue full, record dropped")
		return false
	}
}

func (w *historyWorker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			w.drain(workerID)
			return
		case <-ctx.Done():
			w.halt()
			w.drain(workerID)
			return
		case record := <-w.jobQueue:
			w.persist(workerID, record)
		}
	}
}

func (w *historyWorker) drain(workerID int) {
	for {
		select {
		case record := <-w.jobQueue:
			w.persist(workerID, record)
		default:
			return
		}
	}
}

func (w *historyWorker) persist(workerID int, record models.AnalysisRecord) {
	if err := w.repo.Create(&record); err != nil {
		w.logger.Error().Err(err).
			Int("worker", workerID).
			Str("request_id", record.RequestID.String()).
			Msg("❌ Failed to persist analysis record")
		return
	}
	w.logger.Debug().
		Int("worker", workerID).
		Str("request_id", record.RequestID.String()).
		Msg("💾 Analysis record saved")
}
