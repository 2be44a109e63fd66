package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/pkg/config"
	"github.com/loupe-hq/loupe/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes
// analyses.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor AnalysisExecutor
	analyses *services.AnalysisService
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentAnalysisID string
	analysesProcessed int
	lastActivity      time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor AnalysisExecutor, analyses *services.AnalysisService) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		analyses:     analyses,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            string(w.status),
		CurrentAnalysisID: w.currentAnalysisID,
		AnalysesProcessed: w.analysesProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoAnalysesAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing analysis", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims an analysis, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Capacity check is best-effort; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter.
	activeCount, err := w.client.Analysis.Query().
		Where(analysis.StatusEQ(analysis.StatusProcessing)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active analyses: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentAnalyses {
		return ErrAtCapacity
	}

	a, err := w.claimNextAnalysis(ctx)
	if err != nil {
		return err
	}

	log := slog.With("analysis_id", a.ID, "worker_id", w.id)
	log.Info("Analysis claimed", "trigger_type", a.TriggerType, "attempt", a.Attempts)

	w.setStatus(WorkerStatusWorking, a.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	analysisCtx, cancelAnalysis := context.WithTimeout(ctx, w.config.AnalysisTimeout)
	defer cancelAnalysis()

	heartbeatCtx, cancelHeartbeat := context.WithCancel(analysisCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, a.ID)

	result := w.executor.Execute(analysisCtx, a)

	// Nil-guard: synthesize a safe result if the executor returned nil.
	if result == nil {
		switch {
		case errors.Is(analysisCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status:    analysis.StatusFailed,
				Retryable: true,
				Error:     fmt.Errorf("analysis timed out after %v", w.config.AnalysisTimeout),
			}
		case errors.Is(analysisCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status: analysis.StatusFailed,
				Error:  context.Canceled,
			}
		default:
			result = &ExecutionResult{
				Status: analysis.StatusFailed,
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}
	}

	cancelHeartbeat()

	// The executor writes the terminal complete state itself; the
	// worker owns the failure path so the retry budget lives in one
	// place. Background context; the analysis ctx may be cancelled.
	if result.Status == analysis.StatusFailed {
		w.handleFailure(context.Background(), a, result, log)
	}

	w.mu.Lock()
	w.analysesProcessed++
	w.mu.Unlock()

	log.Info("Analysis processing complete", "status", result.Status)
	return nil
}

// handleFailure requeues a retryable failure with remaining attempt
// budget, or writes the terminal failed state.
func (w *Worker) handleFailure(ctx context.Context, a *ent.Analysis, result *ExecutionResult, log *slog.Logger) {
	errMsg := "analysis failed"
	if result.Error != nil {
		errMsg = result.Error.Error()
	}

	// Attempts was bumped by the claim, so it counts this run.
	if result.Retryable && a.Attempts <= w.config.MaxWorkflowRetries {
		if err := w.analyses.RequeueForRetry(ctx, a.ID); err != nil {
			log.Error("Failed to requeue analysis, marking failed", "error", err)
		} else {
			log.Warn("Analysis requeued for retry",
				"attempt", a.Attempts,
				"max_retries", w.config.MaxWorkflowRetries,
				"error", errMsg)
			return
		}
	}

	if err := w.analyses.FailAnalysis(ctx, a.ID, errMsg); err != nil {
		log.Error("Failed to mark analysis failed", "error", err)
	}
}

// claimNextAnalysis atomically claims the next pending analysis using
// FOR UPDATE SKIP LOCKED, FIFO on created_at.
func (w *Worker) claimNextAnalysis(ctx context.Context) (*ent.Analysis, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	a, err := tx.Analysis.Query().
		Where(analysis.StatusEQ(analysis.StatusPending)).
		Order(ent.Asc(analysis.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoAnalysesAvailable
		}
		return nil, fmt.Errorf("failed to query pending analysis: %w", err)
	}

	now := time.Now()
	a, err = a.Update().
		SetStatus(analysis.StatusProcessing).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim analysis: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return a, nil
}

// runHeartbeat periodically updates last_interaction_at for orphan
// detection.
func (w *Worker) runHeartbeat(ctx context.Context, analysisID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Analysis.UpdateOneID(analysisID).
				SetLastInteractionAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "analysis_id", analysisID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, analysisID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentAnalysisID = analysisID
	w.lastActivity = time.Now()
}
