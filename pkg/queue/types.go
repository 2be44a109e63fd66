// Package queue provides the durable analysis queue: worker pool,
// claim/heartbeat/orphan machinery, and the step executors for scan
// and deploy events.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/analysis"
)

// Sentinel errors for queue operations.
var (
	// ErrNoAnalysesAvailable indicates no pending analyses are in the queue.
	ErrNoAnalysesAvailable = errors.New("no analyses available")

	// ErrAtCapacity indicates the concurrent analysis limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// AnalysisExecutor processes one claimed analysis.
//
// The executor owns the step pipeline and writes results progressively,
// including the terminal complete write. The worker handles claiming,
// heartbeat, and the failure terminal (retry-or-fail) decision.
type AnalysisExecutor interface {
	Execute(ctx context.Context, a *ent.Analysis) *ExecutionResult
}

// ExecutionResult is the terminal outcome of one workflow run.
type ExecutionResult struct {
	Status analysis.Status // complete or failed
	// Retryable marks failures worth re-running within the workflow
	// retry budget (transient I/O, never validation).
	Retryable bool
	Error     error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveAnalyses   int            `json:"active_analyses"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"` // "idle" or "working"
	CurrentAnalysisID string    `json:"current_analysis_id,omitempty"`
	AnalysesProcessed int       `json:"analyses_processed"`
	LastActivity      time.Time `json:"last_activity"`
}
