package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how pending analyses are polled, claimed, and
// processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes analyses.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentAnalyses is the limit of concurrent analyses being
	// processed per instance. Enforced by database COUNT(*) check.
	MaxConcurrentAnalyses int `yaml:"max_concurrent_analyses"`

	// MaxWorkflowRetries is how many times a failed analysis workflow
	// is automatically re-run before it is marked failed for good.
	MaxWorkflowRetries int `yaml:"max_workflow_retries"`

	// PollInterval is the base interval for checking pending analyses.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// AnalysisTimeout is the maximum time one analysis can be processed.
	AnalysisTimeout time.Duration `yaml:"analysis_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active
	// analyses to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is how often processing analyses refresh
	// last_interaction_at.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is how often to scan for orphaned analyses.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long an analysis can go without a
	// heartbeat before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
// The in-flight analysis cap of 4 matches the per-instance concurrency
// ceiling the capture and LLM collaborators are provisioned for.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             4,
		MaxConcurrentAnalyses:   4,
		MaxWorkflowRetries:      2,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		AnalysisTimeout:         10 * time.Minute,
		GracefulShutdownTimeout: 10 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}
