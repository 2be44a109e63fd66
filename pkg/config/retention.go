package config

import "time"

// RetentionConfig controls the background data retention sweeps.
type RetentionConfig struct {
	// EventTTL is how long persisted dashboard events are kept. The
	// event log only needs to cover client reconnect windows.
	EventTTL time.Duration `yaml:"event_ttl"`

	// FailedAnalysisRetentionDays is how long terminally failed
	// analyses are kept for debugging before removal.
	FailedAnalysisRetentionDays int `yaml:"failed_analysis_retention_days"`

	// Interval is the sweep cadence.
	Interval time.Duration `yaml:"interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventTTL:                    72 * time.Hour,
		FailedAnalysisRetentionDays: 30,
		Interval:                    6 * time.Hour,
	}
}
