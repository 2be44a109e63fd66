// Package config loads and validates engine configuration from a
// config directory (loupe.yaml + .env) with typed defaults for every
// subsystem.
package config

// Config is the umbrella configuration object returned by Initialize()
// and threaded through the application.
type Config struct {
	configDir string

	// System-wide defaults and feature knobs
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Checkpoint engine configuration
	Checkpoint *CheckpointConfig

	// Cron schedule configuration
	Schedule *ScheduleConfig

	// Data retention sweeps
	Retention *RetentionConfig

	// External collaborators
	Capture *CaptureConfig
	Mail    *MailConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
