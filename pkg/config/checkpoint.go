package config

import "time"

// CheckpointConfig contains checkpoint engine configuration.
type CheckpointConfig struct {
	// PageSize bounds the eligibility scan page over detected_changes.
	PageSize int `yaml:"page_size"`

	// AssessorMaxAttempts is how many times the LLM assessor is tried
	// for one horizon before the deterministic fallback kicks in.
	AssessorMaxAttempts int `yaml:"assessor_max_attempts"`

	// AssessorTimeout bounds one assessor attempt.
	AssessorTimeout time.Duration `yaml:"assessor_timeout"`

	// ProviderTimeout bounds one analytics metric query.
	ProviderTimeout time.Duration `yaml:"provider_timeout"`

	// NarrativeEnabled toggles the optional page-level strategy
	// narrative regeneration after a batch.
	NarrativeEnabled *bool `yaml:"narrative_enabled,omitempty"`
}

// DefaultCheckpointConfig returns the built-in checkpoint defaults.
func DefaultCheckpointConfig() *CheckpointConfig {
	return &CheckpointConfig{
		PageSize:            500,
		AssessorMaxAttempts: 3,
		AssessorTimeout:     60 * time.Second,
		ProviderTimeout:     30 * time.Second,
	}
}

// Narrative reports whether strategy narrative regeneration is enabled
// (default true).
func (c *CheckpointConfig) Narrative() bool {
	return c.NarrativeEnabled == nil || *c.NarrativeEnabled
}
