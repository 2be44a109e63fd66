package config

import "time"

// Defaults contains system-wide default configurations and feature
// gating knobs.
type Defaults struct {
	// BaselineMaxAgeDays bounds baseline freshness for the deploy
	// quick-diff path. A baseline older than this (or absent) is stale
	// and forces a full analysis.
	BaselineMaxAgeDays int `yaml:"baseline_max_age_days"`

	// MinMatchConfidence is the acceptance threshold for LLM-proposed
	// matched_change_id claims. Proposals below it degrade to fresh
	// inserts. The threshold is a product decision, not core logic.
	MinMatchConfidence float64 `yaml:"min_match_confidence"`

	// DeploySettleDelay is how long the deploy path waits after a
	// webhook before capturing, so the build can land.
	DeploySettleDelay time.Duration `yaml:"deploy_settle_delay"`

	// DashboardURL is the base URL used in notification emails.
	DashboardURL string `yaml:"dashboard_url"`
}

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() *Defaults {
	return &Defaults{
		BaselineMaxAgeDays: 14,
		MinMatchConfidence: 0.7,
		DeploySettleDelay:  45 * time.Second,
		DashboardURL:       "http://localhost:3000",
	}
}

// CaptureConfig holds screenshot service and object store settings.
type CaptureConfig struct {
	// ServiceURL is the screenshot collaborator's base URL.
	ServiceURL string `yaml:"service_url"`

	// Timeout bounds one capture request (the collaborator has its own
	// internal budget; this is the client-side ceiling).
	Timeout time.Duration `yaml:"timeout"`

	// StorageURL is the object store endpoint screenshots upload to.
	StorageURL string `yaml:"storage_url"`

	// StorageBucket is the bucket/prefix for screenshot objects.
	StorageBucket string `yaml:"storage_bucket"`

	// StorageTokenEnv names the env var holding the storage API token.
	StorageTokenEnv string `yaml:"storage_token_env"`
}

// DefaultCaptureConfig returns the built-in capture defaults.
func DefaultCaptureConfig() *CaptureConfig {
	return &CaptureConfig{
		ServiceURL:      "http://localhost:7700",
		Timeout:         90 * time.Second,
		StorageURL:      "http://localhost:9000",
		StorageBucket:   "screenshots",
		StorageTokenEnv: "STORAGE_API_TOKEN",
	}
}

// MailConfig holds email delivery settings.
type MailConfig struct {
	Enabled     *bool  `yaml:"enabled,omitempty"`
	APIKeyEnv   string `yaml:"api_key_env,omitempty"`
	FromAddress string `yaml:"from_address,omitempty"`
	BaseURL     string `yaml:"base_url,omitempty"`
}

// DefaultMailConfig returns the built-in mail defaults (disabled until
// an API key env is configured).
func DefaultMailConfig() *MailConfig {
	return &MailConfig{
		APIKeyEnv:   "EMAIL_API_KEY",
		FromAddress: "Loupe <notify@loupe.dev>",
		BaseURL:     "https://api.resend.com",
	}
}
