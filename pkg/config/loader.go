package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoupeYAMLConfig represents the complete loupe.yaml file structure.
// Every section is optional; unset sections fall back to built-in
// defaults, and unset fields within a section keep the default value.
type LoupeYAMLConfig struct {
	Defaults   *Defaults         `yaml:"defaults"`
	Queue      *QueueConfig      `yaml:"queue"`
	Checkpoint *CheckpointConfig `yaml:"checkpoint"`
	Schedule   *ScheduleConfig   `yaml:"schedule"`
	Retention  *RetentionConfig  `yaml:"retention"`
	Capture    *CaptureConfig    `yaml:"capture"`
	Mail       *MailConfig       `yaml:"mail"`
}

// Initialize loads configuration from configDir/loupe.yaml, applies
// defaults, and validates the result. A missing file is not an error;
// the engine runs on defaults.
func Initialize(_ context.Context, configDir string) (*Config, error) {
	cfg := &Config{
		configDir:  configDir,
		Defaults:   DefaultDefaults(),
		Queue:      DefaultQueueConfig(),
		Checkpoint: DefaultCheckpointConfig(),
		Schedule:   DefaultScheduleConfig(),
		Retention:  DefaultRetentionConfig(),
		Capture:    DefaultCaptureConfig(),
		Mail:       DefaultMailConfig(),
	}

	path := filepath.Join(configDir, "loupe.yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No loupe.yaml found, using built-in defaults", "path", path)
			if err := cfg.validate(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var yamlCfg LoupeYAMLConfig
	if err := yaml.Unmarshal(raw, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	applySection(cfg.Defaults, yamlCfg.Defaults)
	applySection(cfg.Queue, yamlCfg.Queue)
	applySection(cfg.Checkpoint, yamlCfg.Checkpoint)
	applySection(cfg.Schedule, yamlCfg.Schedule)
	applySection(cfg.Retention, yamlCfg.Retention)
	applySection(cfg.Capture, yamlCfg.Capture)
	applySection(cfg.Mail, yamlCfg.Mail)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slog.Info("Configuration loaded", "path", path)
	return cfg, nil
}

// applySection overwrites dst with src when the section was present in
// the YAML file. Whole-section override keeps merge semantics obvious:
// a present section must spell out the fields it cares about.
func applySection[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func (c *Config) validate() error {
	if c.Queue.WorkerCount < 1 {
		return fmt.Errorf("queue.worker_count must be >= 1, got %d", c.Queue.WorkerCount)
	}
	if c.Queue.MaxConcurrentAnalyses < 1 {
		return fmt.Errorf("queue.max_concurrent_analyses must be >= 1, got %d", c.Queue.MaxConcurrentAnalyses)
	}
	if c.Queue.MaxWorkflowRetries < 0 {
		return fmt.Errorf("queue.max_workflow_retries must be >= 0, got %d", c.Queue.MaxWorkflowRetries)
	}
	if c.Checkpoint.PageSize < 1 {
		return fmt.Errorf("checkpoint.page_size must be >= 1, got %d", c.Checkpoint.PageSize)
	}
	if c.Checkpoint.AssessorMaxAttempts < 1 {
		return fmt.Errorf("checkpoint.assessor_max_attempts must be >= 1, got %d", c.Checkpoint.AssessorMaxAttempts)
	}
	if c.Defaults.BaselineMaxAgeDays < 1 {
		return fmt.Errorf("defaults.baseline_max_age_days must be >= 1, got %d", c.Defaults.BaselineMaxAgeDays)
	}
	if c.Defaults.MinMatchConfidence < 0 || c.Defaults.MinMatchConfidence > 1 {
		return fmt.Errorf("defaults.min_match_confidence must be in [0,1], got %v", c.Defaults.MinMatchConfidence)
	}
	if err := validateClock("schedule.daily_scan", c.Schedule.DailyScanHour, c.Schedule.DailyScanMinute); err != nil {
		return err
	}
	if err := validateClock("schedule.checkpoint", c.Schedule.CheckpointHour, c.Schedule.CheckpointMinute); err != nil {
		return err
	}
	if err := validateClock("schedule.digest", c.Schedule.DigestHour, c.Schedule.DigestMinute); err != nil {
		return err
	}
	if c.Schedule.WeeklyScanWeekday < 0 || c.Schedule.WeeklyScanWeekday > 6 {
		return fmt.Errorf("schedule.weekly_scan_weekday must be in [0,6], got %d", c.Schedule.WeeklyScanWeekday)
	}
	if c.Retention.EventTTL <= 0 {
		return fmt.Errorf("retention.event_ttl must be positive, got %v", c.Retention.EventTTL)
	}
	if c.Retention.FailedAnalysisRetentionDays < 1 {
		return fmt.Errorf("retention.failed_analysis_retention_days must be >= 1, got %d", c.Retention.FailedAnalysisRetentionDays)
	}
	return nil
}

func validateClock(name string, hour, minute int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("%s_hour must be in [0,23], got %d", name, hour)
	}
	if minute < 0 || minute > 59 {
		return fmt.Errorf("%s_minute must be in [0,59], got %d", name, minute)
	}
	return nil
}
