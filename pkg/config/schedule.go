package config

import "time"

// ScheduleConfig contains the daily cron schedule, expressed as UTC
// wall-clock times. The scheduler computes the next occurrence of each
// and sleeps until it.
//
//	0 9 * * *    daily scans
//	0 9 * * 1    weekly scans (Monday)
//	30 10 * * *  checkpoint engine
//	0 11 * * *   daily digest
//	*/30 * * * * screenshot-service health probe
type ScheduleConfig struct {
	DailyScanHour     int `yaml:"daily_scan_hour"`
	DailyScanMinute   int `yaml:"daily_scan_minute"`
	WeeklyScanWeekday int `yaml:"weekly_scan_weekday"` // time.Weekday numbering; 1 = Monday
	CheckpointHour    int `yaml:"checkpoint_hour"`
	CheckpointMinute  int `yaml:"checkpoint_minute"`
	DigestHour        int `yaml:"digest_hour"`
	DigestMinute      int `yaml:"digest_minute"`

	// DigestLookback is how far back the digest aggregates completed
	// scheduled analyses.
	DigestLookback time.Duration `yaml:"digest_lookback"`

	// HealthProbeInterval is the screenshot-service probe cadence.
	HealthProbeInterval time.Duration `yaml:"health_probe_interval"`
}

// DefaultScheduleConfig returns the built-in schedule defaults.
func DefaultScheduleConfig() *ScheduleConfig {
	return &ScheduleConfig{
		DailyScanHour:       9,
		DailyScanMinute:     0,
		WeeklyScanWeekday:   int(time.Monday),
		CheckpointHour:      10,
		CheckpointMinute:    30,
		DigestHour:          11,
		DigestMinute:        0,
		DigestLookback:      3 * time.Hour,
		HealthProbeInterval: 30 * time.Minute,
	}
}
