package llm

import (
	"context"
	"log/slog"
	"math/rand"
	"time"
)

// RetryConfig controls gateway call retries. Every attempt failure is
// logged; the last error is returned once attempts are exhausted.
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// DefaultRetryConfig returns the retry settings used for analysis
// tasks. Assessor calls use a caller-supplied config with their own
// attempt budget.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 2 * time.Second,
		MaxDelay:     30 * time.Second,
	}
}

// completeWithRetry runs the request with exponential backoff and
// jitter. Context cancellation aborts between attempts.
func completeWithRetry(ctx context.Context, client Client, cfg RetryConfig, logger *slog.Logger, req *Request) (*Response, error) {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		resp, err := client.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		logger.Warn("Gateway call failed",
			"task", req.Task,
			"reference_id", req.ReferenceID,
			"attempt", attempt,
			"max_attempts", attempts,
			"error", err)

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoffDelay(cfg, attempt)):
		}
	}
	return nil, lastErr
}

// backoffDelay doubles the initial delay per attempt, caps it at
// MaxDelay, and adds up to 25% jitter.
func backoffDelay(cfg RetryConfig, attempt int) time.Duration {
	delay := cfg.InitialDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= cfg.MaxDelay {
			delay = cfg.MaxDelay
			break
		}
	}
	if delay <= 0 {
		return 0
	}
	jitter := time.Duration(rand.Int63n(int64(delay) / 4))
	return delay + jitter
}
