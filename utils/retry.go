package utils

import (
	"fmt"
	"time"
)

const maxBackoff = 30 * time.Second

// RetryWithBackoff retries a function up to maxAttempts times with
// quadratic backoff, capped at maxBackoff.
func RetryWithBackoff(maxAttempts int, fn func() error, logger *Logger) error {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt*attempt) * time.Second
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			logger.Warn("Retrying (attempt %d/%d) after %v...", attempt+1, maxAttempts, backoff)
			time.Sleep(backoff)
		}
		if err := fn(); err != nil {
			lastErr = err
			logger.Error("Attempt %d failed: %v", attempt+1, err)
			continue
		}
		return nil
	}
	return fmt.Errorf("all %d attempts failed, last error: %w", maxAttempts, lastErr)
}
