package notifier

import (
	"context"
	"math"
	"net/http"
	"time"
)

// RetryPolicy decides which responses are retried and how long to wait between attempts.
type RetryPolicy struct {
	// MaxAttempts counts the initial attempt.
	MaxAttempts     int
	BaseBackoff     time.Duration
	Factor          float64
	RetryableStatus map[int]struct{}
	Methods         map[string]struct{}
}

// DefaultRetryPolicy retries POSTs answered with 429, 500, 502, 503 or 504, three attempts in total.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseBackoff: 500 * time.Millisecond,
		Factor:      2,
		RetryableStatus: map[int]struct{}{
			http.StatusTooManyRequests:     {},
			http.StatusInternalServerError: {},
			http.StatusBadGateway:          {},
			http.StatusServiceUnavailable:  {},
			http.StatusGatewayTimeout:      {},
		},
		Methods: map[string]struct{}{
			http.MethodPost: {},
		},
	}
}

// ShouldRetry reports whether a response with status to method may be retried after attempt.
func (p RetryPolicy) ShouldRetry(method string, status int, attempt int) bool {
	if attempt >= p.MaxAttempts {
		return false
	}
	if _, ok := p.Methods[method]; !ok {
		return false
	}
	_, ok := p.RetryableStatus[status]
	return ok
}

// Backoff returns the wait before attempt n (n >= 2): BaseBackoff * Factor^(n-2).
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt < 2 {
		return 0
	}
	factor := p.Factor
	if factor < 1 {
		factor = 1
	}
	return time.Duration(float64(p.BaseBackoff) * math.Pow(factor, float64(attempt-2)))
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
