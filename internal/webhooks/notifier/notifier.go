// Package notifier publishes campaign events to the Context7 webhook sink.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"social-manager/internal/metrics"
	"social-manager/internal/observability"
)

const (
	DefaultBaseURL = "https://api.context7.com"
	DefaultTimeout = 10 * time.Second

	rawBodyLimit  = 500
	maxBodyLength = 1 << 20
)

// NotifyResult is what the sink answered. It is data, never an error.
type NotifyResult struct {
	Success    bool
	StatusCode int
	Payload    map[string]any
}

type Config struct {
	BaseURL string
	APIKey  string
	// Timeout bounds each attempt separately.
	Timeout time.Duration
	Retry   RetryPolicy
}

// Notifier posts events to <BaseURL>/events with bearer authentication.
type Notifier struct {
	baseURL    string
	apiKey     string
	retry      RetryPolicy
	httpClient *http.Client
	logger     *observability.Logger
	metrics    *metrics.Metrics
	sleep      func(ctx context.Context, d time.Duration) error
}

func New(config Config, logger *observability.Logger, m *metrics.Metrics) *Notifier {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.Retry.MaxAttempts <= 0 {
		config.Retry = DefaultRetryPolicy()
	}
	return &Notifier{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		apiKey:  config.APIKey,
		retry:   config.Retry,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger:  logger,
		metrics: m,
		sleep:   sleepContext,
	}
}

type eventEnvelope struct {
	Event   string         `json:"event"`
	Payload map[string]any `json:"payload"`
}

// Notify publishes one event. A missing API key short-circuits without any network call.
func (n *Notifier) Notify(ctx context.Context, eventName string, payload map[string]any) NotifyResult {
	ctx = observability.WithFields(ctx, observability.Field{Key: "event", Value: eventName})

	if n.apiKey == "" {
		n.logger.Warn(ctx, "skipping webhook notification, api key not configured")
		return NotifyResult{Success: false, StatusCode: 0, Payload: map[string]any{"error": "Missing API key"}}
	}

	body, err := json.Marshal(eventEnvelope{Event: eventName, Payload: payload})
	if err != nil {
		n.logger.Error(ctx, "failed to marshal webhook event", err)
		return requestFailed(err)
	}

	url := n.baseURL + "/events"
	for attempt := 1; ; attempt++ {
		if attempt > 1 {
			if err := n.sleep(ctx, n.retry.Backoff(attempt)); err != nil {
				n.logger.Error(ctx, "webhook retry aborted", err)
				return requestFailed(err)
			}
		}

		status, respBody, err := n.post(ctx, url, body)
		if err != nil {
			n.metrics.ObserveNotifierAttempt("error")
			n.logger.Error(observability.WithFields(ctx, observability.Field{Key: "attempt", Value: attempt}),
				"webhook request failed", err)
			return requestFailed(err)
		}

		if n.retry.ShouldRetry(http.MethodPost, status, attempt) {
			n.metrics.ObserveNotifierAttempt("retry")
			n.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "attempt", Value: attempt},
				observability.Field{Key: "status_code", Value: status},
			), "webhook returned retryable status")
			continue
		}

		result := buildResult(status, respBody)
		if result.Success {
			n.metrics.ObserveNotifierAttempt("success")
		} else {
			n.metrics.ObserveNotifierAttempt("failure")
			n.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "attempt", Value: attempt},
				observability.Field{Key: "status_code", Value: status},
			), "webhook notification rejected")
		}
		return result
	}
}

func (n *Notifier) post(ctx context.Context, url string, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyLength))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, respBody, nil
}

func buildResult(status int, body []byte) NotifyResult {
	success := status >= 200 && status < 400

	if len(bytes.TrimSpace(body)) == 0 {
		return NotifyResult{Success: success, StatusCode: status, Payload: map[string]any{}}
	}

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil || parsed == nil {
		raw := truncate(string(body), rawBodyLimit)
		if success {
			return NotifyResult{Success: true, StatusCode: status, Payload: map[string]any{"raw_body": raw}}
		}
		return NotifyResult{
			Success:    false,
			StatusCode: status,
			Payload:    map[string]any{"error": "Invalid JSON response", "raw_body": raw},
		}
	}
	return NotifyResult{Success: success, StatusCode: status, Payload: parsed}
}

func requestFailed(err error) NotifyResult {
	return NotifyResult{
		Success:    false,
		StatusCode: 0,
		Payload:    map[string]any{"error": "Request failed", "detail": err.Error()},
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
