package providers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"social-manager/internal/metrics"
	"social-manager/internal/observability"
	"social-manager/internal/store"

	"golang.org/x/time/rate"
)

const DefaultTimeout = 15 * time.Second

type RegistryConfig struct {
	Timeout time.Duration
	// RatePerSecond caps sends per platform. Zero disables limiting.
	RatePerSecond float64
}

// Registry routes each send to the adapter registered for the account's platform.
type Registry struct {
	fallback Adapter
	adapters map[string]Adapter
	config   RegistryConfig
	logger   *observability.Logger
	metrics  *metrics.Metrics

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewRegistry builds a registry whose unmatched platforms go to fallback.
// A nil fallback means StubAdapter.
func NewRegistry(fallback Adapter, config RegistryConfig, logger *observability.Logger, m *metrics.Metrics) *Registry {
	if fallback == nil {
		fallback = StubAdapter{}
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	return &Registry{
		fallback: fallback,
		adapters: make(map[string]Adapter),
		config:   config,
		logger:   logger,
		metrics:  m,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Register mounts an adapter for platform, replacing any previous one.
func (r *Registry) Register(platform string, adapter Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters[platform] = adapter
}

func (r *Registry) adapterFor(platform string) Adapter {
	r.mu.Lock()
	defer r.mu.Unlock()
	if adapter, ok := r.adapters[platform]; ok {
		return adapter
	}
	return r.fallback
}

func (r *Registry) limiterFor(platform string) *rate.Limiter {
	if r.config.RatePerSecond <= 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	limiter, ok := r.limiters[platform]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(r.config.RatePerSecond), 1)
		r.limiters[platform] = limiter
	}
	return limiter
}

// Send never returns an error; failures come back as Outcome{Success: false}.
func (r *Registry) Send(ctx context.Context, message string, account store.SocialAccount, imageURL string) Outcome {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: account.ID},
		observability.Field{Key: "platform", Value: account.Platform},
	)

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	outcome := r.send(ctx, message, account, imageURL)
	if !outcome.Success {
		r.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "error_message", Value: outcome.ErrorMessage}),
			"delivery failed")
	}
	r.metrics.ObserveDelivery(account.Platform, outcome.Success)
	return outcome
}

type publishResult struct {
	outcome Outcome
	err     error
}

func (r *Registry) send(ctx context.Context, message string, account store.SocialAccount, imageURL string) Outcome {
	if limiter := r.limiterFor(account.Platform); limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return Failure(fmt.Sprintf("rate limit wait aborted: %v", err))
		}
	}

	adapter := r.adapterFor(account.Platform)
	done := make(chan publishResult, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- publishResult{err: fmt.Errorf("provider panic: %v", p)}
			}
		}()
		outcome, err := adapter.Publish(ctx, message, account, imageURL)
		done <- publishResult{outcome: outcome, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return Failure(res.err.Error())
		}
		if res.outcome.ResponsePayload == nil {
			res.outcome.ResponsePayload = store.JSONB{}
		}
		if res.outcome.Success {
			res.outcome.ErrorMessage = ""
		} else {
			res.outcome.ProviderMessageID = ""
			if res.outcome.ErrorMessage == "" {
				res.outcome.ErrorMessage = "delivery rejected by provider"
			}
		}
		return res.outcome
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Failure(fmt.Sprintf("provider timed out after %s", r.config.Timeout))
		}
		return Failure(fmt.Sprintf("delivery cancelled: %v", ctx.Err()))
	}
}
