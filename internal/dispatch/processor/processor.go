package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"social-manager/internal/metrics"
	"social-manager/internal/observability"
	"social-manager/internal/providers"
	"social-manager/internal/store"
	"social-manager/internal/webhooks/notifier"

	"golang.org/x/sync/errgroup"
)

// EventCampaignDispatched is published once per dispatch after the final status is written.
const EventCampaignDispatched = "campaign.dispatched"

// DispatchStore defines the database operations required by DispatchProcessor
type DispatchStore interface {
	GetCampaignByID(ctx context.Context, campaignID int64) (store.Campaign, error)
	ListActiveSocialAccounts(ctx context.Context) ([]store.SocialAccount, error)
	MarkCampaignSending(ctx context.Context, campaignID int64) (store.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, campaignID int64, status string) (store.Campaign, error)
	CreateDeliveryLog(ctx context.Context, params store.CreateDeliveryLogParams) (store.DeliveryLog, error)
}

// Notifier publishes dispatch events. Failures are reported in the result, never as errors.
type Notifier interface {
	Notify(ctx context.Context, eventName string, payload map[string]any) notifier.NotifyResult
}

// Locker grants exclusive ownership of a key. acquired is false when someone else holds it.
type Locker interface {
	TryLock(ctx context.Context, key string) (release func(), acquired bool, err error)
}

var (
	ErrValidation              = errors.New("invalid dispatch request")
	ErrCampaignTitleRequired   = fmt.Errorf("%w: title is required", ErrValidation)
	ErrCampaignMessageRequired = fmt.Errorf("%w: message is required", ErrValidation)
	ErrInactiveAccount         = fmt.Errorf("%w: target account is not active", ErrValidation)
	ErrUnknownAccount          = fmt.Errorf("%w: target account is unknown", ErrValidation)
	ErrCampaignNotFound        = errors.New("campaign not found")
	ErrAlreadyDispatching      = errors.New("campaign is already dispatching or has been dispatched")
	ErrPersistence             = errors.New("dispatch persistence failure")
)

// DispatchStats aggregates per-account outcomes. Total always equals Sent + Failed.
type DispatchStats struct {
	Total  int `json:"total"`
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// DispatchResult is the stats plus the campaign as written by the final status update.
type DispatchResult struct {
	Campaign store.Campaign
	Stats    DispatchStats
}

type Config struct {
	// Concurrency above 1 fans sends out; delivery log order then follows completion order.
	Concurrency int
}

type DispatchProcessor struct {
	store    DispatchStore
	provider providers.Provider
	notifier Notifier
	recorder *Recorder
	locker   Locker
	config   Config
	logger   *observability.Logger
	metrics  *metrics.Metrics
}

func New(
	dispatchStore DispatchStore,
	provider providers.Provider,
	eventNotifier Notifier,
	locker Locker,
	config Config,
	logger *observability.Logger,
	m *metrics.Metrics,
) DispatchProcessor {
	if config.Concurrency < 1 {
		config.Concurrency = 1
	}
	if locker == nil {
		locker = NewKeyedLocker()
	}
	return DispatchProcessor{
		store:    dispatchStore,
		provider: provider,
		notifier: eventNotifier,
		recorder: NewRecorder(dispatchStore, logger),
		locker:   locker,
		config:   config,
		logger:   logger,
		metrics:  m,
	}
}

// DispatchCampaign sends campaign to accounts, or to every active account when accounts is nil.
func (p *DispatchProcessor) DispatchCampaign(ctx context.Context, campaign store.Campaign, accounts []store.SocialAccount) (DispatchStats, error) {
	result, err := p.Dispatch(ctx, campaign, accounts)
	return result.Stats, err
}

// DispatchCampaignByID loads the campaign and dispatches it to every active account.
func (p *DispatchProcessor) DispatchCampaignByID(ctx context.Context, campaignID int64) (DispatchResult, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return DispatchResult{}, ErrCampaignNotFound
		}
		return DispatchResult{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return p.Dispatch(ctx, campaign, nil)
}

// Dispatch runs the full workflow: validate, lock, mark sending, send and record per account,
// write the final status and notify once.
func (p *DispatchProcessor) Dispatch(ctx context.Context, campaign store.Campaign, accounts []store.SocialAccount) (DispatchResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaign.ID})
	start := time.Now()

	if err := validateDispatch(campaign, accounts); err != nil {
		p.logger.InfoWithError(ctx, "rejected dispatch request", err)
		return DispatchResult{}, err
	}

	release, acquired, err := p.locker.TryLock(ctx, fmt.Sprintf("campaign-dispatch:%d", campaign.ID))
	if err != nil {
		p.logger.Error(ctx, "failed to acquire dispatch lock", err)
		return DispatchResult{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if !acquired {
		p.logger.Warn(ctx, "campaign dispatch already in flight")
		return DispatchResult{}, ErrAlreadyDispatching
	}
	defer release()

	targets := accounts
	if targets == nil {
		targets, err = p.store.ListActiveSocialAccounts(ctx)
		if err != nil {
			p.logger.Error(ctx, "failed to list active accounts", err)
			return DispatchResult{}, fmt.Errorf("%w: %w", ErrPersistence, err)
		}
	}

	sending, err := p.store.MarkCampaignSending(ctx, campaign.ID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return DispatchResult{}, ErrCampaignNotFound
		case errors.Is(err, store.ErrStatusConflict):
			p.logger.Warn(ctx, "campaign is not in a dispatchable status")
			return DispatchResult{}, ErrAlreadyDispatching
		default:
			p.logger.Error(ctx, "failed to mark campaign sending", err)
			return DispatchResult{}, fmt.Errorf("%w: %w", ErrPersistence, err)
		}
	}

	// once the campaign is sending, every target gets a log and a final status even if the caller hangs up
	workCtx := context.WithoutCancel(ctx)

	stats, err := p.deliver(workCtx, sending, targets)
	if err != nil {
		p.logger.Error(ctx, "dispatch aborted, campaign left in sending", err)
		return DispatchResult{Campaign: sending, Stats: stats}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	finalStatus := store.CampaignStatusSent
	if stats.Failed > 0 {
		finalStatus = store.CampaignStatusFailed
	}

	final, err := p.store.UpdateCampaignStatus(workCtx, campaign.ID, finalStatus)
	if err != nil {
		p.logger.Error(ctx, "failed to write final campaign status", err)
		return DispatchResult{Campaign: sending, Stats: stats}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	p.metrics.ObserveDispatch(finalStatus, time.Since(start))
	p.notify(workCtx, final, stats)

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "status", Value: finalStatus},
		observability.Field{Key: "total", Value: stats.Total},
		observability.Field{Key: "sent", Value: stats.Sent},
		observability.Field{Key: "failed", Value: stats.Failed},
	), "campaign dispatched")

	return DispatchResult{Campaign: final, Stats: stats}, nil
}

func validateDispatch(campaign store.Campaign, accounts []store.SocialAccount) error {
	if campaign.ID <= 0 {
		return ErrCampaignNotFound
	}
	if strings.TrimSpace(campaign.Title) == "" {
		return ErrCampaignTitleRequired
	}
	if strings.TrimSpace(campaign.Message) == "" {
		return ErrCampaignMessageRequired
	}
	for _, account := range accounts {
		if account.ID <= 0 {
			return ErrUnknownAccount
		}
		if !account.IsActive {
			return fmt.Errorf("%w: account %d", ErrInactiveAccount, account.ID)
		}
	}
	return nil
}

// deliver sends to every target and records each outcome as soon as it is known.
// A recorder error stops the loop; provider failures never do.
func (p *DispatchProcessor) deliver(ctx context.Context, campaign store.Campaign, targets []store.SocialAccount) (DispatchStats, error) {
	stats := DispatchStats{Total: len(targets)}

	if p.config.Concurrency <= 1 || len(targets) <= 1 {
		for _, account := range targets {
			outcome := p.provider.Send(ctx, campaign.Message, account, campaign.ImageURL)
			if err := p.recorder.Record(ctx, campaign.ID, account.ID, outcome); err != nil {
				return stats, err
			}
			if outcome.Success {
				stats.Sent++
			} else {
				stats.Failed++
			}
		}
		return stats, nil
	}

	var sent, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.config.Concurrency)
	for _, account := range targets {
		g.Go(func() error {
			outcome := p.provider.Send(gctx, campaign.Message, account, campaign.ImageURL)
			if err := p.recorder.Record(gctx, campaign.ID, account.ID, outcome); err != nil {
				return err
			}
			if outcome.Success {
				sent.Add(1)
			} else {
				failed.Add(1)
			}
			return nil
		})
	}
	err := g.Wait()
	stats.Sent = int(sent.Load())
	stats.Failed = int(failed.Load())
	return stats, err
}

func (p *DispatchProcessor) notify(ctx context.Context, campaign store.Campaign, stats DispatchStats) {
	if p.notifier == nil {
		return
	}
	result := p.notifier.Notify(ctx, EventCampaignDispatched, map[string]any{
		"campaign_id": campaign.ID,
		"title":       campaign.Title,
		"status":      campaign.Status,
		"stats": map[string]any{
			"total":  stats.Total,
			"sent":   stats.Sent,
			"failed": stats.Failed,
		},
	})
	if !result.Success {
		p.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "status_code", Value: result.StatusCode},
			observability.Field{Key: "payload", Value: result.Payload},
		), "dispatch notification not delivered")
	}
}
