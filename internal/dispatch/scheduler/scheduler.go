package scheduler

//go:generate go run go.uber.org/mock/mockgen@latest -source=scheduler.go -destination=mocks_test.go -package=scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"social-manager/internal/dispatch/processor"
	"social-manager/internal/observability"
	"social-manager/internal/store"
)

// NothingReadyMessage is reported when a pass finds no due campaign.
const NothingReadyMessage = "No scheduled campaigns were ready to send."

// ScheduleStore defines the database operations required by Scheduler
type ScheduleStore interface {
	ListReadyScheduledCampaigns(ctx context.Context, now time.Time) ([]store.Campaign, error)
	ListStuckSendingCampaigns(ctx context.Context, cutoff time.Time) ([]store.Campaign, error)
}

// Dispatcher sends, or queues for sending, one due campaign.
type Dispatcher interface {
	Dispatch(ctx context.Context, campaignID int64) error
}

// DispatchFunc adapts a function to Dispatcher.
type DispatchFunc func(ctx context.Context, campaignID int64) error

func (f DispatchFunc) Dispatch(ctx context.Context, campaignID int64) error {
	return f(ctx, campaignID)
}

// StuckReporter receives the number of campaigns stuck in sending.
type StuckReporter interface {
	SetStuckSending(count int)
}

// RunSummary describes one scheduling pass.
type RunSummary struct {
	Ready      int
	Dispatched int
	Skipped    int
	Failed     int
	Stuck      []int64
}

// Message renders the summary for operators.
func (s RunSummary) Message() string {
	if s.Ready == 0 {
		return NothingReadyMessage
	}
	return fmt.Sprintf("Dispatched %d of %d scheduled campaigns (%d skipped, %d failed).",
		s.Dispatched, s.Ready, s.Skipped, s.Failed)
}

type Config struct {
	Interval   time.Duration
	StuckAfter time.Duration
}

// Scheduler periodically dispatches scheduled campaigns whose send_at has passed and reports
// campaigns left in sending for longer than StuckAfter.
type Scheduler struct {
	store      ScheduleStore
	dispatcher Dispatcher
	reporter   StuckReporter
	cfg        Config
	now        func() time.Time
	logger     *observability.Logger
	stopChan   chan struct{}
}

func New(scheduleStore ScheduleStore, dispatcher Dispatcher, reporter StuckReporter, cfg Config, logger *observability.Logger) *Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	return &Scheduler{
		store:      scheduleStore,
		dispatcher: dispatcher,
		reporter:   reporter,
		cfg:        cfg,
		now:        time.Now,
		logger:     logger,
		stopChan:   make(chan struct{}),
	}
}

// Start runs a pass immediately and then on every interval until Stop or ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "component", Value: "dispatch_scheduler"})
	s.logger.Info(ctx, fmt.Sprintf("Starting dispatch scheduler (interval: %s)", s.cfg.Interval))

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.tick(ctx)

	for {
		select {
		case <-ticker.C:
			s.tick(ctx)
		case <-s.stopChan:
			s.logger.Info(ctx, "Stopping dispatch scheduler")
			return
		case <-ctx.Done():
			s.logger.Info(ctx, "Context cancelled, stopping dispatch scheduler")
			return
		}
	}
}

func (s *Scheduler) Stop() {
	close(s.stopChan)
}

func (s *Scheduler) tick(ctx context.Context) {
	summary, err := s.RunOnce(ctx)
	if err != nil {
		s.logger.Error(ctx, "scheduled dispatch pass failed", err)
		return
	}
	if summary.Ready > 0 {
		s.logger.Info(ctx, summary.Message())
	}
}

// RunOnce dispatches every campaign that is ready now. A failure on one campaign does not stop the
// pass; only a failure to list campaigns is returned.
func (s *Scheduler) RunOnce(ctx context.Context) (RunSummary, error) {
	now := s.now()
	var summary RunSummary

	if s.cfg.StuckAfter > 0 {
		stuck, err := s.ReportStuck(ctx)
		if err != nil {
			return summary, err
		}
		summary.Stuck = stuck
	}

	campaigns, err := s.store.ListReadyScheduledCampaigns(ctx, now)
	if err != nil {
		return summary, fmt.Errorf("failed to list ready campaigns: %w", err)
	}

	for _, campaign := range campaigns {
		if !campaign.IsReadyToSend(now) {
			continue
		}
		summary.Ready++

		campaignCtx := observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaign.ID})
		err := s.dispatcher.Dispatch(campaignCtx, campaign.ID)
		switch {
		case err == nil:
			summary.Dispatched++
		case errors.Is(err, processor.ErrAlreadyDispatching):
			s.logger.Info(campaignCtx, "campaign already dispatching, skipping")
			summary.Skipped++
		default:
			s.logger.Error(campaignCtx, "failed to dispatch scheduled campaign", err)
			summary.Failed++
		}
	}

	return summary, nil
}

// ReportStuck lists campaigns left in sending since before now minus StuckAfter, logs each one and
// publishes the count. Nothing is repaired here.
func (s *Scheduler) ReportStuck(ctx context.Context) ([]int64, error) {
	cutoff := s.now().Add(-s.cfg.StuckAfter)

	campaigns, err := s.store.ListStuckSendingCampaigns(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list stuck campaigns: %w", err)
	}

	ids := make([]int64, 0, len(campaigns))
	for _, campaign := range campaigns {
		ids = append(ids, campaign.ID)
		s.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "campaign_id", Value: campaign.ID},
			observability.Field{Key: "sending_since", Value: campaign.UpdatedAt},
		), "campaign stuck in sending")
	}
	if s.reporter != nil {
		s.reporter.SetStuckSending(len(campaigns))
	}

	return ids, nil
}
