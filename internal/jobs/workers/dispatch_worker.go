package workers

//go:generate go run go.uber.org/mock/mockgen@latest -source=dispatch_worker.go -destination=mocks_test.go -package=workers

import (
	"context"
	"errors"
	"fmt"

	"social-manager/internal/dispatch/processor"
	"social-manager/internal/jobs"
	"social-manager/internal/observability"

	"github.com/hibiken/asynq"
)

// CampaignDispatcher dispatches a stored campaign by id
type CampaignDispatcher interface {
	DispatchCampaignByID(ctx context.Context, campaignID int64) (processor.DispatchResult, error)
}

// DispatchWorker handles campaign dispatch jobs
type DispatchWorker struct {
	dispatcher CampaignDispatcher
	logger     *observability.Logger
}

// NewDispatchWorker creates a new dispatch worker
func NewDispatchWorker(dispatcher CampaignDispatcher, logger *observability.Logger) *DispatchWorker {
	return &DispatchWorker{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// ProcessCampaignDispatchTask processes a campaign dispatch task (for Asynq).
// Campaigns that are gone or no longer dispatchable are dropped; a persistence failure after the
// campaign entered sending is not retried since the campaign can no longer be claimed.
func (w *DispatchWorker) ProcessCampaignDispatchTask(ctx context.Context, task *asynq.Task) error {
	payload, err := jobs.ParseCampaignDispatchPayload(task)
	if err != nil {
		w.logger.Error(ctx, "failed to parse campaign dispatch payload", err)
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: payload.CampaignID},
		observability.Field{Key: "job_request_id", Value: payload.RequestID.String()},
	)

	result, err := w.dispatcher.DispatchCampaignByID(ctx, payload.CampaignID)
	switch {
	case err == nil:
	case errors.Is(err, processor.ErrCampaignNotFound):
		w.logger.Warn(ctx, "campaign no longer exists, dropping dispatch task")
		return nil
	case errors.Is(err, processor.ErrAlreadyDispatching):
		w.logger.Info(ctx, "campaign is not dispatchable, dropping dispatch task")
		return nil
	case errors.Is(err, processor.ErrPersistence):
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	default:
		return fmt.Errorf("failed to dispatch campaign: %w", err)
	}

	w.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "status", Value: result.Campaign.Status},
		observability.Field{Key: "sent", Value: result.Stats.Sent},
		observability.Field{Key: "failed", Value: result.Stats.Failed},
	), "processed campaign dispatch task")
	return nil
}
