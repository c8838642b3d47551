package processor

import (
	"context"
	"fmt"

	"social-manager/internal/observability"
	"social-manager/internal/providers"
	"social-manager/internal/store"
)

// DeliveryLogWriter appends delivery outcomes.
type DeliveryLogWriter interface {
	CreateDeliveryLog(ctx context.Context, params store.CreateDeliveryLogParams) (store.DeliveryLog, error)
}

// Recorder persists one delivery log row per account per dispatch. Rows are never updated.
type Recorder struct {
	writer DeliveryLogWriter
	logger *observability.Logger
}

func NewRecorder(writer DeliveryLogWriter, logger *observability.Logger) *Recorder {
	return &Recorder{writer: writer, logger: logger}
}

// Record returns the store error unchanged in meaning; callers must treat it as fatal.
func (r *Recorder) Record(ctx context.Context, campaignID, accountID int64, outcome providers.Outcome) error {
	params := store.CreateDeliveryLogParams{
		CampaignID:        campaignID,
		AccountID:         accountID,
		Success:           outcome.Success,
		ProviderMessageID: outcome.ProviderMessageID,
		ResponsePayload:   outcome.ResponsePayload,
		ErrorMessage:      outcome.ErrorMessage,
	}
	if params.ResponsePayload == nil {
		params.ResponsePayload = store.JSONB{}
	}
	if outcome.Success {
		params.ErrorMessage = ""
	} else {
		params.ProviderMessageID = ""
	}

	if _, err := r.writer.CreateDeliveryLog(ctx, params); err != nil {
		r.logger.Error(observability.WithFields(ctx, observability.Field{Key: "account_id", Value: accountID}),
			"failed to record delivery", err)
		return fmt.Errorf("failed to record delivery for account %d: %w", accountID, err)
	}
	return nil
}
