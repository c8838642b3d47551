package store

import (
	"context"
	"fmt"
)

type CreateDeliveryLogParams struct {
	CampaignID        int64
	AccountID         int64
	Success           bool
	ProviderMessageID string
	ResponsePayload   JSONB
	ErrorMessage      string
}

const deliveryLogColumns = `id, campaign_id, account_id, success, provider_message_id, response_payload, error_message, created_at`

// The campaign's updated_at is refreshed with every row so a long running dispatch is not taken for a stuck one.
const sqlCreateDeliveryLog = `
WITH touched AS (
    UPDATE message_campaigns
    SET updated_at = CURRENT_TIMESTAMP
    WHERE id = $1 AND status = 'sending'
)
INSERT INTO delivery_logs (campaign_id, account_id, success, provider_message_id, response_payload, error_message)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + deliveryLogColumns

// CreateDeliveryLog appends one outcome row. Rows are never updated afterwards.
func (s *Store) CreateDeliveryLog(ctx context.Context, params CreateDeliveryLogParams) (DeliveryLog, error) {
	payload := params.ResponsePayload
	if payload == nil {
		payload = JSONB{}
	}

	var log DeliveryLog
	err := s.db.GetContext(ctx, &log, sqlCreateDeliveryLog,
		params.CampaignID,
		params.AccountID,
		params.Success,
		params.ProviderMessageID,
		payload,
		params.ErrorMessage)
	if err != nil {
		s.logger.Error(ctx, "failed to create delivery log", err)
		return DeliveryLog{}, fmt.Errorf("failed to create delivery log: %w", err)
	}
	return log, nil
}

const sqlListDeliveryLogsByCampaign = `
SELECT ` + deliveryLogColumns + `
FROM delivery_logs
WHERE campaign_id = $1
ORDER BY created_at DESC, id DESC
`

// ListDeliveryLogsByCampaign returns a campaign's delivery logs, newest first
func (s *Store) ListDeliveryLogsByCampaign(ctx context.Context, campaignID int64) ([]DeliveryLog, error) {
	logs := []DeliveryLog{}
	err := s.db.SelectContext(ctx, &logs, sqlListDeliveryLogsByCampaign, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to list delivery logs", err)
		return nil, fmt.Errorf("failed to list delivery logs: %w", err)
	}
	return logs, nil
}
