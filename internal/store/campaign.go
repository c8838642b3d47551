package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Title    string
	Message  string
	Status   string
	TaskMode string
	SendAt   *time.Time
	ImageURL string
}

const campaignColumns = `id, title, message, status, task_mode, send_at, image_url, created_at, updated_at`

const sqlCreateCampaign = `
INSERT INTO message_campaigns (title, message, status, task_mode, send_at, image_url)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + campaignColumns

// CreateCampaign inserts a new campaign row
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	if params.TaskMode == "" {
		params.TaskMode = TaskModeManual
	}

	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateCampaign,
		params.Title,
		params.Message,
		params.Status,
		params.TaskMode,
		params.SendAt,
		params.ImageURL)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign", err)
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignByID = `
SELECT ` + campaignColumns + `
FROM message_campaigns
WHERE id = $1
`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID int64) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by id", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}
	return campaign, nil
}

const sqlMarkCampaignSending = `
UPDATE message_campaigns
SET status = 'sending', updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status IN ('draft', 'scheduled')
RETURNING ` + campaignColumns

// MarkCampaignSending moves a draft or scheduled campaign to sending in a single conditional write.
// It returns ErrStatusConflict when the campaign exists in any other status.
func (s *Store) MarkCampaignSending(ctx context.Context, campaignID int64) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlMarkCampaignSending, campaignID)
	if err == nil {
		return campaign, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.logger.Error(ctx, "failed to mark campaign sending", err)
		return Campaign{}, fmt.Errorf("failed to mark campaign sending: %w", err)
	}

	if _, err := s.GetCampaignByID(ctx, campaignID); err != nil {
		return Campaign{}, err
	}
	return Campaign{}, ErrStatusConflict
}

const sqlUpdateCampaignStatus = `
UPDATE message_campaigns
SET status = $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + campaignColumns

// UpdateCampaignStatus writes the status unconditionally
func (s *Store) UpdateCampaignStatus(ctx context.Context, campaignID int64, status string) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlUpdateCampaignStatus, campaignID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update campaign status", err)
		return Campaign{}, fmt.Errorf("failed to update campaign status: %w", err)
	}
	return campaign, nil
}

const sqlListReadyScheduledCampaigns = `
SELECT ` + campaignColumns + `
FROM message_campaigns
WHERE status = 'scheduled' AND send_at <= $1
ORDER BY send_at ASC, id ASC
`

// ListReadyScheduledCampaigns returns scheduled campaigns whose send_at has passed
func (s *Store) ListReadyScheduledCampaigns(ctx context.Context, now time.Time) ([]Campaign, error) {
	campaigns := []Campaign{}
	err := s.db.SelectContext(ctx, &campaigns, sqlListReadyScheduledCampaigns, now)
	if err != nil {
		s.logger.Error(ctx, "failed to list ready scheduled campaigns", err)
		return nil, fmt.Errorf("failed to list ready scheduled campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlListStuckSendingCampaigns = `
SELECT ` + campaignColumns + `
FROM message_campaigns
WHERE status = 'sending' AND updated_at < $1
ORDER BY updated_at ASC
`

// ListStuckSendingCampaigns returns campaigns left in sending since before the cutoff
func (s *Store) ListStuckSendingCampaigns(ctx context.Context, cutoff time.Time) ([]Campaign, error) {
	campaigns := []Campaign{}
	err := s.db.SelectContext(ctx, &campaigns, sqlListStuckSendingCampaigns, cutoff)
	if err != nil {
		s.logger.Error(ctx, "failed to list stuck sending campaigns", err)
		return nil, fmt.Errorf("failed to list stuck sending campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlRecoverStuckCampaign = `
UPDATE message_campaigns
SET status = $3::text,
    send_at = CASE WHEN $3::text = 'scheduled' THEN CURRENT_TIMESTAMP ELSE send_at END,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'sending' AND updated_at < $2
RETURNING ` + campaignColumns

// RecoverStuckCampaign moves a campaign that has been sending since before cutoff to status,
// which must be scheduled (retry on the next pass) or failed. Any other state yields ErrStatusConflict.
func (s *Store) RecoverStuckCampaign(ctx context.Context, campaignID int64, cutoff time.Time, status string) (Campaign, error) {
	if status != CampaignStatusScheduled && status != CampaignStatusFailed {
		return Campaign{}, fmt.Errorf("cannot recover campaign into status %q", status)
	}

	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlRecoverStuckCampaign, campaignID, cutoff, status)
	if err == nil {
		return campaign, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.logger.Error(ctx, "failed to recover stuck campaign", err)
		return Campaign{}, fmt.Errorf("failed to recover stuck campaign: %w", err)
	}

	if _, err := s.GetCampaignByID(ctx, campaignID); err != nil {
		return Campaign{}, err
	}
	return Campaign{}, ErrStatusConflict
}
