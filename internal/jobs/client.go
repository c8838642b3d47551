package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"social-manager/internal/config"
	"social-manager/internal/observability"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	now    func() time.Time
	logger *observability.Logger
}

// RedisOpt builds the asynq connection options from the Redis config
func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// NewClient creates a new job client
func NewClient(opt asynq.RedisConnOpt, logger *observability.Logger) *Client {
	return &Client{
		client: asynq.NewClient(opt),
		now:    time.Now,
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueCampaignDispatch queues a dispatch of the campaign. A campaign whose task is already
// pending or running is not queued twice and yields no error.
func (c *Client) EnqueueCampaignDispatch(ctx context.Context, campaignID int64) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	task, err := NewCampaignDispatchTask(CampaignDispatchPayload{
		CampaignID:  campaignID,
		RequestID:   uuid.New(),
		RequestedAt: c.now().UTC(),
	})
	if err != nil {
		c.logger.Error(ctx, "failed to create campaign dispatch task", err)
		return fmt.Errorf("failed to create campaign dispatch task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			c.logger.Info(ctx, "campaign dispatch already queued")
			return nil
		}
		c.logger.Error(ctx, "failed to enqueue campaign dispatch task", err)
		return fmt.Errorf("failed to enqueue campaign dispatch task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued campaign dispatch task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}
