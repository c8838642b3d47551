package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeCampaignDispatch = "campaign:dispatch"
)

// Queue names
const (
	QueueHigh   = "high"
	QueueMedium = "medium"
	QueueLow    = "low"
)

// Queues maps queue names to their asynq priority weights.
var Queues = map[string]int{
	QueueHigh:   6,
	QueueMedium: 3,
	QueueLow:    1,
}

// CampaignDispatchPayload asks a worker to dispatch one stored campaign
type CampaignDispatchPayload struct {
	CampaignID  int64     `json:"campaign_id"`
	RequestID   uuid.UUID `json:"request_id"`
	RequestedAt time.Time `json:"requested_at"`
}

// CampaignDispatchTaskID is the asynq task id for a campaign, so a campaign is queued at most once
// while its task is pending or running.
func CampaignDispatchTaskID(campaignID int64) string {
	return fmt.Sprintf("campaign-dispatch-%d", campaignID)
}

// NewCampaignDispatchTask creates a new campaign dispatch task
func NewCampaignDispatchTask(payload CampaignDispatchPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCampaignDispatch, data,
		asynq.Queue(QueueHigh),
		asynq.MaxRetry(3),
		asynq.TaskID(CampaignDispatchTaskID(payload.CampaignID)),
	), nil
}

// ParseCampaignDispatchPayload decodes a campaign dispatch task payload
func ParseCampaignDispatchPayload(task *asynq.Task) (CampaignDispatchPayload, error) {
	var payload CampaignDispatchPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return CampaignDispatchPayload{}, fmt.Errorf("failed to unmarshal campaign dispatch payload: %w", err)
	}
	if payload.CampaignID <= 0 {
		return CampaignDispatchPayload{}, fmt.Errorf("invalid campaign id %d in dispatch payload", payload.CampaignID)
	}
	return payload, nil
}
