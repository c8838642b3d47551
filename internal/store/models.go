package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = JSONB{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	// Handle empty or null JSON
	if len(bytes) == 0 || string(bytes) == "null" {
		*j = JSONB{}
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return fmt.Errorf("failed to unmarshal JSONB: %w", err)
	}
	*j = result
	return nil
}

// Campaign is one message to be broadcast to a set of social accounts.
type Campaign struct {
	ID        int64      `db:"id" json:"id"`
	Title     string     `db:"title" json:"title"`
	Message   string     `db:"message" json:"message"`
	Status    string     `db:"status" json:"status"`
	TaskMode  string     `db:"task_mode" json:"task_mode"`
	SendAt    *time.Time `db:"send_at" json:"send_at,omitempty"`
	ImageURL  string     `db:"image_url" json:"image_url"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// IsReadyToSend reports whether the campaign may be dispatched at now.
func (c Campaign) IsReadyToSend(now time.Time) bool {
	if c.Status != CampaignStatusDraft && c.Status != CampaignStatusScheduled {
		return false
	}
	if c.SendAt == nil {
		return true
	}
	return !c.SendAt.After(now)
}

// SocialAccount is a dispatch target. AccessToken holds the sealed token.
type SocialAccount struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Platform    string    `db:"platform" json:"platform"`
	Handle      string    `db:"handle" json:"handle"`
	AccessToken string    `db:"access_token" json:"-"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Label renders the account as "<name> on <Platform> (@handle)".
func (a SocialAccount) Label() string {
	return fmt.Sprintf("%s on %s (@%s)", a.Name, PlatformDisplayName(a.Platform), a.Handle)
}

// DeliveryLog is the append-only outcome of one dispatch to one account.
type DeliveryLog struct {
	ID                int64     `db:"id" json:"id"`
	CampaignID        int64     `db:"campaign_id" json:"campaign_id"`
	AccountID         int64     `db:"account_id" json:"account_id"`
	Success           bool      `db:"success" json:"success"`
	ProviderMessageID string    `db:"provider_message_id" json:"provider_message_id"`
	ResponsePayload   JSONB     `db:"response_payload" json:"response_payload"`
	ErrorMessage      string    `db:"error_message" json:"error_message"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

type BusinessAccount struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Slug         string    `db:"slug" json:"slug"`
	ContactEmail string    `db:"contact_email" json:"contact_email"`
	Description  string    `db:"description" json:"description"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type BusinessCredential struct {
	ID         int64     `db:"id" json:"id"`
	BusinessID int64     `db:"business_id" json:"business_id"`
	Label      string    `db:"label" json:"label"`
	Username   string    `db:"username" json:"username"`
	Secret     string    `db:"secret" json:"-"`
	Metadata   JSONB     `db:"metadata" json:"metadata"`
	IsActive   bool      `db:"is_active" json:"is_active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

type SocialAPICredential struct {
	ID           int64     `db:"id" json:"id"`
	Platform     string    `db:"platform" json:"platform"`
	AppName      string    `db:"app_name" json:"app_name"`
	ClientID     string    `db:"client_id" json:"client_id"`
	ClientSecret string    `db:"client_secret" json:"-"`
	AccessToken  string    `db:"access_token" json:"-"`
	RefreshToken string    `db:"refresh_token" json:"-"`
	APIBaseURL   string    `db:"api_base_url" json:"api_base_url"`
	Metadata     JSONB     `db:"metadata" json:"metadata"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
