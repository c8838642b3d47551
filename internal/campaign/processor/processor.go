package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	dispatchProcessor "social-manager/internal/dispatch/processor"
	"social-manager/internal/observability"
	"social-manager/internal/store"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID int64) (store.Campaign, error)
	ListActiveSocialAccounts(ctx context.Context) ([]store.SocialAccount, error)
	ListActiveSocialAccountsBySelection(ctx context.Context, names, platforms []string) ([]store.SocialAccount, error)
	ListDeliveryLogsByCampaign(ctx context.Context, campaignID int64) ([]store.DeliveryLog, error)
}

// Dispatcher runs the dispatch workflow for a campaign.
type Dispatcher interface {
	Dispatch(ctx context.Context, campaign store.Campaign, accounts []store.SocialAccount) (dispatchProcessor.DispatchResult, error)
	DispatchCampaignByID(ctx context.Context, campaignID int64) (dispatchProcessor.DispatchResult, error)
}

var (
	ErrValidation             = errors.New("invalid campaign request")
	ErrTitleRequired          = fmt.Errorf("%w: title is required", ErrValidation)
	ErrTitleTooLong           = fmt.Errorf("%w: title must be <= %d characters", ErrValidation, maxTitleLength)
	ErrMessageRequired        = fmt.Errorf("%w: message is required", ErrValidation)
	ErrInvalidTaskMode        = fmt.Errorf("%w: task_mode must be manual or automated", ErrValidation)
	ErrAccountSelectionEmpty  = fmt.Errorf("%w: Select at least one account", ErrValidation)
	ErrPlatformSelectionEmpty = fmt.Errorf("%w: Select at least one platform", ErrValidation)
	ErrNoAccountMatch         = fmt.Errorf("%w: No active account match for your selection", ErrValidation)
	ErrCampaignNotFound       = errors.New("campaign not found")
	ErrFailedCreateCampaign   = errors.New("failed to create campaign")
	ErrFailedListAccounts     = errors.New("failed to list accounts")
	ErrFailedListDeliveries   = errors.New("failed to list deliveries")
)

const maxTitleLength = 200

type CampaignProcessor struct {
	store      CampaignStore
	dispatcher Dispatcher
	logger     *observability.Logger
}

func New(campaignStore CampaignStore, dispatcher Dispatcher, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:      campaignStore,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Title    string
	Message  string
	TaskMode string
	SendAt   *time.Time
	ImageURL string
}

// ComposeSendParams is a one-off campaign sent to a named selection of accounts.
type ComposeSendParams struct {
	Title        string
	Message      string
	AccountNames []string
	Platforms    []string
}

// SendResult is what a dispatch reports back to callers.
type SendResult struct {
	CampaignID int64                           `json:"campaign_id"`
	Status     string                          `json:"status"`
	Stats      dispatchProcessor.DispatchStats `json:"stats"`
	Targets    []string                        `json:"targets,omitempty"`
}

// WizardAccount is one platform presence of a named account.
type WizardAccount struct {
	Platform string `json:"platform"`
	Handle   string `json:"handle"`
}

// CreateCampaign stores a new campaign. It is scheduled when SendAt is set, otherwise a draft.
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, params CreateCampaignParams) (store.Campaign, error) {
	title, message, err := validateCopy(params.Title, params.Message)
	if err != nil {
		return store.Campaign{}, err
	}

	taskMode := strings.TrimSpace(params.TaskMode)
	switch taskMode {
	case "":
		taskMode = store.TaskModeManual
	case store.TaskModeManual, store.TaskModeAutomated:
	default:
		return store.Campaign{}, ErrInvalidTaskMode
	}

	status := store.CampaignStatusDraft
	if params.SendAt != nil {
		status = store.CampaignStatusScheduled
	}

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		Title:    title,
		Message:  message,
		Status:   status,
		TaskMode: taskMode,
		SendAt:   params.SendAt,
		ImageURL: strings.TrimSpace(params.ImageURL),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, ErrFailedCreateCampaign
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaign.ID},
		observability.Field{Key: "status", Value: campaign.Status},
	)
	p.logger.Info(ctx, "created campaign")

	return campaign, nil
}

// SendCampaign dispatches a stored campaign to every active account.
func (p *CampaignProcessor) SendCampaign(ctx context.Context, campaignID int64) (SendResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	result, err := p.dispatcher.DispatchCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, dispatchProcessor.ErrCampaignNotFound) {
			return SendResult{}, ErrCampaignNotFound
		}
		return SendResult{}, err
	}

	return SendResult{
		CampaignID: result.Campaign.ID,
		Status:     result.Campaign.Status,
		Stats:      result.Stats,
	}, nil
}

// ComposeAndSend creates a draft campaign and dispatches it to the active accounts matching
// both the selected names and platforms.
func (p *CampaignProcessor) ComposeAndSend(ctx context.Context, params ComposeSendParams) (SendResult, error) {
	title, message, err := validateCopy(params.Title, params.Message)
	if err != nil {
		return SendResult{}, err
	}
	names := compact(params.AccountNames)
	if len(names) == 0 {
		return SendResult{}, ErrAccountSelectionEmpty
	}
	platforms := compact(params.Platforms)
	if len(platforms) == 0 {
		return SendResult{}, ErrPlatformSelectionEmpty
	}

	accounts, err := p.store.ListActiveSocialAccountsBySelection(ctx, names, platforms)
	if err != nil {
		p.logger.Error(ctx, "failed to select accounts", err)
		return SendResult{}, ErrFailedListAccounts
	}
	if len(accounts) == 0 {
		p.logger.Info(ctx, "no active account matched the selection")
		return SendResult{}, ErrNoAccountMatch
	}

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		Title:    title,
		Message:  message,
		Status:   store.CampaignStatusDraft,
		TaskMode: store.TaskModeManual,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign", err)
		return SendResult{}, ErrFailedCreateCampaign
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaign.ID})
	dispatched, err := p.dispatcher.Dispatch(ctx, campaign, accounts)
	if err != nil {
		return SendResult{}, err
	}

	targets := make([]string, 0, len(accounts))
	for _, account := range accounts {
		targets = append(targets, account.Label())
	}

	return SendResult{
		CampaignID: campaign.ID,
		Status:     dispatched.Campaign.Status,
		Stats:      dispatched.Stats,
		Targets:    targets,
	}, nil
}

// WizardAccounts groups the active accounts by name.
func (p *CampaignProcessor) WizardAccounts(ctx context.Context) (map[string][]WizardAccount, error) {
	accounts, err := p.store.ListActiveSocialAccounts(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list active accounts", err)
		return nil, ErrFailedListAccounts
	}

	grouped := make(map[string][]WizardAccount)
	for _, account := range accounts {
		grouped[account.Name] = append(grouped[account.Name], WizardAccount{
			Platform: account.Platform,
			Handle:   account.Handle,
		})
	}
	return grouped, nil
}

func (p *CampaignProcessor) ListDeliveries(ctx context.Context, campaignID int64) ([]store.DeliveryLog, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	if _, err := p.store.GetCampaignByID(ctx, campaignID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return nil, ErrFailedListDeliveries
	}

	logs, err := p.store.ListDeliveryLogsByCampaign(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to list delivery logs", err)
		return nil, ErrFailedListDeliveries
	}
	return logs, nil
}

func validateCopy(title, message string) (string, string, error) {
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)
	if title == "" {
		return "", "", ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", "", ErrTitleTooLong
	}
	if message == "" {
		return "", "", ErrMessageRequired
	}
	return title, message, nil
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
