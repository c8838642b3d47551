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

// ContentStore defines the database operations required by ContentProcessor
type ContentStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	ListActiveSocialAccountsBySelection(ctx context.Context, names, platforms []string) ([]store.SocialAccount, error)
}

// TextGenerator is a chat model that answers with JSON.
type TextGenerator interface {
	Enabled() bool
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type ImageGenerator interface {
	Enabled() bool
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

type NewsSource interface {
	Fetch(ctx context.Context, keywords, area string, limit int) ([]NewsArticle, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, campaign store.Campaign, accounts []store.SocialAccount) (dispatchProcessor.DispatchResult, error)
}

var (
	ErrValidation     = errors.New("invalid compose request")
	ErrNoAccountMatch = fmt.Errorf("%w: No active account match for your selection", ErrValidation)
	ErrComposeFailed  = errors.New("failed to compose campaign")
)

const (
	maxTitleLength       = 200
	maxKeywordsLength    = 120
	maxAreaLength        = 120
	maxPerspectiveLength = 250
)

type AIComposeRequest struct {
	Keywords            string     `json:"keywords"`
	Area                string     `json:"area"`
	BusinessPerspective string     `json:"business_perspective"`
	TaskMode            string     `json:"task_mode"`
	SendAt              *time.Time `json:"send_at"`
	AccountNames        []string   `json:"account_names"`
	Platforms           []string   `json:"platforms"`
	Autopost            bool       `json:"autopost"`
}

type AIComposeResult struct {
	Campaign    store.Campaign                   `json:"campaign"`
	Articles    []NewsArticle                    `json:"articles"`
	ImagePrompt string                           `json:"image_prompt"`
	Stats       *dispatchProcessor.DispatchStats `json:"stats,omitempty"`
	Targets     []string                         `json:"targets,omitempty"`
}

type ContentProcessor struct {
	store      ContentStore
	news       NewsSource
	studio     *Studio
	dispatcher Dispatcher
	logger     *observability.Logger
}

func New(contentStore ContentStore, news NewsSource, studio *Studio, dispatcher Dispatcher, logger *observability.Logger) ContentProcessor {
	return ContentProcessor{
		store:      contentStore,
		news:       news,
		studio:     studio,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// AIComposeCampaign scans the news, drafts copy and an image, stores the campaign and,
// when autopost is set, dispatches it right away.
func (p *ContentProcessor) AIComposeCampaign(ctx context.Context, req AIComposeRequest) (AIComposeResult, error) {
	req, err := normalizeAIComposeRequest(req)
	if err != nil {
		p.logger.InfoWithError(ctx, "rejected ai compose request", err)
		return AIComposeResult{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "keywords", Value: req.Keywords},
		observability.Field{Key: "task_mode", Value: req.TaskMode},
	)

	// Targets are resolved first so an empty selection fails before any model call.
	var targets []store.SocialAccount
	if req.Autopost && len(req.AccountNames) > 0 {
		targets, err = p.store.ListActiveSocialAccountsBySelection(ctx, req.AccountNames, req.Platforms)
		if err != nil {
			p.logger.Error(ctx, "failed to select accounts", err)
			return AIComposeResult{}, fmt.Errorf("%w: %w", ErrComposeFailed, err)
		}
		if len(targets) == 0 {
			return AIComposeResult{}, ErrNoAccountMatch
		}
	}

	articles, err := p.news.Fetch(ctx, req.Keywords, req.Area, defaultNewsLimit)
	if err != nil {
		p.logger.InfoWithError(ctx, "news scan failed, composing without headlines", err)
		articles = []NewsArticle{}
	}

	post, err := p.studio.ComposePost(ctx, req.Keywords, req.Area, req.BusinessPerspective, articles)
	if err != nil {
		p.logger.InfoWithError(ctx, "model compose failed, using fallback copy", err)
		post = p.studio.FallbackCopy(req.Keywords, req.Area, req.BusinessPerspective, articles)
	}
	if post.Title == "" || post.Message == "" {
		fallback := p.studio.FallbackCopy(req.Keywords, req.Area, req.BusinessPerspective, articles)
		if post.Title == "" {
			post.Title = fallback.Title
		}
		if post.Message == "" {
			post.Message = fallback.Message
		}
	}

	imageURL, err := p.studio.GenerateImage(ctx, post.ImagePrompt)
	if err != nil {
		p.logger.InfoWithError(ctx, "image generation failed, continuing without image", err)
		imageURL = ""
	}

	status := store.CampaignStatusDraft
	if req.SendAt != nil {
		status = store.CampaignStatusScheduled
	}

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		Title:    truncateRunes(post.Title, maxTitleLength),
		Message:  post.Message,
		Status:   status,
		TaskMode: req.TaskMode,
		SendAt:   req.SendAt,
		ImageURL: imageURL,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create composed campaign", err)
		return AIComposeResult{}, fmt.Errorf("%w: %w", ErrComposeFailed, err)
	}

	result := AIComposeResult{
		Campaign:    campaign,
		Articles:    articles,
		ImagePrompt: post.ImagePrompt,
	}

	if !req.Autopost {
		p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaign.ID}), "composed campaign")
		return result, nil
	}

	dispatched, err := p.dispatcher.Dispatch(ctx, campaign, targets)
	if err != nil {
		return result, err
	}
	result.Stats = &dispatched.Stats
	result.Campaign.Status = dispatched.Campaign.Status
	for _, account := range targets {
		result.Targets = append(result.Targets, account.Label())
	}

	return result, nil
}

func normalizeAIComposeRequest(req AIComposeRequest) (AIComposeRequest, error) {
	req.Keywords = strings.TrimSpace(req.Keywords)
	req.Area = strings.TrimSpace(req.Area)
	req.BusinessPerspective = strings.TrimSpace(req.BusinessPerspective)
	req.TaskMode = strings.TrimSpace(req.TaskMode)
	req.AccountNames = compact(req.AccountNames)
	req.Platforms = compact(req.Platforms)

	if req.Keywords == "" {
		return req, fmt.Errorf("%w: keywords is required", ErrValidation)
	}
	if utf8.RuneCountInString(req.Keywords) > maxKeywordsLength {
		return req, fmt.Errorf("%w: keywords must be <= %d characters", ErrValidation, maxKeywordsLength)
	}
	if utf8.RuneCountInString(req.Area) > maxAreaLength {
		return req, fmt.Errorf("%w: area must be <= %d characters", ErrValidation, maxAreaLength)
	}
	if utf8.RuneCountInString(req.BusinessPerspective) > maxPerspectiveLength {
		return req, fmt.Errorf("%w: business_perspective must be <= %d characters", ErrValidation, maxPerspectiveLength)
	}

	switch req.TaskMode {
	case "":
		req.TaskMode = store.TaskModeManual
	case store.TaskModeManual, store.TaskModeAutomated:
	default:
		return req, fmt.Errorf("%w: task_mode must be manual or automated", ErrValidation)
	}

	if req.Autopost && req.SendAt != nil {
		return req, fmt.Errorf("%w: autopost cannot be combined with send_at", ErrValidation)
	}
	if (len(req.AccountNames) == 0) != (len(req.Platforms) == 0) {
		return req, fmt.Errorf("%w: account_names and platforms must be given together", ErrValidation)
	}

	return req, nil
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

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
