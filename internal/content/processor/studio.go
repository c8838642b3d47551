package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"social-manager/internal/observability"
)

const composeSystemPrompt = "You are a social media strategist. Write concise, positive social content from a business perspective. " +
	"Return JSON with keys: title, message, image_prompt."

var ErrInvalidComposeResponse = errors.New("compose response is not valid JSON")

// ComposedPost is the copy produced for one campaign.
type ComposedPost struct {
	Title       string `json:"title"`
	Message     string `json:"message"`
	ImagePrompt string `json:"image_prompt"`
}

// Studio writes campaign copy with the first configured text model and falls back to
// template copy when none is configured.
type Studio struct {
	chat   TextGenerator
	gemini TextGenerator
	images ImageGenerator
	now    func() time.Time
	logger *observability.Logger
}

func NewStudio(chat TextGenerator, gemini TextGenerator, images ImageGenerator, logger *observability.Logger) *Studio {
	return &Studio{
		chat:   chat,
		gemini: gemini,
		images: images,
		now:    time.Now,
		logger: logger,
	}
}

func (s *Studio) textGenerator() (TextGenerator, string) {
	if s.chat != nil && s.chat.Enabled() {
		return s.chat, "openai"
	}
	if s.gemini != nil && s.gemini.Enabled() {
		return s.gemini, "gemini"
	}
	return nil, "fallback"
}

// ComposePost drafts a title, message and image prompt from the inputs and headlines.
func (s *Studio) ComposePost(ctx context.Context, keywords, area, perspective string, articles []NewsArticle) (ComposedPost, error) {
	generator, source := s.textGenerator()
	ctx = observability.WithFields(ctx, observability.Field{Key: "compose_source", Value: source})

	if generator == nil {
		s.logger.Info(ctx, "no text model configured, using fallback copy")
		return s.FallbackCopy(keywords, area, perspective, articles), nil
	}

	content, err := generator.Complete(ctx, composeSystemPrompt, composeUserPrompt(keywords, area, perspective, articles))
	if err != nil {
		s.logger.Error(ctx, "failed to compose post", err)
		return ComposedPost{}, fmt.Errorf("failed to compose post: %w", err)
	}

	var post ComposedPost
	if err := json.Unmarshal([]byte(content), &post); err != nil {
		s.logger.Error(ctx, "failed to parse composed post", err)
		return ComposedPost{}, fmt.Errorf("%w: %w", ErrInvalidComposeResponse, err)
	}

	return ComposedPost{
		Title:       strings.TrimSpace(post.Title),
		Message:     strings.TrimSpace(post.Message),
		ImagePrompt: strings.TrimSpace(post.ImagePrompt),
	}, nil
}

// GenerateImage returns an image URL, or "" when there is no prompt or no image model.
func (s *Studio) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if prompt == "" || s.images == nil || !s.images.Enabled() {
		return "", nil
	}
	return s.images.GenerateImage(ctx, prompt)
}

// FallbackCopy builds deterministic copy without any model.
func (s *Studio) FallbackCopy(keywords, area, perspective string, articles []NewsArticle) ComposedPost {
	lead := "Updates about " + keywords
	if len(articles) > 0 {
		lead = articles[0].Title
	}
	location := area
	if location == "" {
		location = "our market"
	}

	message := fmt.Sprintf("%s. We are monitoring %s in %s and helping customers act confidently. %s",
		lead, keywords, location, perspective)

	return ComposedPost{
		Title:   fmt.Sprintf("%s update for %s", titleCase(keywords), location),
		Message: strings.TrimSpace(message),
		ImagePrompt: fmt.Sprintf("Professional social graphic about %s in %s, business style, modern and optimistic, timestamp %s",
			keywords, location, s.now().UTC().Format(time.DateOnly)),
	}
}

func composeUserPrompt(keywords, area, perspective string, articles []NewsArticle) string {
	if area == "" {
		area = "General"
	}

	var headlines strings.Builder
	for _, article := range articles {
		headlines.WriteString("- " + article.Title + "\n")
	}
	if headlines.Len() == 0 {
		headlines.WriteString("- No headlines available\n")
	}

	return fmt.Sprintf("Keywords: %s\nArea: %s\nBusiness perspective: %s\nHeadlines:\n%s",
		keywords, area, perspective, strings.TrimSuffix(headlines.String(), "\n"))
}

// titleCase upper-cases the first letter of each word and lower-cases the rest.
func titleCase(s string) string {
	runes := []rune(s)
	startOfWord := true
	for i, r := range runes {
		if unicode.IsLetter(r) {
			if startOfWord {
				runes[i] = unicode.ToUpper(r)
			} else {
				runes[i] = unicode.ToLower(r)
			}
			startOfWord = false
		} else {
			startOfWord = true
		}
	}
	return string(runes)
}
