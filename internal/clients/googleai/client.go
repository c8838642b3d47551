package googleai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"social-manager/internal/observability"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-1.5-flash"

var (
	ErrMissingAPIKey = errors.New("google ai api key is not configured")
	ErrEmptyResponse = errors.New("gemini returned an empty response")
)

// Client generates text with Gemini. A fresh SDK client is opened per call.
type Client struct {
	apiKey  string
	model   string
	options []option.ClientOption
	logger  *observability.Logger
}

func NewClient(apiKey, model string, logger *observability.Logger, opts ...option.ClientOption) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		options: opts,
		logger:  logger,
	}
}

func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// Complete asks the model for a JSON answer to userPrompt under systemPrompt.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !c.Enabled() {
		return "", ErrMissingAPIKey
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "model", Value: c.model})

	options := append([]option.ClientOption{option.WithAPIKey(c.apiKey)}, c.options...)
	client, err := genai.NewClient(ctx, options...)
	if err != nil {
		c.logger.Error(ctx, "Failed to create client", err)
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(c.model)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		c.logger.Error(ctx, "Failed to generate content", err)
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	var out strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				out.WriteString(string(text))
			}
		}
		break
	}
	if out.Len() == 0 {
		c.logger.Warn(ctx, "gemini returned no text parts")
		return "", ErrEmptyResponse
	}

	return out.String(), nil
}
