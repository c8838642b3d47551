package openai

import (
	"context"
	"errors"
	"fmt"

	"social-manager/internal/observability"

	"github.com/openai/openai-go"
	openaiOption "github.com/openai/openai-go/option"
)

const (
	DefaultChatModel  = "gpt-4o-mini"
	DefaultImageModel = "gpt-image-1"
)

var (
	ErrMissingAPIKey = errors.New("openai api key is not configured")
	ErrEmptyResponse = errors.New("openai returned an empty response")
)

// Client talks to the OpenAI chat and image endpoints.
type Client struct {
	apiKey     string
	chatModel  string
	imageModel string
	options    []openaiOption.RequestOption
	logger     *observability.Logger
}

// NewClient builds a client. Extra request options are applied after the API key,
// which lets tests point the client at a local server.
func NewClient(apiKey, chatModel, imageModel string, logger *observability.Logger, opts ...openaiOption.RequestOption) *Client {
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	if imageModel == "" {
		imageModel = DefaultImageModel
	}
	return &Client{
		apiKey:     apiKey,
		chatModel:  chatModel,
		imageModel: imageModel,
		options:    opts,
		logger:     logger,
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

func (c *Client) newClient() openai.Client {
	options := []openaiOption.RequestOption{
		openaiOption.WithAPIKey(c.apiKey),
	}
	options = append(options, c.options...)
	return openai.NewClient(options...)
}

// Complete sends a system and user prompt and returns the first choice's content.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !c.Enabled() {
		return "", ErrMissingAPIKey
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "model", Value: c.chatModel})
	client := c.newClient()

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Model: openai.ChatModel(c.chatModel),
	})
	if err != nil {
		c.logger.Error(ctx, "failed to create chat completion", err)
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		c.logger.Warn(ctx, "chat completion returned no choices")
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}

// GenerateImage renders a 1024x1024 image and returns its URL.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if !c.Enabled() {
		return "", ErrMissingAPIKey
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "model", Value: c.imageModel})
	client := c.newClient()

	image, err := client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt: prompt,
		Size:   openai.ImageGenerateParamsSize1024x1024,
		Model:  openai.ImageModel(c.imageModel),
	})
	if err != nil {
		c.logger.Error(ctx, "failed to generate image", err)
		return "", fmt.Errorf("failed to generate image: %w", err)
	}
	if len(image.Data) == 0 {
		c.logger.Warn(ctx, "image generation returned no data")
		return "", ErrEmptyResponse
	}

	return image.Data[0].URL, nil
}
