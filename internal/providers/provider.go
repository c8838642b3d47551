// Package providers delivers campaign content to social platforms.
//
// Dispatch talks to a Provider, which never fails: every adapter error, timeout and panic is
// folded into an unsuccessful Outcome. Platform integrations implement Adapter and are mounted on
// a Registry.
package providers

import (
	"context"
	"fmt"

	"social-manager/internal/store"
)

const previewLength = 100

// Outcome is the result of delivering one message to one account.
type Outcome struct {
	Success           bool
	ProviderMessageID string
	ResponsePayload   store.JSONB
	ErrorMessage      string
}

// Failure builds an unsuccessful outcome with an empty payload.
func Failure(message string) Outcome {
	return Outcome{Success: false, ResponsePayload: store.JSONB{}, ErrorMessage: message}
}

// Provider is what the dispatcher calls, once per target account.
type Provider interface {
	Send(ctx context.Context, message string, account store.SocialAccount, imageURL string) Outcome
}

// Adapter publishes to a single platform. Errors are turned into failed outcomes by the Registry.
type Adapter interface {
	Publish(ctx context.Context, message string, account store.SocialAccount, imageURL string) (Outcome, error)
}

// StubAdapter pretends every post succeeded. It performs no I/O.
type StubAdapter struct{}

func (StubAdapter) Publish(_ context.Context, message string, account store.SocialAccount, imageURL string) (Outcome, error) {
	return Outcome{
		Success:           true,
		ProviderMessageID: fmt.Sprintf("%s-%d", account.Platform, account.ID),
		ResponsePayload: store.JSONB{
			"platform":  account.Platform,
			"handle":    account.Handle,
			"preview":   Preview(message),
			"image_url": imageURL,
		},
	}, nil
}

// Preview returns the first 100 characters of message.
func Preview(message string) string {
	runes := []rune(message)
	if len(runes) <= previewLength {
		return message
	}
	return string(runes[:previewLength])
}
