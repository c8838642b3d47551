package apierrors

import (
	"errors"
	"strings"

	accountsProcessor "social-manager/internal/accounts/processor"
	campaignProcessor "social-manager/internal/campaign/processor"
	contentProcessor "social-manager/internal/content/processor"
	dispatchProcessor "social-manager/internal/dispatch/processor"
	"social-manager/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Account selection that matched nothing
	case errors.Is(err, campaignProcessor.ErrNoAccountMatch),
		errors.Is(err, contentProcessor.ErrNoAccountMatch):
		return BadRequest(CodeNoAccountMatch, validationMessage(err))

	// Request validation
	case errors.Is(err, campaignProcessor.ErrValidation),
		errors.Is(err, contentProcessor.ErrValidation),
		errors.Is(err, dispatchProcessor.ErrValidation),
		errors.Is(err, accountsProcessor.ErrValidation):
		return BadRequest(CodeInvalidInput, validationMessage(err))

	// Missing resources
	case errors.Is(err, campaignProcessor.ErrCampaignNotFound),
		errors.Is(err, dispatchProcessor.ErrCampaignNotFound):
		return NotFound(CodeCampaignNotFound, "Campaign not found")

	case errors.Is(err, accountsProcessor.ErrBusinessNotFound):
		return NotFound(CodeBusinessNotFound, "Business not found")

	// State conflicts
	case errors.Is(err, dispatchProcessor.ErrAlreadyDispatching):
		return Conflict(CodeDispatchConflict, "Campaign is already dispatching or has been dispatched")

	case errors.Is(err, accountsProcessor.ErrAlreadyExists),
		errors.Is(err, store.ErrAlreadyExists):
		return Conflict(CodeAlreadyExists, "Resource already exists")

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return mapExternalServiceError(err)
	}
}

// validationMessage drops the sentinel prefix so clients see only the field message.
func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}

// mapExternalServiceError attempts to identify external service errors
// and map them to appropriate service-specific error responses.
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	// AI service errors (OpenAI, Gemini)
	if strings.Contains(errMsg, "openai") || strings.Contains(errMsg, "gemini") || strings.Contains(errMsg, "ai service") {
		return ServiceUnavailable(
			CodeAIServiceError,
			"AI service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	// Default: Unknown error - return sanitized 500
	return InternalError(err)
}
