package apierrors

import (
	"fmt"
	"net/http"
)

// Error codes returned to API clients
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeNotFound         = "NOT_FOUND"
	CodeCampaignNotFound = "CAMPAIGN_NOT_FOUND"
	CodeBusinessNotFound = "BUSINESS_NOT_FOUND"
	CodeNoAccountMatch   = "NO_ACCOUNT_MATCH"
	CodeAlreadyExists    = "ALREADY_EXISTS"
	CodeDispatchConflict = "DISPATCH_CONFLICT"
	CodeAIServiceError   = "AI_SERVICE_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
)

// APIError is an error with everything needed to render it to a client.
// Err carries the internal cause and is never serialized.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// ServiceUnavailable keeps the upstream failure for logging only
func ServiceUnavailable(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: err}
}

// InternalError returns a sanitized 500 - never exposes internal details
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}
