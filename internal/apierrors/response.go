package apierrors

import (
	"errors"
	"net/http"
	"time"

	"social-manager/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Package-level logger that uses context for observability
var logger = observability.NewLogger()

// ErrorResponse is the JSON structure returned to API clients for errors
type ErrorResponse struct {
	Error string `json:"error"`          // User-friendly error message
	Code  string `json:"code,omitempty"` // Machine-readable error code
}

// RespondWithError maps err, logs the response for correlation and writes a sanitized body.
// The processor has already logged the detailed cause.
//
//	if err != nil {
//	    apierrors.RespondWithError(c, err)
//	    return
//	}
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	ctx := c.Request.Context()
	apiErr := MapError(err)

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_code", Value: apiErr.Code},
		observability.Field{Key: "error_message", Value: apiErr.Message},
	)
	if apiErr.StatusCode >= http.StatusInternalServerError {
		logger.Error(ctx, "API error response", apiErr.Err)
	} else {
		logger.Info(ctx, "API error response")
	}

	c.JSON(apiErr.StatusCode, ErrorResponse{
		Error: apiErr.Message,
		Code:  apiErr.Code,
	})
}

// RespondWithValidationError handles Gin binding/validation errors.
//
//	var req SomeRequest
//	if err := c.ShouldBindJSON(&req); err != nil {
//	    apierrors.RespondWithValidationError(c, err)
//	    return
//	}
func RespondWithValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	ctx := c.Request.Context()

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		apiErr := ValidationError(validationErrs)
		logger.InfoWithError(ctx, "validation failed", err)

		c.JSON(apiErr.StatusCode, ErrorResponse{
			Error: apiErr.Message,
			Code:  apiErr.Code,
		})
		return
	}

	var parseErr *time.ParseError
	if errors.As(err, &parseErr) {
		logger.InfoWithError(ctx, "invalid timestamp in request", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: invalidSendAtMessage,
			Code:  CodeInvalidInput,
		})
		return
	}

	// Not a validation error - might be a JSON parsing error or other binding issue
	logger.InfoWithError(ctx, "request binding failed", err)
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: "Invalid request format. Please check your JSON syntax.",
		Code:  CodeInvalidInput,
	})
}
