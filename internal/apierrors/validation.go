package apierrors

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const invalidSendAtMessage = "send_at must be an RFC 3339 timestamp, for example 2026-11-01T09:00:00Z"

// fieldMessages overrides the generic wording for the fields users get wrong most often.
// Keys are "<json field>.<tag>"; list fields are keyed without their index.
var fieldMessages = map[string]string{
	"account_names.required": "Select at least one account",
	"account_names.min":      "Select at least one account",
	"account_names.max":      "account names must be <= 120 characters",
	"platforms.required":     "Select at least one platform",
	"platforms.min":          "Select at least one platform",
	"platforms.oneof":        "platforms must only contain: x, facebook, instagram, linkedin, tiktok",
	"task_mode.oneof":        "task_mode must be manual or automated",
	"keywords.required":      "keywords is required",
	"image_url.url":          "image_url must be an absolute http(s) URL",
	"contact_email.email":    "contact_email must be a valid email address",
}

// ValidationError builds a 400 APIError from validator field errors
func ValidationError(validationErrs validator.ValidationErrors) *APIError {
	return BadRequest(CodeInvalidInput, buildValidationMessage(validationErrs))
}

func buildValidationMessage(validationErrs validator.ValidationErrors) string {
	if len(validationErrs) == 0 {
		return "Invalid request"
	}

	// dive reports one error per bad element; the field only needs saying once
	seen := make(map[string]bool, len(validationErrs))
	var messages []string
	for _, fieldErr := range validationErrs {
		msg := getValidationMessage(fieldErr)
		if seen[msg] {
			continue
		}
		seen[msg] = true
		messages = append(messages, msg)
	}

	if len(messages) == 1 {
		return messages[0]
	}
	return "Validation failed: " + strings.Join(messages, "; ")
}

func getValidationMessage(fieldErr validator.FieldError) string {
	field := fieldName(fieldErr)
	tag := fieldErr.Tag()

	if msg, ok := fieldMessages[field+"."+tag]; ok {
		return msg
	}

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "max":
		return fmt.Sprintf("%s must be <= %s characters", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(fieldErr.Param()), ", "))
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, tag)
	}
}

// fieldName turns "platforms[2]" into "platforms".
func fieldName(fieldErr validator.FieldError) string {
	name := fieldErr.Field()
	if i := strings.IndexByte(name, '['); i > 0 {
		name = name[:i]
	}
	return name
}
