// Package validation turns validator.ValidationErrors into messages the
// frontend can show next to form fields.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldLabels maps struct field names to the labels used by the web forms.
var fieldLabels = map[string]string{
	// Auth
	"Name":     "Name",
	"Email":    "Email",
	"Password": "Password",

	// Onboarding profile
	"Handicap":            "Handicap",
	"Goals":               "Goals",
	"Equipment":           "Equipment",
	"PlayFrequency":       "Play frequency",
	"OnboardingStep":      "Onboarding step",
	"OnboardingCompleted": "Onboarding completed",

	// Testimonials
	"UserName":  "Name",
	"Rating":    "Rating",
	"Feedback":  "Feedback",
	"AvatarURL": "Avatar URL",
	"Role":      "Role",
}

// FormatErrors converts a validator error into one message per failing
// field. Non-validation errors come back as a single generic message.
func FormatErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid input"}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatFieldError(e))
	}
	return messages
}

// Summary joins the per-field messages into a single line for the error
// envelope.
func Summary(err error) string {
	return strings.Join(FormatErrors(err), "; ")
}

func formatFieldError(e validator.FieldError) string {
	label := fieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}
