package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels used in user-facing messages.
var FieldLabels = map[string]string{
	"Name":        "Name",
	"Email":       "Email",
	"Company":     "Company name",
	"ProjectType": "Project type",
	"Budget":      "Budget",
	"Message":     "Message",
}

// FormatValidationErrors converts validator.ValidationErrors to the
// human-readable, field-ordered messages returned to the form client.
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "max":
		return fmt.Sprintf("%s must be less than %s characters", label, e.Param())

	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, e.Param())

	case "email":
		return "Please enter a valid email address"

	case "project_type":
		return "Please select a valid project type"

	case "budget_range":
		return "Please select a valid budget range"

	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
