package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Application fields
	"CompanyName":     "Company name",
	"PositionTitle":   "Position title",
	"Status":          "Status",
	"Source":          "Source",
	"ApplicationDate": "Application date",
	"JobType":         "Job type",
	"WorkMode":        "Work mode",
	"Location":        "Location",
	"JobURL":          "Job URL",
	"Notes":           "Notes",
	"Salary":          "Salary range",

	// Interview fields
	"ApplicationID": "Application",
	"InterviewDate": "Interview date",
	"InterviewType": "Interview type",
	"RoundNumber":   "Round number",
	"Interviewer":   "Interviewer",
	"Feedback":      "Feedback",

	// Referral fields
	"ReferrerName":  "Referrer name",
	"ReferrerEmail": "Referrer email",
	"Relationship":  "Relationship",

	// Auth fields
	"Email":    "Email",
	"Password": "Password",

	// Preference fields
	"ViewMode": "View mode",
	"FontSize": "Font size",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))

	case "basic_email":
		return fmt.Sprintf("%s is not a valid email address", label)

	case "email":
		return fmt.Sprintf("%s is not a valid email address", label)

	case "url":
		return fmt.Sprintf("%s is not a valid URL", label)

	case "valid_phone":
		return fmt.Sprintf("%s is not a valid phone number (7-15 digits, with/without +)", label)

	case "iso_date":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", label)

	case "gtefield":
		return fmt.Sprintf("%s must be greater than or equal to %s", label, getFieldLabel(param))

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	// Return field name with spaces between camelCase words
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
