package apperror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldError is one entry in the details list of a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func fieldMessage(e validator.FieldError) string {
	name := formatFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", name)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, e.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", name, strings.ReplaceAll(e.Param(), "2006-01-02", "YYYY-MM-DD"))
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

// MapValidationError converts a binding failure into a 400 AppError with a
// field-level details list. Anything that is not validator.ValidationErrors
// (malformed JSON, wrong types) becomes a bare invalid-input error.
func MapValidationError(err error) *AppError {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := make([]FieldError, len(errs))
		for i, e := range errs {
			details[i] = FieldError{Field: e.Field(), Message: fieldMessage(e)}
		}
		return New(CodeValidation, "Validation failed", http.StatusBadRequest).WithDetails(details)
	}

	return Wrap(err, CodeValidation, "Invalid request body", http.StatusBadRequest)
}
