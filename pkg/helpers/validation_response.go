package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorResponse represents the validation error response format
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// FormatValidationError formats a validator.FieldError into an error message
func FormatValidationError(fe validator.FieldError) string {
	fieldName := getFieldName(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", fieldName)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address", fieldName)
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters", fieldName, fe.Param())
	case "max":
		return fmt.Sprintf("The %s field must not exceed %s characters", fieldName, fe.Param())
	case "gt":
		return fmt.Sprintf("The %s field must be greater than %s", fieldName, fe.Param())
	case "gte":
		return fmt.Sprintf("The %s field must be at least %s", fieldName, fe.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", fieldName, fe.Param())
	case "role":
		return fmt.Sprintf("The %s field must be either student or administration", fieldName)
	case "resource_name":
		return fmt.Sprintf("The %s field must be a valid name", fieldName)
	case "future":
		return fmt.Sprintf("The %s field must be a date in the future", fieldName)
	case "uuid4":
		return fmt.Sprintf("The %s field must be a valid UUID", fieldName)
	default:
		return fmt.Sprintf("The %s field is invalid", fieldName)
	}
}

// getFieldName extracts a human-readable field name from the FieldError
func getFieldName(fe validator.FieldError) string {
	fieldName := strings.ToLower(fe.Field())
	fieldName = strings.ReplaceAll(fieldName, "_", " ")
	return fieldName
}

// WriteValidationErrorResponse writes a validation error response.
// The first field error becomes the top-level message.
func WriteValidationErrorResponse(w http.ResponseWriter, validationErrors validator.ValidationErrors) {
	errors := make(map[string]string)
	var firstMessage string

	for i, err := range validationErrors {
		errorMessage := FormatValidationError(err)
		errors[err.Field()] = errorMessage
		if i == 0 {
			firstMessage = errorMessage
		}
	}

	response := ValidationErrorResponse{
		Message: firstMessage,
		Errors:  errors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(response)
}

// WriteValidationErrorResponseFromString writes a validation error response
// from a single error message when no field-specific errors exist
func WriteValidationErrorResponseFromString(w http.ResponseWriter, message string) {
	if message == "" {
		message = "The request is invalid"
	}

	response := ValidationErrorResponse{
		Message: message,
		Errors:  make(map[string]string),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(response)
}
