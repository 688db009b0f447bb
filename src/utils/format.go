package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

type ValidationError struct {
	Errors []string `json:"errors"`
}

func createEmptyValidationErr() *ValidationError {
	return &ValidationError{
		Errors: []string{},
	}
}

func (self *ValidationError) Error() string {
	return strings.Join(self.Errors, " | ")
}

// ValidateJSON checks a struct against its `validate` tags.
// Returns nil if everything passed.
func ValidateJSON(obj interface{}) *ValidationError {
	result := createEmptyValidationErr()
	err := validate.Struct(obj)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldError := range validationErrors {
				errorMessage := fmt.Sprintf("Field '%s' failed validation, Condition: %s", fieldError.Field(), fieldError.Tag())
				result.Errors = append(result.Errors, errorMessage)
			}
		}
		if utilsLogger != nil {
			utilsLogger.Error("struct validation failed", "result", result)
		}
		return result
	}
	return nil
}
