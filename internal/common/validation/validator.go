package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func Validate(data interface{}) []ValidationError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var errors []ValidationError
	for _, err := range err.(validator.ValidationErrors) {
		errors = append(errors, ValidationError{
			Field:   err.Field(),
			Message: fmt.Sprintf("field must satisfy %s constraint", err.Tag()),
		})
	}
	return errors
}

// ValidateRange checks that a [min, max] pair is a well-formed inclusive
// range of non-negative numbers.
func ValidateRange(min, max float64) error {
	if min < 0 || max < 0 {
		return fmt.Errorf("range bounds must be non-negative")
	}
	if min > max {
		return fmt.Errorf("range min %g exceeds max %g", min, max)
	}
	return nil
}
