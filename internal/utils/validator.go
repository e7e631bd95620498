// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dcoppard/gallery-backend/internal/artwork"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("dimensions", validateDimensions)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// dimensions must parse as "<number> x <number> [unit]". Empty values pass
// here; pair the tag with required when the field is mandatory.
func validateDimensions(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := artwork.ParseDimensions(value)
	return ok
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "dimensions":
		return e.Field() + " must look like \"24 x 36 inches\""
	default:
		return e.Field() + " is invalid"
	}
}
