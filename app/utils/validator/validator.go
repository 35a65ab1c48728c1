package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"identity-service/app/domain"
)

// Validator wraps the go-playground validator with custom rules
type Validator struct {
	validator *validator.Validate
}

// New creates a new validator instance with custom rules
func New() *Validator {
	validate := validator.New()

	registerCustomValidators(validate)

	// Use JSON field names for validation error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validator: validate,
	}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return NewValidationError(err.(validator.ValidationErrors))
	}
	return nil
}

// ValidateVar validates a single variable
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	return v.validator.Var(field, tag)
}

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._@-]+$`)

func registerCustomValidators(validate *validator.Validate) {
	// identifier: 64 lowercase hex chars, the service's opaque id format
	_ = validate.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return domain.ValidID(fl.Field().String())
	})

	// username: printable handle without whitespace or control chars
	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return len(value) >= 1 && len(value) <= 50 && usernamePattern.MatchString(value)
	})

	// totp: six decimal digits
	_ = validate.RegisterValidation("totp", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if len(value) != 6 {
			return false
		}
		for _, r := range value {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})
}

// ValidationError represents a validation error with user-friendly messages
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

// Error implements the error interface
func (e ValidationError) Error() string {
	var messages []string
	for field, message := range e.Errors {
		messages = append(messages, fmt.Sprintf("%s: %s", field, message))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
}

// NewValidationError creates a ValidationError from validator.ValidationErrors
func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	errors := make(map[string]string)

	for _, err := range errs {
		field := err.Field()
		tag := err.Tag()

		switch tag {
		case "required":
			errors[field] = fmt.Sprintf("%s is required", field)
		case "min":
			errors[field] = fmt.Sprintf("%s must be at least %s characters long", field, err.Param())
		case "max":
			errors[field] = fmt.Sprintf("%s must be at most %s characters long", field, err.Param())
		case "identifier":
			errors[field] = fmt.Sprintf("%s must be a 64 character hex identifier", field)
		case "username":
			errors[field] = fmt.Sprintf("%s contains invalid characters", field)
		case "totp":
			errors[field] = fmt.Sprintf("%s must be a 6 digit code", field)
		default:
			errors[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return &ValidationError{Errors: errors}
}
