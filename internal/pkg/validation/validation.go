// Package validation holds the shared struct validator and the custom rules
// registered on it.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yigit/collegesim/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	// EmailPattern matches the lowercase institutional addresses students are issued
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// PhonePattern matches +234-DDD-DDD-DDDD
	PhonePattern = `^\+234-\d{3}-\d{3}-\d{4}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Phone *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("student_email", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.Email.MatchString(fl.Field().String())
	})
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.Phone.MatchString(fl.Field().String())
	})
	return v
}

// Struct validates s against its `validate` tags. A failure is returned as an
// error wrapping apperrors.ErrValidationFailed that lists every failed field.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, formatValidationError(fe))
	}
	return apperrors.NewValidationError(strings.Join(messages, "; "))
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Namespace() + " is required"
	case "gte":
		return e.Namespace() + " must be at least " + e.Param()
	case "lte":
		return e.Namespace() + " must be at most " + e.Param()
	case "email", "student_email":
		return e.Namespace() + " must be a valid email address"
	case "phone":
		return e.Namespace() + " must be a valid phone number"
	case "oneof":
		return e.Namespace() + " must be one of: " + e.Param()
	default:
		return e.Namespace() + " validation failed: " + e.Tag()
	}
}
