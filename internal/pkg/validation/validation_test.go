package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/collegesim/internal/pkg/apperrors"
)

type contact struct {
	Name  string `validate:"required"`
	Email string `validate:"required,student_email"`
	Phone string `validate:"required,phone"`
	Age   int    `validate:"gte=16,lte=28"`
}

func TestStructAcceptsValidValue(t *testing.T) {
	assert.NoError(t, Struct(contact{
		Name:  "Grace Dare",
		Email: "grace.dare@lasu.edu",
		Phone: "+234-081-555-1234",
		Age:   19,
	}))
}

func TestStructReportsEveryFailedField(t *testing.T) {
	err := Struct(contact{
		Email: "Grace Dare@lasu.edu",
		Phone: "0801-555",
		Age:   30,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	msg := err.Error()
	assert.Contains(t, msg, "contact.Name is required")
	assert.Contains(t, msg, "contact.Email must be a valid email address")
	assert.Contains(t, msg, "contact.Phone must be a valid phone number")
	assert.Contains(t, msg, "contact.Age must be at most 28")
}

func TestCompiledPatterns(t *testing.T) {
	assert.True(t, CompiledPatterns.Email.MatchString("chidera.arku@lasu.edu"))
	assert.False(t, CompiledPatterns.Email.MatchString("Chidera.Arku@lasu.edu"))
	assert.True(t, CompiledPatterns.Phone.MatchString("+234-090-100-9999"))
	assert.False(t, CompiledPatterns.Phone.MatchString("+234-90-100-9999"))
}
