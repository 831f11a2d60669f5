package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "innkeeper/internal/domain/errors"
)

type signupForm struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestRequestValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{Name: "Alice", Email: "alice@example.com", Password: "secret123"})
	assert.NoError(t, err)
}

func TestRequestValidator_UsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{Name: "Alice", Email: "nope", Password: "secret123"})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Fields(), 1)
	assert.Equal(t, "email", validationErr.Fields()[0].Field)
	assert.Equal(t, "Please provide a valid email", validationErr.Fields()[0].Message)
}

func TestRequestValidator_Messages(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{Name: "Al", Email: "alice@example.com", Password: "123"})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	fields := validationErr.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "Name must be at least 3 characters long", fields[0].Message)
	assert.Equal(t, "Password must be at least 6 characters long", fields[1].Message)
}

func TestRequestValidator_RequiredMessages(t *testing.T) {
	v := New()

	err := v.Validate(&signupForm{})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	fields := validationErr.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "Name is required", fields[0].Message)
	assert.Equal(t, "Email is required", fields[1].Message)
	assert.Equal(t, "Password is required", fields[2].Message)
}
