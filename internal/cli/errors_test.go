package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Type: "dataset", ID: "level"}
	assert.Equal(t, "dataset level not found", err.Error())

	err = &NotFoundError{Type: "user", ID: "42"}
	assert.Equal(t, "user 42 not found", err.Error())
}

func TestValidationError(t *testing.T) {
	// With field
	err := &ValidationError{Field: "email", Message: "must be a valid email address"}
	assert.Equal(t, "invalid email: must be a valid email address", err.Error())

	// Without field
	err = &ValidationError{Message: "registration number is required"}
	assert.Equal(t, "registration number is required", err.Error())
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "", FormatError(nil))
	assert.Equal(t, "error: something went wrong", FormatError(errors.New("something went wrong")))
	assert.Equal(t, "error: dataset x not found", FormatError(&NotFoundError{Type: "dataset", ID: "x"}))
}
