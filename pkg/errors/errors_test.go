package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingReferenceError(t *testing.T) {
	err := MissingReferenceError("mentor", "42")

	assert.ErrorIs(t, err, ErrMissingReference)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "mentor 42: missing reference", err.Error())
}

func TestNotFoundError(t *testing.T) {
	err := NotFoundError("mentor")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "mentor not found", err.Error())
}

func TestInvalidInputError(t *testing.T) {
	err := InvalidInputError("mentorId", "must be a UUID")

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "mentorId: must be a UUID: invalid input", err.Error())
}
