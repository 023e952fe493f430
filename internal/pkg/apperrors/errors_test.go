package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorUnwrap(t *testing.T) {
	err := NewResourceNotFoundError("Drive not found")
	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.Equal(t, "Drive not found", err.Error())

	wrapped := fmt.Errorf("handler: %w", err)
	assert.ErrorIs(t, wrapped, ErrResourceNotFound)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Profile is already frozen", Message(NewConflictError("Profile is already frozen"), "fallback"))
	assert.Equal(t, "fallback", Message(errors.New("raw"), "fallback"))
	assert.Equal(t, "fallback", Message(&CustomError{Err: ErrConflict}, "fallback"))
}
