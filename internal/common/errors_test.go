package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	t.Run("message includes the wrapped cause", func(t *testing.T) {
		cause := fmt.Errorf("%w: amount must be positive", ErrValidation)
		err := NewUserError("Invalid input", cause)

		require.Error(t, err)
		assert.Equal(t, "Invalid input: validation failed: amount must be positive", err.Error())
	})

	t.Run("message stands alone without a cause", func(t *testing.T) {
		err := &UserError{UserMessage: "Something went wrong"}
		assert.Equal(t, "Something went wrong", err.Error())
	})

	t.Run("unwrap exposes the cause to errors.Is", func(t *testing.T) {
		err := NewUserError("Could not access stored data", fmt.Errorf("%w: disk full", ErrPersistence))
		assert.True(t, errors.Is(err, ErrPersistence))

		var userErr *UserError
		require.True(t, errors.As(err, &userErr))
		assert.Equal(t, "Could not access stored data", userErr.UserMessage)
	})
}

func TestErrorClassification(t *testing.T) {
	t.Run("validation survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("add expense: %w", fmt.Errorf("%w: category is required", ErrValidation))
		assert.True(t, IsValidation(err))
		assert.False(t, IsPersistence(err))
	})

	t.Run("persistence survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("save: %w", ErrPersistence)
		assert.True(t, IsPersistence(err))
		assert.False(t, IsValidation(err))
	})

	t.Run("unrelated errors match neither", func(t *testing.T) {
		err := errors.New("network unreachable")
		assert.False(t, IsValidation(err))
		assert.False(t, IsPersistence(err))
	})
}
