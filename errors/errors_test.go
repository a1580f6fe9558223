package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(ErrUnsorted)
		c.Add(ErrInvalidRange)

		assert.True(t, c.HasError())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Zero(t, c.Len())
	})
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("empty collection", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		require.NoError(t, c.GetError())
	})

	t.Run("single error is returned as is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		wrapped := fmt.Errorf("%w: row 3", ErrUnsorted)
		c.Add(wrapped)

		assert.Same(t, wrapped, c.GetError()) //nolint:testifylint
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(fmt.Errorf("%w: locale", ErrInvalidConfig))
		c.Add(fmt.Errorf("%w: foo", ErrUnknownStrategy))

		err := c.GetError()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.ErrorIs(t, err, ErrUnknownStrategy)
		assert.False(t, errors.Is(err, ErrUnsorted))
	})
}
