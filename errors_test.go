package sqlight_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asmartbear/sqlight"
)

func TestDriverError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		underlying := errors.New("no such table: widget")
		err := sqlight.NewDriverError("SELECT * FROM widget", underlying)
		assert.Contains(t, err.Error(), "no such table: widget")
		assert.Contains(t, err.Error(), "SELECT * FROM widget")
	})

	t.Run("Unwrap", func(t *testing.T) {
		underlying := errors.New("disk I/O error")
		err := sqlight.NewDriverError("INSERT INTO widget VALUES (1)", underlying)
		assert.True(t, errors.Is(err, underlying))
	})
}

func TestConstraintError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		underlying := errors.New("UNIQUE constraint failed: user.login")
		err := &sqlight.ConstraintError{SQL: "INSERT INTO user VALUES (1)", Err: underlying}
		assert.Contains(t, err.Error(), "UNIQUE constraint failed")
	})

	t.Run("Unwrap", func(t *testing.T) {
		underlying := errors.New("NOT NULL constraint failed")
		err := &sqlight.ConstraintError{SQL: "INSERT INTO user VALUES (NULL)", Err: underlying}
		assert.True(t, errors.Is(err, underlying))
	})

	t.Run("IsConstraintError", func(t *testing.T) {
		err := &sqlight.ConstraintError{SQL: "x", Err: errors.New("check failed")}
		assert.True(t, sqlight.IsConstraintError(err))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, sqlight.IsConstraintError(wrapped))

		assert.False(t, sqlight.IsConstraintError(errors.New("other error")))
		assert.False(t, sqlight.IsConstraintError(nil))
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("ErrClosed", func(t *testing.T) {
		assert.Error(t, sqlight.ErrClosed)
		assert.Contains(t, sqlight.ErrClosed.Error(), "closed")
	})

	t.Run("ErrNotFound", func(t *testing.T) {
		assert.Error(t, sqlight.ErrNotFound)
		assert.Contains(t, sqlight.ErrNotFound.Error(), "no matching row")
	})
}
