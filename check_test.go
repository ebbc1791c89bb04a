package guardkit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardkit"
)

func TestCheck(t *testing.T) {
	t.Run("returns nil when the predicate reports no violation", func(t *testing.T) {
		err := guardkit.Check(func() bool { return false }, errors.New("boom"))
		assert.NoError(t, err)
	})

	t.Run("returns the descriptor unchanged on violation", func(t *testing.T) {
		boom := errors.New("boom")
		err := guardkit.Check(func() bool { return true }, boom)
		require.Error(t, err)
		assert.Equal(t, boom, err)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("evaluates the predicate exactly once per call", func(t *testing.T) {
		calls := 0
		err := guardkit.Check(func() bool { calls++; return false }, errors.New("boom"))
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("does not memoize the predicate across calls", func(t *testing.T) {
		calls := 0
		predicate := func() bool { calls++; return false }
		boom := errors.New("boom")

		require.NoError(t, guardkit.Check(predicate, boom))
		require.NoError(t, guardkit.Check(predicate, boom))
		assert.Equal(t, 2, calls)
	})

	t.Run("rejects a nil predicate", func(t *testing.T) {
		err := guardkit.Check(nil, errors.New("boom"))
		require.Error(t, err)
		assert.ErrorIs(t, err, guardkit.ErrInvalidCheck)
		assert.EqualError(t, err, "[predicate] cannot be nil.")
	})

	t.Run("rejects a nil descriptor without evaluating the predicate", func(t *testing.T) {
		calls := 0
		err := guardkit.Check(func() bool { calls++; return true }, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, guardkit.ErrInvalidCheck)
		assert.EqualError(t, err, "[err] cannot be nil.")
		assert.Zero(t, calls)
	})

	t.Run("names the offending parameter on misuse", func(t *testing.T) {
		var argErr guardkit.ArgumentError

		err := guardkit.Check(nil, errors.New("boom"))
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, "predicate", argErr.Name)

		err = guardkit.Check(func() bool { return false }, nil)
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, "err", argErr.Name)
	})
}
