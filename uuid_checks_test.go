package guardkit_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardkit"
)

func TestNotNilUUID(t *testing.T) {
	t.Run("fails for the nil UUID", func(t *testing.T) {
		err := guardkit.NotNilUUID(uuid.Nil, "tenantID")
		require.Error(t, err)
		assert.ErrorIs(t, err, guardkit.ErrNilArgument)
		assert.EqualError(t, err, "[tenantID] cannot be a nil UUID.")
	})

	t.Run("fails for the zero value", func(t *testing.T) {
		var id uuid.UUID
		err := guardkit.NotNilUUID(id, "tenantID")
		assert.ErrorIs(t, err, guardkit.ErrNilArgument)
	})

	t.Run("passes for a generated UUID", func(t *testing.T) {
		assert.NoError(t, guardkit.NotNilUUID(uuid.New(), "tenantID"))
	})

	t.Run("substitutes the placeholder for a blank name", func(t *testing.T) {
		err := guardkit.NotNilUUID(uuid.Nil, "   ")
		assert.EqualError(t, err, "[parameter] cannot be a nil UUID.")
	})

	t.Run("records the parameter name on the descriptor", func(t *testing.T) {
		err := guardkit.NotNilUUID(uuid.Nil, "tenantID")
		var argErr guardkit.ArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, "tenantID", argErr.Name)
	})
}

func TestNotNilUUIDf(t *testing.T) {
	t.Run("uses the caller's message", func(t *testing.T) {
		err := guardkit.NotNilUUIDf(uuid.Nil, "tenantID", "tenant %q is not provisioned", "acme")
		require.Error(t, err)
		assert.ErrorIs(t, err, guardkit.ErrNilArgument)
		assert.EqualError(t, err, `tenant "acme" is not provisioned`)
	})

	t.Run("passes for a generated UUID", func(t *testing.T) {
		assert.NoError(t, guardkit.NotNilUUIDf(uuid.New(), "tenantID", "missing tenant"))
	})
}

func TestNotNilUUIDErr(t *testing.T) {
	errTenant := errors.New("tenant is required")

	t.Run("returns the caller's descriptor unchanged", func(t *testing.T) {
		err := guardkit.NotNilUUIDErr(uuid.Nil, errTenant)
		require.Error(t, err)
		assert.Equal(t, errTenant, err)
	})

	t.Run("returns nil for a generated UUID", func(t *testing.T) {
		assert.NoError(t, guardkit.NotNilUUIDErr(uuid.New(), errTenant))
	})

	t.Run("rejects a nil descriptor", func(t *testing.T) {
		err := guardkit.NotNilUUIDErr(uuid.Nil, nil)
		assert.ErrorIs(t, err, guardkit.ErrInvalidCheck)
	})
}
