package kernel_test

import (
	"testing"

	"eshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("creates customer actor", func(t *testing.T) {
		actor, err := kernel.NewActor(validID, kernel.RoleCustomer)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.True(t, actor.UserID().IsEqual(validID))
		assert.True(t, actor.IsCustomer())
		assert.False(t, actor.IsStaff())
	})

	t.Run("creates staff actor", func(t *testing.T) {
		actor, err := kernel.NewActor(validID, kernel.RoleStaff)

		require.NoError(t, err)
		assert.True(t, actor.IsStaff())
		assert.False(t, actor.IsCustomer())
	})

	t.Run("fails with invalid user ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := kernel.NewActor(invalidID, kernel.RoleStaff)

		require.Error(t, err)
	})

	t.Run("fails with unknown role", func(t *testing.T) {
		_, err := kernel.NewActor(validID, kernel.RoleUnknown)

		require.Error(t, err)
	})
}

func TestActor_Validate(t *testing.T) {
	t.Run("zero value actor is invalid", func(t *testing.T) {
		var actor kernel.Actor

		err := actor.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrActorIsNotConstructed, err)
	})
}

func TestRole(t *testing.T) {
	t.Run("string tokens", func(t *testing.T) {
		assert.Equal(t, "CUSTOMER", kernel.RoleCustomer.String())
		assert.Equal(t, "STAFF", kernel.RoleStaff.String())
		assert.Equal(t, "UNKNOWN", kernel.RoleUnknown.String())
		assert.Equal(t, "UNKNOWN", kernel.Role(42).String())
	})

	t.Run("round-trips through RoleFromString", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.RoleCustomer, kernel.RoleStaff} {
			parsed, err := kernel.RoleFromString(role.String())
			require.NoError(t, err)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("rejects unknown tokens", func(t *testing.T) {
		_, err := kernel.RoleFromString("ADMIN")
		require.Error(t, err)

		_, err = kernel.RoleFromString("UNKNOWN")
		require.Error(t, err)
	})

	t.Run("validate", func(t *testing.T) {
		require.NoError(t, kernel.RoleCustomer.Validate())
		require.NoError(t, kernel.RoleStaff.Validate())
		require.Error(t, kernel.RoleUnknown.Validate())
	})
}
