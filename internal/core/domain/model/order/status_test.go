package order_test

import (
	"testing"

	"eshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	t.Run("valid statuses yield exact persisted tokens", func(t *testing.T) {
		assert.Equal(t, "RESERVED", order.Reserved.String())
		assert.Equal(t, "VALIDATED", order.Validated.String())
		assert.Equal(t, "CANCELED", order.Canceled.String())
		assert.Equal(t, "REJECTED", order.Rejected.String())
	})

	t.Run("invalid statuses yield UNKNOWN", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", order.Unknown.String())
		assert.Equal(t, "UNKNOWN", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("round-trips every valid status", func(t *testing.T) {
		for _, s := range []order.Status{order.Reserved, order.Validated, order.Canceled, order.Rejected} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown tokens", func(t *testing.T) {
		for _, token := range []string{"", "UNKNOWN", "reserved", "SHIPPED"} {
			_, err := order.StatusFromString(token)
			require.Error(t, err, "token %q must not parse", token)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Reserved, order.Validated, order.Canceled, order.Rejected} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("invalid statuses", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Reserved.IsTerminal())
	assert.True(t, order.Validated.IsTerminal())
	assert.True(t, order.Canceled.IsTerminal())
	assert.True(t, order.Rejected.IsTerminal())
	assert.False(t, order.Unknown.IsTerminal())
}

func TestStatus_ReleasesStock(t *testing.T) {
	assert.True(t, order.Canceled.ReleasesStock())
	assert.True(t, order.Rejected.ReleasesStock())
	assert.False(t, order.Validated.ReleasesStock(), "validation consumes stock, never releases it")
	assert.False(t, order.Reserved.ReleasesStock())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("reserved may move to any terminal status", func(t *testing.T) {
		assert.True(t, order.Reserved.CanTransitionTo(order.Validated))
		assert.True(t, order.Reserved.CanTransitionTo(order.Canceled))
		assert.True(t, order.Reserved.CanTransitionTo(order.Rejected))
	})

	t.Run("reserved may not stay reserved", func(t *testing.T) {
		assert.False(t, order.Reserved.CanTransitionTo(order.Reserved))
	})

	t.Run("terminal statuses accept no events", func(t *testing.T) {
		for _, from := range []order.Status{order.Validated, order.Canceled, order.Rejected} {
			for _, to := range []order.Status{order.Reserved, order.Validated, order.Canceled, order.Rejected} {
				assert.False(t, from.CanTransitionTo(to), "%s -> %s must be rejected", from, to)
			}
		}
	})
}
