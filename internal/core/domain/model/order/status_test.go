package order_test

import (
	"fmt"
	"testing"

	"waterflow/internal/core/domain/model/order"
	"waterflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Strings(t *testing.T) {
	t.Run("should use the storage representation", func(t *testing.T) {
		assert.Equal(t, "pending", order.Pending.String())
		assert.Equal(t, "assigned", order.Assigned.String())
		assert.Equal(t, "in_transit", order.InTransit.String())
		assert.Equal(t, "delivered", order.Delivered.String())
		assert.Equal(t, "cancelled", order.Cancelled.String())
		assert.Equal(t, "unknown", order.Unknown.String())
	})

	t.Run("should round trip through StatusFromString", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Assigned, order.InTransit, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate real statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Assigned, order.InTransit, order.Delivered, order.Cancelled,
		} {
			t.Run(fmt.Sprintf("should validate %s", s.String()), func(t *testing.T) {
				require.NoError(t, s.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("Assign", func(t *testing.T) {
		next, err := order.Pending.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.Assigned, next)

		next, err = order.Assigned.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.Assigned, next)

		_, err = order.InTransit.Assign()
		require.Error(t, err)
		_, err = order.Delivered.Assign()
		require.Error(t, err)
		_, err = order.Cancelled.Assign()
		require.Error(t, err)
	})

	t.Run("StartTransit", func(t *testing.T) {
		next, err := order.Assigned.StartTransit()
		require.NoError(t, err)
		assert.Equal(t, order.InTransit, next)

		_, err = order.Pending.StartTransit()
		require.Error(t, err)
	})

	t.Run("Deliver", func(t *testing.T) {
		next, err := order.InTransit.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)

		_, err = order.Assigned.Deliver()
		require.Error(t, err)
	})

	t.Run("Cancel", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Assigned, order.InTransit} {
			next, err := s.Cancel()
			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, next)
		}

		_, err := order.Delivered.Cancel()
		require.Error(t, err)
		_, err = order.Cancelled.Cancel()
		require.Error(t, err)
	})

	t.Run("TransitionTo is a no-op for the same status", func(t *testing.T) {
		next, err := order.InTransit.TransitionTo(order.InTransit)
		require.NoError(t, err)
		assert.Equal(t, order.InTransit, next)
	})

	t.Run("TransitionTo rejects jumps", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Delivered)
		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Assigned.IsTerminal())
	assert.False(t, order.InTransit.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_ValidateCanHaveAgent(t *testing.T) {
	t.Run("pending must have no agent", func(t *testing.T) {
		require.NoError(t, order.Pending.ValidateCanHaveAgent(false))
		require.Error(t, order.Pending.ValidateCanHaveAgent(true))
	})

	t.Run("assigned and beyond must have an agent", func(t *testing.T) {
		for _, s := range []order.Status{order.Assigned, order.InTransit, order.Delivered} {
			require.NoError(t, s.ValidateCanHaveAgent(true))
			require.Error(t, s.ValidateCanHaveAgent(false))
		}
	})

	t.Run("cancelled accepts both", func(t *testing.T) {
		require.NoError(t, order.Cancelled.ValidateCanHaveAgent(true))
		require.NoError(t, order.Cancelled.ValidateCanHaveAgent(false))
	})
}
