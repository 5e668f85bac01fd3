package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waterflow/internal/core/application/usecases/commands"
	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/core/domain/model/order"
)

func TestNewCreateOrderCommand(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(&customerID, "Ayesha Khan", "+92-300-1234567", "12 Canal Road", 3)
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, 3, cmd.Quantity())
		assert.Equal(t, &customerID, cmd.CustomerID())
	})

	t.Run("walk-in order without customer", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(nil, "Ayesha Khan", "+92-300-1234567", "12 Canal Road", 1)
		require.NoError(t, err)
		assert.Nil(t, cmd.CustomerID())
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(nil, "", "+92-300-1234567", "12 Canal Road", 1)
		assert.ErrorIs(t, err, order.ErrCustomerNameIsRequired)
	})

	t.Run("missing phone", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(nil, "Ayesha Khan", "", "12 Canal Road", 1)
		assert.ErrorIs(t, err, order.ErrCustomerPhoneIsRequired)
	})

	t.Run("missing address", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(nil, "Ayesha Khan", "+92-300-1234567", "", 1)
		assert.ErrorIs(t, err, order.ErrDeliveryAddressIsRequired)
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(nil, "Ayesha Khan", "+92-300-1234567", "12 Canal Road", 0)
		assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("optional fields", func(t *testing.T) {
		amount := 450.0
		cmd, err := commands.NewCreateOrderCommand(nil, "Ayesha Khan", "+92-300-1234567", "12 Canal Road", 2)
		require.NoError(t, err)
		cmd = cmd.WithPreferredDeliveryTime("morning").WithNotes("ring the bell").WithTotalAmount(&amount)
		assert.Equal(t, "morning", cmd.PreferredDeliveryTime())
		assert.Equal(t, "ring the bell", cmd.Notes())
		assert.Equal(t, &amount, cmd.TotalAmount())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
