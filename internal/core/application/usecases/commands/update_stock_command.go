package commands

import (
	"errors"
	"fmt"

	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/errs"
	"waterflow/internal/pkg/guard"
)

var ErrUpdateStockCommandIsNotConstructed = errors.New(
	"UpdateStockCommand must be created via NewUpdateStockCommand constructor",
)

// UpdateStockCommand represents a restock or stock correction for an
// inventory item.
type UpdateStockCommand struct { //nolint:recvcheck //using for validation
	itemID   kernel.UUID
	newStock int

	guard guard.ConstructorGuard
}

// NewUpdateStockCommand creates a command to set an item's stock level.
// Rejects negative stock.
func NewUpdateStockCommand(itemID kernel.UUID, newStock int) (UpdateStockCommand, error) {
	cmd := UpdateStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setNewStock(newStock),
	); err != nil {
		return UpdateStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStockCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStockCommandIsNotConstructed)
}

// ItemID returns the inventory item being restocked.
func (c UpdateStockCommand) ItemID() kernel.UUID {
	return c.itemID
}

// NewStock returns the absolute stock level to record.
func (c UpdateStockCommand) NewStock() int {
	return c.newStock
}

func (c *UpdateStockCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateStockCommand) setNewStock(newStock int) error {
	if newStock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("currentStock",
			fmt.Errorf("%d is negative", newStock))
	}

	c.newStock = newStock
	return nil
}
