package commands

import (
	"context"

	"waterflow/internal/core/domain/model/inventory"
)

// UpdateStockCommandHandler handles stock level changes for inventory items.
// Stamps lastRestocked on the item; the low-stock flag is derived from
// the new level on every read, so no flag needs flipping here.
type UpdateStockCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewUpdateStockCommandHandler creates a handler for stock updates.
func NewUpdateStockCommandHandler(uowFactory InventoryUoWFactory) UpdateStockCommandHandler {
	return UpdateStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock update and returns the updated item.
func (h *UpdateStockCommandHandler) Handle(ctx context.Context, cmd UpdateStockCommand) (*inventory.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := uow.InventoryRepository().Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	if err = item.UpdateStock(cmd.NewStock()); err != nil {
		return nil, err
	}

	if err = uow.InventoryRepository().Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
