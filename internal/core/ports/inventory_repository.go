package ports

import (
	"context"

	"waterflow/internal/core/domain/model/inventory"
	"waterflow/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for stock items.
type InventoryRepository interface {
	// Add persists a new stock item.
	Add(ctx context.Context, aggregate *inventory.Item) error

	// Update persists changes to an existing stock item.
	Update(ctx context.Context, aggregate *inventory.Item) error

	// Get retrieves a stock item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error)

	// GetAllLowStock retrieves items at or under their threshold. The
	// predicate is computed in the query, never read from a stored flag.
	GetAllLowStock(ctx context.Context) ([]*inventory.Item, error)
}
