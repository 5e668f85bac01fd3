package queries

import (
	"errors"
	"time"

	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/guard"
)

var ErrGetInventoryQueryIsNotConstructed = errors.New(
	"GetInventoryQuery must be created via NewGetInventoryQuery constructor",
)

// GetInventoryQuery retrieves all stock items with their derived
// low-stock flag.
type GetInventoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInventoryQuery creates an inventory listing query.
func NewGetInventoryQuery() GetInventoryQuery {
	return GetInventoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryQueryIsNotConstructed)
}

// GetInventoryQueryResponse is a flat projection of one stock item.
// IsLowStock is computed from the stock level on every read; it is
// never stored.
type GetInventoryQueryResponse struct {
	ID            kernel.UUID
	ItemName      string
	CurrentStock  int
	MinThreshold  int
	UnitPrice     *float64
	IsLowStock    bool
	LastRestocked *time.Time
	CreatedAt     time.Time
}
