package ports

import (
	"context"

	"waterflow/internal/core/domain/model/delivery"
	"waterflow/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery records.
type DeliveryRepository interface {
	// Add persists a new delivery record.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery record.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// GetByOrderID retrieves the delivery record for an order. Returns a
	// not-found error when the order has never been assigned.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)
}
