package ports

import (
	"context"

	"waterflow/internal/core/domain/model/customer"
	"waterflow/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer records.
type CustomerRepository interface {
	// Add persists a new customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail retrieves a customer by contact email. Used by
	// self-registration to reject duplicate accounts. Returns a not-found
	// error when no customer carries the email.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)
}
