package ports

import (
	"context"

	"waterflow/internal/core/domain/model/account"
	"waterflow/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user account.
	Add(ctx context.Context, aggregate *account.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByEmail retrieves a user by login email. Returns a not-found
	// error when the email is not registered.
	GetByEmail(ctx context.Context, email string) (*account.User, error)
}
