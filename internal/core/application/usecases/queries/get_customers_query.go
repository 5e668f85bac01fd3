package queries

import (
	"errors"
	"time"

	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery retrieves all customer records, newest first.
type GetCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a customer listing query.
func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// GetCustomersQueryResponse is a flat projection of one customer row.
type GetCustomersQueryResponse struct {
	ID        kernel.UUID
	UserID    *kernel.UUID
	Name      string
	Email     string
	Phone     string
	Address   string
	IsActive  bool
	CreatedAt time.Time
}
