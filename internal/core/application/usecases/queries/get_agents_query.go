package queries

import (
	"errors"
	"time"

	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/guard"
)

var ErrGetAgentsQueryIsNotConstructed = errors.New(
	"GetAgentsQuery must be created via NewGetAgentsQuery constructor",
)

// GetAgentsQuery retrieves all delivery agents.
type GetAgentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAgentsQuery creates an agent listing query.
func NewGetAgentsQuery() GetAgentsQuery {
	return GetAgentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentsQueryIsNotConstructed)
}

// GetAgentsQueryResponse is a flat projection of one agent row.
type GetAgentsQueryResponse struct {
	ID          kernel.UUID
	UserID      *kernel.UUID
	Name        string
	Phone       string
	VehicleInfo string
	IsActive    bool
	CreatedAt   time.Time
}
