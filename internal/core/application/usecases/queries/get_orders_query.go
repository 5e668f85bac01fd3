// Package queries contains read-only operations in the CQRS split.
// Query handlers bypass the domain layer and read projections straight
// from the database.
package queries

import (
	"errors"
	"time"

	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/core/domain/model/order"
	"waterflow/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via a NewGetOrdersQuery constructor",
)

type ordersScope int

const (
	ordersScopeAll ordersScope = iota
	ordersScopeCustomer
	ordersScopeAgent
	ordersScopeToday
)

// GetOrdersQuery retrieves orders, newest first. The constructor picks
// the visibility scope: everything, one customer's orders, one agent's
// workload, or today's intake.
type GetOrdersQuery struct {
	scope   ordersScope
	scopeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query over all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{scope: ordersScopeAll, guard: guard.NewConstructorGuard()}
}

// NewGetOrdersQueryForCustomer creates a query over one customer's orders.
func NewGetOrdersQueryForCustomer(customerID kernel.UUID) (GetOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{
		scope:   ordersScopeCustomer,
		scopeID: customerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewGetOrdersQueryForAgent creates a query over one agent's assigned orders.
func NewGetOrdersQueryForAgent(agentID kernel.UUID) (GetOrdersQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{
		scope:   ordersScopeAgent,
		scopeID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewGetTodayOrdersQuery creates a query over orders created today,
// using the server's local calendar day.
func NewGetTodayOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{scope: ordersScopeToday, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse is a flat projection of one order row.
type GetOrdersQueryResponse struct {
	ID                    kernel.UUID
	OrderNumber           string
	CustomerID            *kernel.UUID
	CustomerName          string
	CustomerPhone         string
	DeliveryAddress       string
	Quantity              int
	TotalLitres           int
	Status                order.Status
	AgentID               *kernel.UUID
	PreferredDeliveryTime string
	Notes                 string
	TotalAmount           *float64
	DeliveredAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
