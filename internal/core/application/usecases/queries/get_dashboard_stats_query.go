package queries

import (
	"errors"

	"waterflow/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery computes the admin dashboard headline numbers.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a dashboard stats query.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse carries the four dashboard numbers.
//
// TotalLitresDelivered counts delivered orders created in the current
// calendar month, not orders delivered in it. The admin dashboard has
// always read this way and its consumers depend on it.
type GetDashboardStatsQueryResponse struct {
	TodayOrders          int
	ActiveCustomers      int
	TotalLitresDelivered int
	DeliverySuccessRate  float64
}
