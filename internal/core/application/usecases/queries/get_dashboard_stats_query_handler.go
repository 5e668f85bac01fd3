package queries

import (
	"context"
	"math"
	"time"

	"gorm.io/gorm"

	"waterflow/internal/core/domain/model/order"
)

// GetDashboardStatsQueryHandler aggregates the dashboard numbers with
// raw SQL. Each number is one scalar query; a snapshot does not need a
// transaction.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard stats.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle computes the stats snapshot.
//
// Windows are anchored to the server's local clock: today is the local
// calendar day, the litres total covers the current calendar month, and
// the success rate covers the trailing seven days including today.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	now := time.Now()
	tx := h.db.WithContext(ctx)

	var resp GetDashboardStatsQueryResponse

	dayStart := startOfLocalDay(now)
	err := tx.Raw(`
		SELECT COUNT(*) FROM orders
		WHERE created_at >= ? AND created_at < ?
	`, dayStart, dayStart.AddDate(0, 0, 1)).Scan(&resp.TodayOrders).Error
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	err = tx.Raw(`
		SELECT COUNT(*) FROM customers WHERE is_active
	`).Scan(&resp.ActiveCustomers).Error
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	err = tx.Raw(`
		SELECT COALESCE(SUM(total_litres), 0) FROM orders
		WHERE status = ? AND created_at >= ? AND created_at < ?
	`, order.Delivered.String(), monthStart, monthStart.AddDate(0, 1, 0)).
		Scan(&resp.TotalLitresDelivered).Error
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	var window struct {
		Total     int
		Delivered int
	}
	weekStart := dayStart.AddDate(0, 0, -6)
	err = tx.Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = ?) AS delivered
		FROM orders
		WHERE created_at >= ?
	`, order.Delivered.String(), weekStart).Scan(&window).Error
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	if window.Total > 0 {
		rate := float64(window.Delivered) / float64(window.Total) * 100
		resp.DeliverySuccessRate = math.Round(rate*10) / 10
	}

	return resp, nil
}
