package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/core/domain/model/order"
)

// GetOrdersQueryHandler reads order projections from the database.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query, _ := NewGetOrdersQueryForAgent(agentID)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
//	fmt.Printf("agent has %d orders\n", len(orders))
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query within its scope, newest orders first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseSelect = `
		SELECT
			id,
			order_number,
			customer_id,
			customer_name,
			customer_phone,
			delivery_address,
			quantity,
			total_litres,
			status,
			agent_id,
			preferred_delivery_time,
			notes,
			total_amount,
			delivered_at,
			created_at,
			updated_at
		FROM orders
	`

	tx := h.db.WithContext(ctx)

	var rowsQuery *gorm.DB
	switch query.scope {
	case ordersScopeCustomer:
		rowsQuery = tx.Raw(baseSelect+` WHERE customer_id = ? ORDER BY created_at DESC`,
			query.scopeID.Bytes())
	case ordersScopeAgent:
		rowsQuery = tx.Raw(baseSelect+` WHERE agent_id = ? ORDER BY created_at DESC`,
			query.scopeID.Bytes())
	case ordersScopeToday:
		dayStart := startOfLocalDay(time.Now())
		rowsQuery = tx.Raw(baseSelect+` WHERE created_at >= ? AND created_at < ? ORDER BY created_at DESC`,
			dayStart, dayStart.AddDate(0, 0, 1))
	default:
		rowsQuery = tx.Raw(baseSelect + ` ORDER BY created_at DESC`)
	}

	rows, err := rowsQuery.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp        GetOrdersQueryResponse
			id          uuid.UUID
			customerID  *uuid.UUID
			agentID     *uuid.UUID
			status      string
			preferred   *string
			notes       *string
			totalAmount *float64
		)

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&customerID,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&resp.DeliveryAddress,
			&resp.Quantity,
			&resp.TotalLitres,
			&status,
			&agentID,
			&preferred,
			&notes,
			&totalAmount,
			&resp.DeliveredAt,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.CustomerID, err = optionalUUID(customerID)
		if err != nil {
			return nil, err
		}
		resp.AgentID, err = optionalUUID(agentID)
		if err != nil {
			return nil, err
		}
		resp.Status, err = order.StatusFromString(status)
		if err != nil {
			return nil, err
		}
		if preferred != nil {
			resp.PreferredDeliveryTime = *preferred
		}
		if notes != nil {
			resp.Notes = *notes
		}
		resp.TotalAmount = totalAmount

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func optionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

// startOfLocalDay truncates a moment to local midnight. The dashboard
// and today's order list share this window.
func startOfLocalDay(at time.Time) time.Time {
	year, month, day := at.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, at.Location())
}
