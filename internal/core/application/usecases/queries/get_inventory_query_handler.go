package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"waterflow/internal/core/domain/model/kernel"
)

// GetInventoryQueryHandler reads stock item projections from the database.
type GetInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryQueryHandler creates a handler for inventory queries.
func NewGetInventoryQueryHandler(db *gorm.DB) GetInventoryQueryHandler {
	return GetInventoryQueryHandler{db: db}
}

// Handle lists all stock items ordered by name.
func (h GetInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryQuery,
) ([]GetInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			item_name,
			current_stock,
			min_threshold,
			unit_price,
			last_restocked,
			created_at
		FROM inventory_items
		ORDER BY item_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetInventoryQueryResponse, 0)
	for rows.Next() {
		var (
			resp GetInventoryQueryResponse
			id   uuid.UUID
		)

		err = rows.Scan(
			&id,
			&resp.ItemName,
			&resp.CurrentStock,
			&resp.MinThreshold,
			&resp.UnitPrice,
			&resp.LastRestocked,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.IsLowStock = resp.CurrentStock <= resp.MinThreshold

		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
