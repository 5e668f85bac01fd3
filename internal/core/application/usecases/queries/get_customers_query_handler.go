package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"waterflow/internal/core/domain/model/kernel"
)

// GetCustomersQueryHandler reads customer projections from the database.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer list queries.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle lists all customers, newest first.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]GetCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			name,
			email,
			phone,
			address,
			is_active,
			created_at
		FROM customers
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]GetCustomersQueryResponse, 0)
	for rows.Next() {
		var (
			resp   GetCustomersQueryResponse
			id     uuid.UUID
			userID *uuid.UUID
			email  *string
		)

		err = rows.Scan(
			&id,
			&userID,
			&resp.Name,
			&email,
			&resp.Phone,
			&resp.Address,
			&resp.IsActive,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.UserID, err = optionalUUID(userID)
		if err != nil {
			return nil, err
		}
		if email != nil {
			resp.Email = *email
		}

		customers = append(customers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
