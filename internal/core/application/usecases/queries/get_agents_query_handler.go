package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"waterflow/internal/core/domain/model/kernel"
)

// GetAgentsQueryHandler reads delivery agent projections from the database.
type GetAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentsQueryHandler creates a handler for agent list queries.
func NewGetAgentsQueryHandler(db *gorm.DB) GetAgentsQueryHandler {
	return GetAgentsQueryHandler{db: db}
}

// Handle lists all delivery agents ordered by name.
func (h GetAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetAgentsQuery,
) ([]GetAgentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			name,
			phone,
			vehicle_info,
			is_active,
			created_at
		FROM delivery_agents
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agents := make([]GetAgentsQueryResponse, 0)
	for rows.Next() {
		var (
			resp        GetAgentsQueryResponse
			id          uuid.UUID
			userID      *uuid.UUID
			vehicleInfo *string
		)

		err = rows.Scan(
			&id,
			&userID,
			&resp.Name,
			&resp.Phone,
			&vehicleInfo,
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
		if vehicleInfo != nil {
			resp.VehicleInfo = *vehicleInfo
		}

		agents = append(agents, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}
