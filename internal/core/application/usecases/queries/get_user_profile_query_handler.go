package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"waterflow/internal/core/domain/model/account"
	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/errs"
)

// GetUserProfileQueryHandler resolves an account row and its linked
// customer or agent profile. Shares the identity shape with login so
// the session bootstrap endpoint returns the same body.
type GetUserProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetUserProfileQueryHandler creates a handler for profile lookups.
func NewGetUserProfileQueryHandler(db *gorm.DB) GetUserProfileQueryHandler {
	return GetUserProfileQueryHandler{db: db}
}

// Handle loads the profile for the given user.
func (h GetUserProfileQueryHandler) Handle(
	ctx context.Context,
	query GetUserProfileQuery,
) (AuthenticateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateQueryResponse{}, err
	}

	tx := h.db.WithContext(ctx)

	var row struct {
		ID        uuid.UUID
		Email     string
		FirstName *string
		LastName  *string
		Role      string
	}
	err := tx.Raw(`
		SELECT id, email, first_name, last_name, role
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Scan(&row).Error
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}
	if row.ID == uuid.Nil {
		return AuthenticateQueryResponse{}, errs.NewObjectNotFoundError("userId", query.UserID())
	}

	resp := AuthenticateQueryResponse{Email: row.Email}
	resp.UserID, err = kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}
	resp.Role, err = account.RoleFromString(row.Role)
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}
	if row.FirstName != nil {
		resp.FirstName = *row.FirstName
	}
	if row.LastName != nil {
		resp.LastName = *row.LastName
	}

	auth := AuthenticateQueryHandler{db: h.db}
	resp.CustomerID, err = auth.linkedProfileID(tx, "customers", row.ID)
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}
	resp.AgentID, err = auth.linkedProfileID(tx, "delivery_agents", row.ID)
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}

	return resp, nil
}
