package queries

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"waterflow/internal/core/domain/model/account"
	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/errs"
)

// AuthenticateQueryHandler verifies login credentials and resolves the
// linked customer or agent profile. A wrong password and an unknown
// email both surface as the same unauthorized error.
type AuthenticateQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateQueryHandler creates a handler for credential checks.
func NewAuthenticateQueryHandler(db *gorm.DB) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{db: db}
}

// Handle verifies the password with bcrypt and builds the identity.
func (h AuthenticateQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateQuery,
) (AuthenticateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateQueryResponse{}, err
	}

	tx := h.db.WithContext(ctx)

	var row struct {
		ID           uuid.UUID
		Email        string
		FirstName    *string
		LastName     *string
		Role         string
		PasswordHash string
	}
	err := tx.Raw(`
		SELECT id, email, first_name, last_name, role, password_hash
		FROM users
		WHERE email = ?
	`, query.Email()).Scan(&row).Error
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}
	if row.ID == uuid.Nil {
		return AuthenticateQueryResponse{}, errs.NewUnauthorizedError("invalid email or password")
	}

	err = bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(query.Password()))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return AuthenticateQueryResponse{}, errs.NewUnauthorizedError("invalid email or password")
		}
		return AuthenticateQueryResponse{}, err
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

	resp.CustomerID, err = h.linkedProfileID(tx, "customers", row.ID)
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}
	resp.AgentID, err = h.linkedProfileID(tx, "delivery_agents", row.ID)
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}

	return resp, nil
}

func (h AuthenticateQueryHandler) linkedProfileID(
	tx *gorm.DB,
	table string,
	userID uuid.UUID,
) (*kernel.UUID, error) {
	var id uuid.UUID
	err := tx.Table(table).Select("id").Where("user_id = ?", userID).Limit(1).Scan(&id).Error
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, nil
	}
	return optionalUUID(&id)
}
