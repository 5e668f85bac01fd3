// Package userrepo implements the repository pattern for login accounts.
package userrepo

import (
	"time"

	"github.com/google/uuid"

	"waterflow/internal/core/domain/model/account"
	"waterflow/internal/core/domain/model/kernel"
)

// UserDTO represents the database structure for persisting accounts.
// The unique index on email backs duplicate-registration rejection.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	FirstName    *string
	LastName     *string
	Role         string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for account entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *account.User) UserDTO {
	dto := UserDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		Role:         aggregate.Role().String(),
		PasswordHash: aggregate.PasswordHash(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}

	if first := aggregate.FirstName(); first != "" {
		dto.FirstName = &first
	}
	if last := aggregate.LastName(); last != "" {
		dto.LastName = &last
	}

	return dto
}

func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	var first, last string
	if dto.FirstName != nil {
		first = *dto.FirstName
	}
	if dto.LastName != nil {
		last = *dto.LastName
	}

	return account.RestoreUser(
		id,
		dto.Email,
		first,
		last,
		role,
		dto.PasswordHash,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
