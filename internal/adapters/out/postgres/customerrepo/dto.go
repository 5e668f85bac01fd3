// Package customerrepo implements the repository pattern for the
// customer aggregate.
package customerrepo

import (
	"time"

	"github.com/google/uuid"

	"waterflow/internal/core/domain/model/customer"
	"waterflow/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Name      string     `gorm:"not null"`
	Email     *string
	Phone     string `gorm:"not null"`
	Address   string `gorm:"not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	dto := CustomerDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Phone:     aggregate.Phone(),
		Address:   aggregate.Address(),
		IsActive:  aggregate.IsActive(),
		CreatedAt: aggregate.CreatedAt(),
	}

	if id := aggregate.UserID(); id != nil {
		raw := id.Bytes()
		dto.UserID = &raw
	}
	if email := aggregate.Email(); email != "" {
		dto.Email = &email
	}

	return dto
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		converted, userErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if userErr != nil {
			return nil, userErr
		}
		userID = &converted
	}

	var email string
	if dto.Email != nil {
		email = *dto.Email
	}

	return customer.RestoreCustomer(
		id,
		userID,
		dto.Name,
		email,
		dto.Phone,
		dto.Address,
		dto.IsActive,
		dto.CreatedAt,
	)
}
