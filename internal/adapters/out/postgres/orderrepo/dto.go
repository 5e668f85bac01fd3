// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the
// order aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The unique index on order_number is what makes concurrent
// number generation safe: the losing insert fails and retries.
type OrderDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber           string     `gorm:"uniqueIndex;not null"`
	CustomerID            *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName          string     `gorm:"not null"`
	CustomerPhone         string     `gorm:"not null"`
	DeliveryAddress       string     `gorm:"not null"`
	Quantity              int        `gorm:"not null"`
	TotalLitres           int        `gorm:"not null"`
	Status                string     `gorm:"index;not null"`
	AgentID               *uuid.UUID `gorm:"type:uuid;index"`
	PreferredDeliveryTime *string
	Notes                 *string
	TotalAmount           *float64
	DeliveredAt           *time.Time
	CreatedAt             time.Time `gorm:"index"`
	UpdatedAt             time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderNumber:     aggregate.Number().String(),
		CustomerName:    aggregate.CustomerName(),
		CustomerPhone:   aggregate.CustomerPhone(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Quantity:        aggregate.Quantity(),
		TotalLitres:     aggregate.TotalLitres(),
		Status:          aggregate.Status().String(),
		TotalAmount:     aggregate.TotalAmount(),
		DeliveredAt:     aggregate.DeliveredAt(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}

	if id := aggregate.CustomerID(); id != nil {
		raw := id.Bytes()
		dto.CustomerID = &raw
	}
	if id := aggregate.Agent(); id != nil {
		raw := id.Bytes()
		dto.AgentID = &raw
	}
	if preferred := aggregate.PreferredDeliveryTime(); preferred != "" {
		dto.PreferredDeliveryTime = &preferred
	}
	if notes := aggregate.Notes(); notes != "" {
		dto.Notes = &notes
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	customerID, err := optionalUUID(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	agentID, err := optionalUUID(dto.AgentID)
	if err != nil {
		return nil, err
	}

	var preferred, notes string
	if dto.PreferredDeliveryTime != nil {
		preferred = *dto.PreferredDeliveryTime
	}
	if dto.Notes != nil {
		notes = *dto.Notes
	}

	return order.RestoreOrder(
		id,
		number,
		customerID,
		dto.CustomerName,
		dto.CustomerPhone,
		dto.DeliveryAddress,
		dto.Quantity,
		dto.TotalLitres,
		status,
		agentID,
		preferred,
		notes,
		dto.TotalAmount,
		dto.DeliveredAt,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
