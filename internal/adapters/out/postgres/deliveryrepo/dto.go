// Package deliveryrepo implements the repository pattern for delivery
// records. One record exists per assigned order and carries the pickup
// and drop-off timestamps.
package deliveryrepo

import (
	"time"

	"github.com/google/uuid"

	"waterflow/internal/core/domain/model/delivery"
	"waterflow/internal/core/domain/model/kernel"
)

// DeliveryDTO represents the database structure for persisting delivery
// records. order_id is unique: an order never has more than one record,
// reassignment rewrites the existing row.
type DeliveryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	AgentID      uuid.UUID `gorm:"type:uuid;index;not null"`
	PickupTime   *time.Time
	DeliveryTime *time.Time
	Notes        *string
	CreatedAt    time.Time
}

// TableName specifies the database table name for delivery records.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		ID:           aggregate.ID().Bytes(),
		OrderID:      aggregate.OrderID().Bytes(),
		AgentID:      aggregate.AgentID().Bytes(),
		PickupTime:   aggregate.PickupTime(),
		DeliveryTime: aggregate.DeliveryTime(),
		CreatedAt:    aggregate.CreatedAt(),
	}

	if notes := aggregate.Notes(); notes != "" {
		dto.Notes = &notes
	}

	return dto
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}

	var notes string
	if dto.Notes != nil {
		notes = *dto.Notes
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		agentID,
		dto.PickupTime,
		dto.DeliveryTime,
		notes,
		dto.CreatedAt,
	)
}
