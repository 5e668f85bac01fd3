// Package inventoryrepo implements the repository pattern for stock
// items. The low-stock predicate lives in the domain and in queries;
// nothing here stores a flag.
package inventoryrepo

import (
	"time"

	"github.com/google/uuid"

	"waterflow/internal/core/domain/model/inventory"
	"waterflow/internal/core/domain/model/kernel"
)

// ItemDTO represents the database structure for persisting stock items.
type ItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemName      string    `gorm:"not null"`
	CurrentStock  int       `gorm:"not null"`
	MinThreshold  int       `gorm:"not null"`
	UnitPrice     *float64
	LastRestocked *time.Time
	CreatedAt     time.Time
}

// TableName specifies the database table name for stock items.
func (ItemDTO) TableName() string {
	return "inventory_items"
}

func fromDomain(aggregate *inventory.Item) ItemDTO {
	return ItemDTO{
		ID:            aggregate.ID().Bytes(),
		ItemName:      aggregate.ItemName(),
		CurrentStock:  aggregate.CurrentStock(),
		MinThreshold:  aggregate.MinThreshold(),
		UnitPrice:     aggregate.UnitPrice(),
		LastRestocked: aggregate.LastRestocked(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto ItemDTO) (*inventory.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return inventory.RestoreItem(
		id,
		dto.ItemName,
		dto.CurrentStock,
		dto.MinThreshold,
		dto.UnitPrice,
		dto.LastRestocked,
		dto.CreatedAt,
	)
}
