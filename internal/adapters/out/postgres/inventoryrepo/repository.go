package inventoryrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"waterflow/internal/core/domain/model/inventory"
	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/errs"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new stock item to the database.
func (r *GormInventoryRepository) Add(ctx context.Context, aggregate *inventory.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing stock item to the database.
func (r *GormInventoryRepository) Update(ctx context.Context, aggregate *inventory.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a stock item by ID.
func (r *GormInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllLowStock retrieves items at or under their threshold.
func (r *GormInventoryRepository) GetAllLowStock(ctx context.Context) ([]*inventory.Item, error) {
	var dtos []ItemDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "current_stock <= min_threshold").Error
	if err != nil {
		return nil, err
	}

	items := make([]*inventory.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		items = append(items, item)
	}

	return items, nil
}
