// Package inventory models stock items (bags, bottles, caps). Low stock is
// a derived predicate over current stock and threshold, never a stored
// flag, so every reader recomputes it.
package inventory

import (
	"errors"
	"fmt"
	"time"

	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/errs"
	"waterflow/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

	// ErrItemNameIsRequired is returned when attempting to create an item without a name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("itemName")
)

// Item is a stock line in the warehouse.
type Item struct {
	id            kernel.UUID
	itemName      string
	currentStock  int
	minThreshold  int
	unitPrice     *float64
	lastRestocked *time.Time
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewItem creates a stock item with the given starting stock and threshold.
func NewItem(id kernel.UUID, itemName string, currentStock, minThreshold int, unitPrice *float64) (*Item, error) {
	i := &Item{
		minThreshold: minThreshold,
		unitPrice:    unitPrice,
		createdAt:    time.Now(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		i.setID(id),
		i.setItemName(itemName),
		i.setCurrentStock(currentStock),
	); err != nil {
		return nil, err
	}

	return i, nil
}

// RestoreItem reconstructs a stock item from persistence.
func RestoreItem(
	id kernel.UUID,
	itemName string,
	currentStock, minThreshold int,
	unitPrice *float64,
	lastRestocked *time.Time,
	createdAt time.Time,
) (*Item, error) {
	i := &Item{
		minThreshold:  minThreshold,
		unitPrice:     unitPrice,
		lastRestocked: lastRestocked,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		i.setID(id),
		i.setItemName(itemName),
		i.setCurrentStock(currentStock),
	); err != nil {
		return nil, err
	}

	return i, nil
}

// Validate ensures the Item was constructed through a constructor.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// ItemName returns the stock line name.
func (i *Item) ItemName() string { return i.itemName }

// CurrentStock returns the current stock count.
func (i *Item) CurrentStock() int { return i.currentStock }

// MinThreshold returns the restock threshold.
func (i *Item) MinThreshold() int { return i.minThreshold }

// UnitPrice returns the unit price, or nil when unpriced.
func (i *Item) UnitPrice() *float64 { return i.unitPrice }

// LastRestocked returns the last stock-update timestamp, or nil when the
// item has never been restocked.
func (i *Item) LastRestocked() *time.Time { return i.lastRestocked }

// CreatedAt returns the creation timestamp.
func (i *Item) CreatedAt() time.Time { return i.createdAt }

// IsLowStock reports whether the item is at or under its threshold.
// The boundary is inclusive: currentStock == minThreshold is low.
func (i *Item) IsLowStock() bool {
	return i.currentStock <= i.minThreshold
}

// UpdateStock replaces the stock count and stamps lastRestocked.
// Negative stock is rejected.
func (i *Item) UpdateStock(newStock int) error {
	if newStock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("newStock",
			fmt.Errorf("%d is negative", newStock))
	}
	now := time.Now()
	i.currentStock = newStock
	i.lastRestocked = &now
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setItemName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	i.itemName = name
	return nil
}

func (i *Item) setCurrentStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("currentStock",
			fmt.Errorf("%d is negative", stock))
	}
	i.currentStock = stock
	return nil
}
