package commands

import (
	"errors"
	"time"

	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/core/domain/model/order"
	"waterflow/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update to an existing order.
// Only the fields set via the With* builders are applied; everything
// else on the order is left untouched.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID               kernel.UUID
	status                *order.Status
	notes                 *string
	preferredDeliveryTime *string
	totalAmount           *float64
	deliveredAt           *time.Time
	pickupTime            *time.Time
	deliveryTime          *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a partial update command for the given order.
func NewUpdateOrderCommand(orderID kernel.UUID) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order being updated.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested status, if any.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// Notes returns the new order notes, if any.
func (c UpdateOrderCommand) Notes() *string {
	return c.notes
}

// PreferredDeliveryTime returns the new scheduling hint, if any.
func (c UpdateOrderCommand) PreferredDeliveryTime() *string {
	return c.preferredDeliveryTime
}

// TotalAmount returns the new billed amount, if any.
func (c UpdateOrderCommand) TotalAmount() *float64 {
	return c.totalAmount
}

// DeliveredAt returns the completion timestamp to record, if any.
func (c UpdateOrderCommand) DeliveredAt() *time.Time {
	return c.deliveredAt
}

// PickupTime returns the pickup timestamp for the delivery record, if any.
func (c UpdateOrderCommand) PickupTime() *time.Time {
	return c.pickupTime
}

// DeliveryTime returns the drop-off timestamp for the delivery record, if any.
func (c UpdateOrderCommand) DeliveryTime() *time.Time {
	return c.deliveryTime
}

// WithStatus requests a transition to the given status.
func (c UpdateOrderCommand) WithStatus(status order.Status) UpdateOrderCommand {
	c.status = &status
	return c
}

// WithNotes replaces the order notes.
func (c UpdateOrderCommand) WithNotes(notes string) UpdateOrderCommand {
	c.notes = &notes
	return c
}

// WithPreferredDeliveryTime replaces the scheduling hint.
func (c UpdateOrderCommand) WithPreferredDeliveryTime(preferred string) UpdateOrderCommand {
	c.preferredDeliveryTime = &preferred
	return c
}

// WithTotalAmount replaces the billed amount.
func (c UpdateOrderCommand) WithTotalAmount(amount float64) UpdateOrderCommand {
	c.totalAmount = &amount
	return c
}

// WithDeliveredAt records when the order reached the customer.
func (c UpdateOrderCommand) WithDeliveredAt(at time.Time) UpdateOrderCommand {
	c.deliveredAt = &at
	return c
}

// WithPickupTime stamps the delivery record's pickup time.
func (c UpdateOrderCommand) WithPickupTime(at time.Time) UpdateOrderCommand {
	c.pickupTime = &at
	return c
}

// WithDeliveryTime stamps the delivery record's drop-off time.
func (c UpdateOrderCommand) WithDeliveryTime(at time.Time) UpdateOrderCommand {
	c.deliveryTime = &at
	return c
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
