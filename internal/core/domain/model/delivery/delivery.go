// Package delivery models the operational record of a delivery attempt.
// The order aggregate owns the lifecycle status; a delivery row only keeps
// the historical timestamps (pickup, drop-off) and agent notes for the
// assignment, so the two can never diverge on state.
package delivery

import (
	"errors"
	"time"

	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")

// Delivery records one agent's delivery attempt for an order.
type Delivery struct {
	id           kernel.UUID
	orderID      kernel.UUID
	agentID      kernel.UUID
	pickupTime   *time.Time
	deliveryTime *time.Time
	notes        string
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates the delivery record at assignment time, with no
// timestamps yet.
func NewDelivery(id, orderID, agentID kernel.UUID) (*Delivery, error) {
	d := &Delivery{
		createdAt: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setAgentID(agentID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a delivery record from persistence.
func RestoreDelivery(
	id, orderID, agentID kernel.UUID,
	pickupTime, deliveryTime *time.Time,
	notes string,
	createdAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		pickupTime:   pickupTime,
		deliveryTime: deliveryTime,
		notes:        notes,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setAgentID(agentID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery was constructed through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery record identifier.
func (d *Delivery) ID() kernel.UUID { return d.id }

// OrderID returns the order this attempt belongs to.
func (d *Delivery) OrderID() kernel.UUID { return d.orderID }

// AgentID returns the agent performing the attempt.
func (d *Delivery) AgentID() kernel.UUID { return d.agentID }

// PickupTime returns when the agent picked up the order, or nil.
func (d *Delivery) PickupTime() *time.Time { return d.pickupTime }

// DeliveryTime returns when the order was handed over, or nil.
func (d *Delivery) DeliveryTime() *time.Time { return d.deliveryTime }

// Notes returns free-form agent notes.
func (d *Delivery) Notes() string { return d.notes }

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time { return d.createdAt }

// Reassign points the record at a different agent and clears timestamps
// from the previous attempt.
func (d *Delivery) Reassign(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	d.agentID = agentID
	d.pickupTime = nil
	d.deliveryTime = nil
	return nil
}

// RecordPickup stamps the pickup time.
func (d *Delivery) RecordPickup(at time.Time) {
	d.pickupTime = &at
}

// RecordDelivery stamps the hand-over time.
func (d *Delivery) RecordDelivery(at time.Time) {
	d.deliveryTime = &at
}

// UpdateNotes replaces the agent notes.
func (d *Delivery) UpdateNotes(notes string) {
	d.notes = notes
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.orderID = id
	return nil
}

func (d *Delivery) setAgentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.agentID = id
	return nil
}
