package order

import (
	"errors"
	"fmt"
	"time"

	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/errs"
	"waterflow/internal/pkg/guard"
)

// LitresPerBag is the fixed volume of a single water bag. An order's total
// litres is always quantity multiplied by this constant.
const LitresPerBag = 20

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrCustomerNameIsRequired is returned when the snapshot customer name is empty.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
	// ErrCustomerPhoneIsRequired is returned when the snapshot customer phone is empty.
	ErrCustomerPhoneIsRequired = errs.NewValueIsRequiredError("customerPhone")
	// ErrDeliveryAddressIsRequired is returned when the delivery address is empty.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("deliveryAddress")
)

// Order is the aggregate root of the water-delivery workflow. It tracks a
// single customer request from submission through assignment and transit to
// delivery or cancellation.
//
// Invariants:
//   - Valid unique identifier and order number
//   - Non-empty snapshot customer name, phone, and delivery address
//   - Quantity of at least one bag; total litres = quantity * LitresPerBag
//   - Status transitions follow the Status state machine
//   - Agent assignment is consistent with the status
//
// The customer name, phone, and address are snapshot fields: copied from
// the customer at creation time and never updated when the customer record
// later changes. The optional customerID links back to the live record.
type Order struct {
	id          kernel.UUID
	orderNumber OrderNumber

	// customerID links to the customer record; nil for walk-in orders
	// created by an admin without a registered customer.
	customerID *kernel.UUID

	// Snapshot fields, frozen at creation time.
	customerName    string
	customerPhone   string
	deliveryAddress string

	quantity    int
	totalLitres int

	status  Status
	agentID *kernel.UUID

	preferredDeliveryTime string
	notes                 string
	totalAmount           *float64

	deliveredAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a pending order with no agent assigned. The total litres
// are derived from the quantity, and createdAt/updatedAt are stamped with
// the current time.
func NewOrder(
	id kernel.UUID,
	number OrderNumber,
	customerID *kernel.UUID,
	customerName string,
	customerPhone string,
	deliveryAddress string,
	quantity int,
) (*Order, error) {
	now := time.Now()
	o := &Order{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(number),
		o.setCustomerID(customerID),
		o.setCustomerName(customerName),
		o.setCustomerPhone(customerPhone),
		o.setDeliveryAddress(deliveryAddress),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-deriving
// timestamps or litres. The status/agent consistency rule is re-checked so
// corrupted rows surface at load time.
func RestoreOrder(
	id kernel.UUID,
	number OrderNumber,
	customerID *kernel.UUID,
	customerName string,
	customerPhone string,
	deliveryAddress string,
	quantity int,
	totalLitres int,
	status Status,
	agentID *kernel.UUID,
	preferredDeliveryTime string,
	notes string,
	totalAmount *float64,
	deliveredAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		totalLitres:           totalLitres,
		preferredDeliveryTime: preferredDeliveryTime,
		notes:                 notes,
		totalAmount:           totalAmount,
		deliveredAt:           deliveredAt,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(number),
		o.setCustomerID(customerID),
		o.setCustomerName(customerName),
		o.setCustomerPhone(customerPhone),
		o.setDeliveryAddress(deliveryAddress),
		o.setQuantity(quantity),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return nil, err
		}
		o.agentID = agentID
	}

	if err := o.status.ValidateCanHaveAgent(o.agentID != nil); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the generated display number, e.g. "WO-2025-007".
func (o *Order) Number() OrderNumber {
	return o.orderNumber
}

// CustomerID returns the linked customer record id, or nil for walk-in orders.
func (o *Order) CustomerID() *kernel.UUID {
	return o.customerID
}

// CustomerName returns the snapshot customer name captured at creation time.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the snapshot customer phone captured at creation time.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// DeliveryAddress returns the snapshot delivery address captured at creation time.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Quantity returns the number of water bags ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// TotalLitres returns the derived volume, quantity * LitresPerBag.
func (o *Order) TotalLitres() int {
	return o.totalLitres
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Agent returns the assigned delivery agent id, or nil if unassigned.
func (o *Order) Agent() *kernel.UUID {
	return o.agentID
}

// PreferredDeliveryTime returns the customer's requested delivery window,
// empty when none was given.
func (o *Order) PreferredDeliveryTime() string {
	return o.preferredDeliveryTime
}

// Notes returns free-form order notes.
func (o *Order) Notes() string {
	return o.notes
}

// TotalAmount returns the billed amount, or nil when not priced.
func (o *Order) TotalAmount() *float64 {
	return o.totalAmount
}

// DeliveredAt returns the delivery timestamp, or nil while undelivered.
// The timestamp is only set when the caller supplies it via MarkDeliveredAt;
// a status change to Delivered alone does not set it.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Assign assigns the order to a delivery agent and moves it to Assigned.
// Assignment is permitted from Pending and Assigned; reassigning an already
// assigned order overwrites the previous agent. Assigning the same agent
// twice leaves the order in the identical final state.
func (o *Order) Assign(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.agentID = &agentID
	o.touch()
	return nil
}

// StartTransit moves an assigned order to InTransit.
func (o *Order) StartTransit() error {
	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Deliver moves an in-transit order to Delivered. The delivered timestamp
// is not stamped here; callers that know the delivery time record it with
// MarkDeliveredAt.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel moves a non-terminal order to Cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// ChangeStatus performs a generic status transition, used by partial
// updates where the target status arrives from the transport layer.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// MarkDeliveredAt records the delivery timestamp. Only valid once the
// order has reached Delivered.
func (o *Order) MarkDeliveredAt(at time.Time) error {
	if o.status != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("deliveredAt",
			fmt.Errorf("%s is not a valid status to record a delivery time", o.status.String()))
	}
	o.deliveredAt = &at
	o.touch()
	return nil
}

// UpdateNotes replaces the free-form notes.
func (o *Order) UpdateNotes(notes string) {
	o.notes = notes
	o.touch()
}

// UpdatePreferredDeliveryTime replaces the requested delivery window.
func (o *Order) UpdatePreferredDeliveryTime(window string) {
	o.preferredDeliveryTime = window
	o.touch()
}

// UpdateTotalAmount sets the billed amount.
func (o *Order) UpdateTotalAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%f is negative", amount))
	}
	o.totalAmount = &amount
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(number OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.orderNumber = number
	return nil
}

func (o *Order) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	o.customerName = name
	return nil
}

func (o *Order) setCustomerPhone(phone string) error {
	if phone == "" {
		return ErrCustomerPhoneIsRequired
	}
	o.customerPhone = phone
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	if o.totalLitres == 0 {
		o.totalLitres = quantity * LitresPerBag
	}
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
