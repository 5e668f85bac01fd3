package commands

import (
	"errors"

	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/core/domain/model/order"
	"waterflow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// CreateOrderCommand represents a request to place a new water delivery order.
// Carries the customer contact snapshot and the requested number of bags.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(nil, "Ayesha Khan", "+92-300-1234567", "12 Canal Road", 3)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID            *kernel.UUID
	customerName          string
	customerPhone         string
	deliveryAddress       string
	quantity              int
	preferredDeliveryTime string
	notes                 string
	totalAmount           *float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the contact snapshot is complete and quantity is positive.
// customerID is optional: walk-in orders carry only the snapshot.
func NewCreateOrderCommand(
	customerID *kernel.UUID,
	customerName string,
	customerPhone string,
	deliveryAddress string,
	quantity int,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setCustomerName(customerName),
		cmd.setCustomerPhone(customerPhone),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the linked customer identifier, if any.
func (c CreateOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// CustomerName returns the contact name captured on the order.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the contact phone captured on the order.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// DeliveryAddress returns the drop-off address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Quantity returns the requested number of bags.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// PreferredDeliveryTime returns the customer's free-form scheduling hint.
func (c CreateOrderCommand) PreferredDeliveryTime() string {
	return c.preferredDeliveryTime
}

// Notes returns free-form order notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// TotalAmount returns the billed amount, if one was quoted up front.
func (c CreateOrderCommand) TotalAmount() *float64 {
	return c.totalAmount
}

// WithPreferredDeliveryTime sets the optional scheduling hint.
func (c CreateOrderCommand) WithPreferredDeliveryTime(preferred string) CreateOrderCommand {
	c.preferredDeliveryTime = preferred
	return c
}

// WithNotes sets the optional free-form notes.
func (c CreateOrderCommand) WithNotes(notes string) CreateOrderCommand {
	c.notes = notes
	return c
}

// WithTotalAmount sets the optional billed amount.
func (c CreateOrderCommand) WithTotalAmount(amount *float64) CreateOrderCommand {
	c.totalAmount = amount
	return c
}

func (c *CreateOrderCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if name == "" {
		return order.ErrCustomerNameIsRequired
	}

	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setCustomerPhone(phone string) error {
	if phone == "" {
		return order.ErrCustomerPhoneIsRequired
	}

	c.customerPhone = phone
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return order.ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
