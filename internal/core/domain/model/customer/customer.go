// Package customer models the customer records orders are placed for.
// Phone and address are mandatory; the optional user link exists only for
// self-registered customers with a login.
package customer

import (
	"errors"
	"time"

	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/errs"
	"waterflow/internal/pkg/guard"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was
	// not created through NewCustomer or RestoreCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")

	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a customer without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrAddressIsRequired is returned when attempting to create a customer without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// Customer is a delivery customer. Orders snapshot its name, phone, and
// address at creation time, so later edits here never rewrite order history.
type Customer struct {
	id        kernel.UUID
	userID    *kernel.UUID
	name      string
	email     string
	phone     string
	address   string
	isActive  bool
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewCustomer creates an active customer record. userID may be nil for
// admin-created customers without a login.
func NewCustomer(id kernel.UUID, userID *kernel.UUID, name, email, phone, address string) (*Customer, error) {
	c := &Customer{
		email:     email,
		isActive:  true,
		createdAt: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
		c.setName(name),
		c.setPhone(phone),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(
	id kernel.UUID,
	userID *kernel.UUID,
	name, email, phone, address string,
	isActive bool,
	createdAt time.Time,
) (*Customer, error) {
	c := &Customer{
		email:     email,
		isActive:  isActive,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
		c.setName(name),
		c.setPhone(phone),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer was constructed through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID { return c.id }

// UserID returns the linked user account id, or nil when the customer has no login.
func (c *Customer) UserID() *kernel.UUID { return c.userID }

// Name returns the customer name.
func (c *Customer) Name() string { return c.name }

// Email returns the contact email, possibly empty.
func (c *Customer) Email() string { return c.email }

// Phone returns the contact phone.
func (c *Customer) Phone() string { return c.phone }

// Address returns the default delivery address.
func (c *Customer) Address() string { return c.address }

// IsActive reports whether the customer is active.
func (c *Customer) IsActive() bool { return c.isActive }

// CreatedAt returns the creation timestamp.
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// Deactivate marks the customer inactive. Existing orders are unaffected.
func (c *Customer) Deactivate() {
	c.isActive = false
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setUserID(userID *kernel.UUID) error {
	if userID == nil {
		return nil
	}
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}
