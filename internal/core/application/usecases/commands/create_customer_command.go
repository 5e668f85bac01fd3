package commands

import (
	"errors"

	"waterflow/internal/core/domain/model/customer"
	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents an admin request to add a customer record.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	userID  *kernel.UUID
	name    string
	email   string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer record.
// userID is optional: admin-created customers may have no login account.
func NewCreateCustomerCommand(
	userID *kernel.UUID,
	name string,
	email string,
	phone string,
	address string,
) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setPhone(phone),
		cmd.setAddress(address),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	cmd.email = email
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// UserID returns the linked account identifier, if any.
func (c CreateCustomerCommand) UserID() *kernel.UUID {
	return c.userID
}

// Name returns the customer's display name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer's contact email.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer's contact phone.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the customer's default delivery address.
func (c CreateCustomerCommand) Address() string {
	return c.address
}

func (c *CreateCustomerCommand) setUserID(userID *kernel.UUID) error {
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return err
		}
	}

	c.userID = userID
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return customer.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setPhone(phone string) error {
	if phone == "" {
		return customer.ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *CreateCustomerCommand) setAddress(address string) error {
	if address == "" {
		return customer.ErrAddressIsRequired
	}

	c.address = address
	return nil
}
