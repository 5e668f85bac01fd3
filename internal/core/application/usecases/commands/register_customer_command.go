package commands

import (
	"errors"

	"waterflow/internal/core/domain/model/account"
	"waterflow/internal/core/domain/model/customer"
	"waterflow/internal/pkg/guard"
)

// minPasswordLength matches the weakest password the signup form accepts.
const minPasswordLength = 6

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
	ErrPasswordIsTooShort = errors.New("password must be at least 6 characters")
)

// RegisterCustomerCommand represents a self-service signup: it creates a
// login account with the customer role and the matching customer record.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	phone    string
	address  string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a signup command.
// Validates contact details and enforces the minimum password length.
func NewRegisterCustomerCommand(
	name string,
	email string,
	phone string,
	address string,
	password string,
) (RegisterCustomerCommand, error) {
	cmd := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPhone(phone),
		cmd.setAddress(address),
		cmd.setPassword(password),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// Name returns the customer's display name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

// Email returns the login email.
func (c RegisterCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer's contact phone.
func (c RegisterCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the customer's default delivery address.
func (c RegisterCustomerCommand) Address() string {
	return c.address
}

// Password returns the plaintext password; it is hashed by the handler
// and never persisted.
func (c RegisterCustomerCommand) Password() string {
	return c.password
}

func (c *RegisterCustomerCommand) setName(name string) error {
	if name == "" {
		return customer.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterCustomerCommand) setEmail(email string) error {
	if email == "" {
		return account.ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterCustomerCommand) setPhone(phone string) error {
	if phone == "" {
		return customer.ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *RegisterCustomerCommand) setAddress(address string) error {
	if address == "" {
		return customer.ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *RegisterCustomerCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordIsTooShort
	}

	c.password = password
	return nil
}
