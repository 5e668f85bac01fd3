// Package account models the authenticated principals of the system: user
// records with an email, a display name, an immutable role, and a bcrypt
// password hash. Customers and delivery agents optionally link back to a
// user record; admin-created entities may have none.
package account

import (
	"errors"
	"time"

	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/errs"
	"waterflow/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

	// ErrEmailIsRequired is returned when attempting to create a user without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPasswordHashIsRequired is returned when attempting to create a user without credentials.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
)

// User is an authenticated principal. The role is fixed at creation.
type User struct {
	id           kernel.UUID
	email        string
	firstName    string
	lastName     string
	role         Role
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time

	guard guard.ConstructorGuard
}

// NewUser creates a user account. The password hash must already be
// computed by the caller; the domain never sees plaintext credentials.
func NewUser(id kernel.UUID, email, firstName, lastName string, role Role, passwordHash string) (*User, error) {
	now := time.Now()
	u := &User{
		firstName: firstName,
		lastName:  lastName,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setRole(role),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(
	id kernel.UUID,
	email, firstName, lastName string,
	role Role,
	passwordHash string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	u := &User{
		firstName: firstName,
		lastName:  lastName,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setRole(role),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was constructed through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Email returns the login email.
func (u *User) Email() string { return u.email }

// FirstName returns the user's first name.
func (u *User) FirstName() string { return u.firstName }

// LastName returns the user's last name.
func (u *User) LastName() string { return u.lastName }

// Role returns the immutable access role.
func (u *User) Role() Role { return u.role }

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the last-modification timestamp.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	u.passwordHash = hash
	return nil
}
