package queries

import (
	"errors"

	"waterflow/internal/core/domain/model/account"
	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/guard"
)

var ErrAuthenticateQueryIsNotConstructed = errors.New(
	"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
)

// AuthenticateQuery checks a login email and password against the
// stored credentials.
type AuthenticateQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateQuery creates a credential check query. Both fields
// are required; emptiness is reported as bad credentials by the
// handler rather than leaking which field was missing.
func NewAuthenticateQuery(email, password string) (AuthenticateQuery, error) {
	if email == "" {
		return AuthenticateQuery{}, account.ErrEmailIsRequired
	}
	return AuthenticateQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

// Email returns the login email.
func (q AuthenticateQuery) Email() string {
	return q.email
}

// Password returns the plaintext password to verify.
func (q AuthenticateQuery) Password() string {
	return q.password
}

// AuthenticateQueryResponse is the authenticated identity. CustomerID
// and AgentID are set when a matching profile record is linked to the
// account.
type AuthenticateQueryResponse struct {
	UserID     kernel.UUID
	Email      string
	FirstName  string
	LastName   string
	Role       account.Role
	CustomerID *kernel.UUID
	AgentID    *kernel.UUID
}
