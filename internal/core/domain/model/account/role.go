package account

import (
	"fmt"

	"waterflow/internal/pkg/errs"
)

// Role is the access role attached to a user account. It is immutable
// after account creation; there is no role-change operation.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleDeliveryAgent Role = "delivery_agent"
	RoleCustomer      Role = "customer"
)

// RoleFromString parses the storage representation of a role.
func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleDeliveryAgent, RoleCustomer:
		return Role(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", s))
	}
}

// String returns the storage representation of the role.
func (r Role) String() string {
	return string(r)
}

// Validate rejects values outside the known role set.
func (r Role) Validate() error {
	_, err := RoleFromString(string(r))
	return err
}
