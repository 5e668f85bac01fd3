package order

import (
	"fmt"

	"waterflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a water order. It implements a
// state machine with defined transitions so orders follow the business
// workflow:
//
//	Pending ──> Assigned ──> InTransit ──> Delivered
//	   │            │            │
//	   └────────────┴────────────┴──────> Cancelled
//
// Assignment may repeat while the order is already Assigned (reassignment
// overwrites the previous agent). Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly submitted order,
	// waiting for an admin to assign a delivery agent.
	Pending

	// Assigned indicates a delivery agent has been assigned.
	// Orders can be reassigned while in this status.
	Assigned

	// InTransit indicates the agent has picked up the order and is
	// on the way to the delivery address.
	InTransit

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled or the delivery
	// failed. Terminal.
	Cancelled
)

// getStatusStrings returns the wire/storage representation of every status.
// The strings match the values the original schema stores in the orders table.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns only the statuses an order may legitimately hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses the storage representation of a status.
// Returns an error for strings that do not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the storage representation of the status, or "unknown"
// for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateAssign checks if the status allows agent assignment without
// performing the transition. Assignment is allowed from Pending (initial
// assignment) and from Assigned (reassignment overwrites the agent).
func (s Status) ValidateAssign() error {
	if s != Pending && s != Assigned {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to assign an agent", s.String()))
	}
	return nil
}

// Assign transitions the status to Assigned.
// Valid from Pending and Assigned only.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}
	return Assigned, nil
}

// StartTransit transitions the status to InTransit.
// Valid from Assigned only.
func (s Status) StartTransit() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to start transit", s.String()))
	}
	return InTransit, nil
}

// Deliver transitions the status to Delivered.
// Valid from InTransit only. Delivered is terminal.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()))
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
// Valid from any non-terminal status. Cancelled is terminal.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is a terminal status and cannot be cancelled", s.String()))
	}
	return Cancelled, nil
}

// TransitionTo validates and performs the transition from the current
// status to next. Used by generic partial updates where the target status
// arrives from the transport layer.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if s == next {
		return s, nil
	}

	switch next {
	case Assigned:
		return s.Assign()
	case InTransit:
		return s.StartTransit()
	case Delivered:
		return s.Deliver()
	case Cancelled:
		return s.Cancel()
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot transition from %s to %s", s.String(), next.String()))
	}
}

// ValidateCanHaveAgent validates consistency between a status and agent
// assignment: pending orders must not have an agent, assigned and in-transit
// orders must, delivered orders must, cancelled orders may or may not
// (cancellation keeps whatever agent was set).
func (s Status) ValidateCanHaveAgent(hasAgent bool) error {
	switch s {
	case Pending:
		if hasAgent {
			return errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("%s is not a valid status to have an agent", s.String()))
		}
	case Assigned, InTransit, Delivered:
		if !hasAgent {
			return errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("%s is not a valid status to have no agent", s.String()))
		}
	}
	return nil
}
