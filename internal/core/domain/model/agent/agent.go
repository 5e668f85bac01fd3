// Package agent models delivery agents, the workers who fulfil assigned
// orders. Adapted from the courier aggregate of the dispatch domain: no
// grid position or storage capacity here, just identity, contact data, and
// an active flag.
package agent

import (
	"errors"
	"time"

	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/errs"
	"waterflow/internal/pkg/guard"
)

var (
	// ErrAgentIsNotConstructed is returned when an Agent instance was not
	// created through NewAgent or RestoreAgent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent or RestoreAgent constructor")

	// ErrNameIsRequired is returned when attempting to create an agent without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create an agent without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
)

// Agent is a delivery agent. vehicleInfo is free-form ("bike", plate
// number) and optional.
type Agent struct {
	id          kernel.UUID
	userID      *kernel.UUID
	name        string
	phone       string
	vehicleInfo string
	isActive    bool
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewAgent creates an active delivery agent. userID may be nil when the
// agent has no login yet.
func NewAgent(id kernel.UUID, userID *kernel.UUID, name, phone, vehicleInfo string) (*Agent, error) {
	a := &Agent{
		vehicleInfo: vehicleInfo,
		isActive:    true,
		createdAt:   time.Now(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setUserID(userID),
		a.setName(name),
		a.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAgent reconstructs an agent from persistence.
func RestoreAgent(
	id kernel.UUID,
	userID *kernel.UUID,
	name, phone, vehicleInfo string,
	isActive bool,
	createdAt time.Time,
) (*Agent, error) {
	a := &Agent{
		vehicleInfo: vehicleInfo,
		isActive:    isActive,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setUserID(userID),
		a.setName(name),
		a.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Agent was constructed through a constructor.
func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() kernel.UUID { return a.id }

// UserID returns the linked user account id, or nil when the agent has no login.
func (a *Agent) UserID() *kernel.UUID { return a.userID }

// Name returns the agent name.
func (a *Agent) Name() string { return a.name }

// Phone returns the agent's contact phone.
func (a *Agent) Phone() string { return a.phone }

// VehicleInfo returns the free-form vehicle description, possibly empty.
func (a *Agent) VehicleInfo() string { return a.vehicleInfo }

// IsActive reports whether the agent is available for assignment.
func (a *Agent) IsActive() bool { return a.isActive }

// CreatedAt returns the creation timestamp.
func (a *Agent) CreatedAt() time.Time { return a.createdAt }

// Deactivate marks the agent inactive. Already assigned orders keep their agent.
func (a *Agent) Deactivate() {
	a.isActive = false
}

func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agent) setUserID(userID *kernel.UUID) error {
	if userID == nil {
		return nil
	}
	if err := userID.Validate(); err != nil {
		return err
	}
	a.userID = userID
	return nil
}

func (a *Agent) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Agent) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	a.phone = phone
	return nil
}
