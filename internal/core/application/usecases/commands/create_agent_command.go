package commands

import (
	"errors"

	"waterflow/internal/core/domain/model/agent"
	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/guard"
)

var ErrCreateAgentCommandIsNotConstructed = errors.New(
	"CreateAgentCommand must be created via NewCreateAgentCommand constructor",
)

// CreateAgentCommand represents an admin request to add a delivery agent.
type CreateAgentCommand struct { //nolint:recvcheck //using for validation
	userID      *kernel.UUID
	name        string
	phone       string
	vehicleInfo string

	guard guard.ConstructorGuard
}

// NewCreateAgentCommand creates a command to register a delivery agent.
// userID is optional; vehicleInfo is free-form and may be empty.
func NewCreateAgentCommand(
	userID *kernel.UUID,
	name string,
	phone string,
	vehicleInfo string,
) (CreateAgentCommand, error) {
	cmd := CreateAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setPhone(phone),
	); err != nil {
		return CreateAgentCommand{}, err
	}

	cmd.vehicleInfo = vehicleInfo
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAgentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAgentCommandIsNotConstructed)
}

// UserID returns the linked account identifier, if any.
func (c CreateAgentCommand) UserID() *kernel.UUID {
	return c.userID
}

// Name returns the agent's display name.
func (c CreateAgentCommand) Name() string {
	return c.name
}

// Phone returns the agent's contact phone.
func (c CreateAgentCommand) Phone() string {
	return c.phone
}

// VehicleInfo returns the agent's vehicle description.
func (c CreateAgentCommand) VehicleInfo() string {
	return c.vehicleInfo
}

func (c *CreateAgentCommand) setUserID(userID *kernel.UUID) error {
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return err
		}
	}

	c.userID = userID
	return nil
}

func (c *CreateAgentCommand) setName(name string) error {
	if name == "" {
		return agent.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateAgentCommand) setPhone(phone string) error {
	if phone == "" {
		return agent.ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}
