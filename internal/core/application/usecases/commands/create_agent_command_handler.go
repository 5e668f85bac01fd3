package commands

import (
	"context"

	"waterflow/internal/core/domain/model/agent"
	"waterflow/internal/core/domain/model/kernel"
)

// CreateAgentCommandHandler handles admin-side delivery agent creation.
type CreateAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewCreateAgentCommandHandler creates a handler for agent creation.
func NewCreateAgentCommandHandler(uowFactory AgentUoWFactory) CreateAgentCommandHandler {
	return CreateAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent creation command and returns the persisted agent.
func (h *CreateAgentCommandHandler) Handle(ctx context.Context, cmd CreateAgentCommand) (*agent.Agent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	created, err := agent.NewAgent(
		kernel.NewUUID(),
		cmd.UserID(),
		cmd.Name(),
		cmd.Phone(),
		cmd.VehicleInfo(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.AgentRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
