package ports

import (
	"context"

	"waterflow/internal/core/domain/model/agent"
	"waterflow/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agents.
type AgentRepository interface {
	// Add persists a new delivery agent.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Update persists changes to an existing delivery agent.
	Update(ctx context.Context, aggregate *agent.Agent) error

	// Get retrieves a delivery agent by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)
}
