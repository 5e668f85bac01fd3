// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: validation, transaction
// management, and persistence.
package commands

import (
	"context"

	"waterflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// AgentRepoFactory provides access to the agent repository within a transaction.
	AgentRepoFactory interface {
		AgentRepository() ports.AgentRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// FeedbackRepoFactory provides access to the feedback repository within a transaction.
	FeedbackRepoFactory interface {
		FeedbackRepository() ports.FeedbackRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AssignmentUoW manages transactions for agent assignment, which
	// touches the order, the agent, and the delivery record.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		AgentRepoFactory
		DeliveryRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// OrderUpdateUoW manages transactions for partial order updates, which
	// may also stamp delivery record timestamps.
	OrderUpdateUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
	}

	// OrderUpdateUoWFactory creates new order update unit of work instances.
	OrderUpdateUoWFactory interface {
		Create() OrderUpdateUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// RegistrationUoW manages transactions for customer self-registration,
	// which creates the user account and the customer record atomically.
	RegistrationUoW interface {
		TxManager
		UserRepoFactory
		CustomerRepoFactory
	}

	// RegistrationUoWFactory creates new registration unit of work instances.
	RegistrationUoWFactory interface {
		Create() RegistrationUoW
	}

	// AgentUoW manages transactions for agent-only operations.
	AgentUoW interface {
		TxManager
		AgentRepoFactory
	}

	// AgentUoWFactory creates new agent unit of work instances.
	AgentUoWFactory interface {
		Create() AgentUoW
	}

	// InventoryUoW manages transactions for stock operations.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// FeedbackUoW manages transactions for feedback capture, which reads
	// the order to verify it was delivered.
	FeedbackUoW interface {
		TxManager
		OrderRepoFactory
		FeedbackRepoFactory
	}

	// FeedbackUoWFactory creates new feedback unit of work instances.
	FeedbackUoWFactory interface {
		Create() FeedbackUoW
	}
)
