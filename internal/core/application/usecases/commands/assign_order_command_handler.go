package commands

import (
	"context"
	"errors"

	"waterflow/internal/core/domain/model/delivery"
	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/core/domain/model/order"
	"waterflow/internal/pkg/errs"
)

// AssignOrderCommandHandler handles agent assignment for pending orders.
// Moves the order to "assigned" status and keeps the delivery record in
// step: a first assignment creates the record, a reassignment points the
// existing record at the new agent and clears its timestamps.
type AssignOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignOrderCommandHandler creates a handler for order assignment.
func NewAssignOrderCommandHandler(uowFactory AssignmentUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command and returns the updated order.
// Assigning the same agent twice is a no-op. Assigning an order that is
// already in transit or finished fails with a status transition error.
func (h *AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) (*order.Order, error) {
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

	assigned, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	dispatched, err := uow.AgentRepository().Get(ctx, cmd.AgentID())
	if err != nil {
		return nil, err
	}
	if !dispatched.IsActive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("agentId",
			errors.New("agent is deactivated"))
	}

	if err = assigned.Assign(cmd.AgentID()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, assigned); err != nil {
		return nil, err
	}

	if err = h.syncDeliveryRecord(ctx, uow, assigned.ID(), cmd.AgentID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return assigned, nil
}

func (h *AssignOrderCommandHandler) syncDeliveryRecord(
	ctx context.Context,
	uow AssignmentUoW,
	orderID kernel.UUID,
	agentID kernel.UUID,
) error {
	deliveryRepo := uow.DeliveryRepository()

	record, err := deliveryRepo.GetByOrderID(ctx, orderID)
	switch {
	case err == nil:
		if record.AgentID().IsEqual(agentID) {
			return nil
		}
		if err = record.Reassign(agentID); err != nil {
			return err
		}
		return deliveryRepo.Update(ctx, record)
	case errors.Is(err, errs.ErrObjectNotFound):
		record, err = delivery.NewDelivery(kernel.NewUUID(), orderID, agentID)
		if err != nil {
			return err
		}
		return deliveryRepo.Add(ctx, record)
	default:
		return err
	}
}
