package commands

import (
	"context"
	"errors"
	"time"

	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/core/domain/model/order"
	"waterflow/internal/pkg/errs"
)

// maxOrderNumberAttempts bounds retries when two orders race for the
// same sequence number. The unique index on order_number rejects the
// loser, which recounts and tries again.
const maxOrderNumberAttempts = 3

// CreateOrderCommandHandler handles the business logic for placing orders.
// Generates a sequential WO-<year>-<seq> order number and persists the
// order in "pending" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(nil, "Ayesha Khan", "+92-300-1234567", "12 Canal Road", 3)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("Order %s placed", created.OrderNumber())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the persisted order.
// The order number sequence is derived from the current order count; a
// concurrent insert with the same number surfaces as a conflict and the
// whole transaction is retried with a fresh count.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		created, err := h.createOnce(ctx, cmd)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, errs.ErrConflict) {
			return nil, err
		}
		lastErr = err
	}

	return nil, errs.NewConflictErrorWithCause("orderNumber", lastErr)
}

func (h *CreateOrderCommandHandler) createOnce(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	count, err := orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	number, err := order.NewOrderNumber(time.Now().Year(), int(count)+1)
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		cmd.CustomerID(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.DeliveryAddress(),
		cmd.Quantity(),
	)
	if err != nil {
		return nil, err
	}

	if preferred := cmd.PreferredDeliveryTime(); preferred != "" {
		created.UpdatePreferredDeliveryTime(preferred)
	}
	if notes := cmd.Notes(); notes != "" {
		created.UpdateNotes(notes)
	}
	if amount := cmd.TotalAmount(); amount != nil {
		if err = created.UpdateTotalAmount(*amount); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
