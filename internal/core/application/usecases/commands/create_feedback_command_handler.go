package commands

import (
	"context"
	"errors"

	"waterflow/internal/core/domain/model/feedback"
	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/core/domain/model/order"
	"waterflow/internal/pkg/errs"
)

// CreateFeedbackCommandHandler handles feedback capture for completed orders.
// Feedback is only accepted from the customer the order belongs to, and
// only once the order has been delivered.
type CreateFeedbackCommandHandler struct {
	uowFactory FeedbackUoWFactory
}

// NewCreateFeedbackCommandHandler creates a handler for feedback capture.
func NewCreateFeedbackCommandHandler(uowFactory FeedbackUoWFactory) CreateFeedbackCommandHandler {
	return CreateFeedbackCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the feedback command and returns the persisted feedback.
func (h *CreateFeedbackCommandHandler) Handle(
	ctx context.Context,
	cmd CreateFeedbackCommand,
) (*feedback.Feedback, error) {
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

	rated, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if rated.Status() != order.Delivered {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderId",
			errors.New("order has not been delivered"))
	}
	if rated.CustomerID() == nil || !rated.CustomerID().IsEqual(cmd.CustomerID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("customerId",
			errors.New("order belongs to a different customer"))
	}

	created, err := feedback.NewFeedback(
		kernel.NewUUID(),
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.Rating(),
		cmd.Comment(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.FeedbackRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
