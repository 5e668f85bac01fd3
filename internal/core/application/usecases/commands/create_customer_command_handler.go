package commands

import (
	"context"

	"waterflow/internal/core/domain/model/customer"
	"waterflow/internal/core/domain/model/kernel"
)

// CreateCustomerCommandHandler handles admin-side customer creation.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer creation.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer creation command and returns the persisted customer.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
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

	created, err := customer.NewCustomer(
		kernel.NewUUID(),
		cmd.UserID(),
		cmd.Name(),
		cmd.Email(),
		cmd.Phone(),
		cmd.Address(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.CustomerRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
