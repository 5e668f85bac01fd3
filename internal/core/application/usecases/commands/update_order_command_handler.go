package commands

import (
	"context"
	"errors"

	"waterflow/internal/core/domain/model/order"
	"waterflow/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies partial updates to an order.
// Status changes go through the order's transition rules, so an illegal
// jump (pending straight to delivered, reviving a cancelled order) is
// rejected before anything is written.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUpdateUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for partial order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUpdateUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the updated order.
// The completion timestamp is only recorded when the caller supplies
// one; marking an order delivered without it leaves deliveredAt unset.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	updated, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if status := cmd.Status(); status != nil {
		if err = updated.ChangeStatus(*status); err != nil {
			return nil, err
		}
	}
	if at := cmd.DeliveredAt(); at != nil {
		if err = updated.MarkDeliveredAt(*at); err != nil {
			return nil, err
		}
	}
	if notes := cmd.Notes(); notes != nil {
		updated.UpdateNotes(*notes)
	}
	if preferred := cmd.PreferredDeliveryTime(); preferred != nil {
		updated.UpdatePreferredDeliveryTime(*preferred)
	}
	if amount := cmd.TotalAmount(); amount != nil {
		if err = updated.UpdateTotalAmount(*amount); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Update(ctx, updated); err != nil {
		return nil, err
	}

	if err = h.stampDeliveryRecord(ctx, uow, cmd); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}

// stampDeliveryRecord carries pickup and drop-off timestamps over to the
// delivery record. Orders without an assignment have no record; stamping
// one of them is a validation error rather than a silent drop.
func (h *UpdateOrderCommandHandler) stampDeliveryRecord(
	ctx context.Context,
	uow OrderUpdateUoW,
	cmd UpdateOrderCommand,
) error {
	if cmd.PickupTime() == nil && cmd.DeliveryTime() == nil {
		return nil
	}

	deliveryRepo := uow.DeliveryRepository()

	record, err := deliveryRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewValueIsInvalidErrorWithCause("pickupTime",
				errors.New("order has no delivery record"))
		}
		return err
	}

	if at := cmd.PickupTime(); at != nil {
		record.RecordPickup(*at)
	}
	if at := cmd.DeliveryTime(); at != nil {
		record.RecordDelivery(*at)
	}

	return deliveryRepo.Update(ctx, record)
}
