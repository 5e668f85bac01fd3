package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"waterflow/internal/core/application/usecases/commands"
	"waterflow/internal/core/domain/model/agent"
	"waterflow/internal/core/domain/model/delivery"
	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/core/domain/model/order"
	"waterflow/internal/pkg/errs"
)

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	number, err := order.NewOrderNumber(2026, 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), number, nil, "Ayesha Khan", "+92-300-1234567", "12 Canal Road", 2)
	require.NoError(t, err)
	return o
}

func newActiveAgent(t *testing.T) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(kernel.NewUUID(), nil, "Bilal Ahmed", "+92-321-7654321", "Suzuki pickup LEB-1234")
	require.NoError(t, err)
	return a
}

func TestAssignOrderCommandHandler_Handle_FirstAssignment(t *testing.T) {
	ctx := t.Context()
	pending := newPendingOrder(t)
	active := newActiveAgent(t)
	cmd, err := commands.NewAssignOrderCommand(pending.ID(), active.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	orderRepo.On("Update", mock.Anything, pending).Return(nil).Once()

	agentRepo := new(MockAgentRepository)
	agentRepo.On("Get", mock.Anything, active.ID()).Return(active, nil).Once()

	deliveryRepo := new(MockDeliveryRepository)
	deliveryRepo.On("GetByOrderID", mock.Anything, pending.ID()).
		Return(nil, errs.NewObjectNotFoundError("orderId", pending.ID())).Once()
	deliveryRepo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AgentRepository").Return(agentRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignOrderCommandHandler(factory)
	assigned, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Assigned, assigned.Status())
	require.NotNil(t, assigned.Agent())
	require.True(t, assigned.Agent().IsEqual(active.ID()))
	orderRepo.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_Reassignment(t *testing.T) {
	ctx := t.Context()
	pending := newPendingOrder(t)
	previous := newActiveAgent(t)
	require.NoError(t, pending.Assign(previous.ID()))

	replacement := newActiveAgent(t)
	cmd, err := commands.NewAssignOrderCommand(pending.ID(), replacement.ID())
	require.NoError(t, err)

	record, err := delivery.NewDelivery(kernel.NewUUID(), pending.ID(), previous.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	orderRepo.On("Update", mock.Anything, pending).Return(nil).Once()

	agentRepo := new(MockAgentRepository)
	agentRepo.On("Get", mock.Anything, replacement.ID()).Return(replacement, nil).Once()

	deliveryRepo := new(MockDeliveryRepository)
	deliveryRepo.On("GetByOrderID", mock.Anything, pending.ID()).Return(record, nil).Once()
	deliveryRepo.On("Update", mock.Anything, record).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AgentRepository").Return(agentRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignOrderCommandHandler(factory)
	assigned, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, assigned.Agent().IsEqual(replacement.ID()))
	require.True(t, record.AgentID().IsEqual(replacement.ID()))
	deliveryRepo.AssertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_SameAgentIsNoOp(t *testing.T) {
	ctx := t.Context()
	pending := newPendingOrder(t)
	active := newActiveAgent(t)
	require.NoError(t, pending.Assign(active.ID()))

	cmd, err := commands.NewAssignOrderCommand(pending.ID(), active.ID())
	require.NoError(t, err)

	record, err := delivery.NewDelivery(kernel.NewUUID(), pending.ID(), active.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	orderRepo.On("Update", mock.Anything, pending).Return(nil).Once()

	agentRepo := new(MockAgentRepository)
	agentRepo.On("Get", mock.Anything, active.ID()).Return(active, nil).Once()

	deliveryRepo := new(MockDeliveryRepository)
	deliveryRepo.On("GetByOrderID", mock.Anything, pending.ID()).Return(record, nil).Once()
	// no Update or Add expected

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AgentRepository").Return(agentRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	deliveryRepo.AssertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_DeactivatedAgent(t *testing.T) {
	ctx := t.Context()
	pending := newPendingOrder(t)
	inactive := newActiveAgent(t)
	inactive.Deactivate()

	cmd, err := commands.NewAssignOrderCommand(pending.ID(), inactive.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()

	agentRepo := new(MockAgentRepository)
	agentRepo.On("Get", mock.Anything, inactive.ID()).Return(inactive, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AgentRepository").Return(agentRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Equal(t, order.Pending, pending.Status())
}

func TestAssignOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	agentID := kernel.NewUUID()
	cmd, err := commands.NewAssignOrderCommand(orderID, agentID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
