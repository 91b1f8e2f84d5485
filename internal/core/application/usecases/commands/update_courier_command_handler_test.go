package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func updateTestCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(1, courier.ClassFoot, []int{1, 2}, mustSchedule(t, "09:00-18:00"))
	require.NoError(t, err)
	return c
}

func assignedTestOrder(t *testing.T, id int64, region int) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, 1, region, mustSchedule(t, "10:00-12:00"))
	require.NoError(t, err)
	require.NoError(t, o.Assign(1, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)))
	return o
}

func TestUpdateCourierCommandHandler_Handle_RegionEditRevertsOrders(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateCourierCommand(1, nil, []int{99}, nil)
	require.NoError(t, err)

	testCourier := updateTestCourier(t)
	active := assignedTestOrder(t, 10, 2)

	completed := assignedTestOrder(t, 11, 2)
	require.NoError(t, completed.Complete(1, time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC)))

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		courierRepo.On("Get", ctx, int64(1)).Return(testCourier, nil).Once(),
		orderRepo.On("GetAllByCourier", ctx, int64(1)).Return([]*order.Order{active, completed}, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		courierRepo.On("Update", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCourierCommandHandler(factory, services.NewReconciler())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []int64{10}, result.UnassignedOrderIDs)
	assert.Equal(t, []int{99}, result.Courier.Regions())
	assert.False(t, active.IsAssigned())
	assert.True(t, completed.IsCompleted(), "completed orders are never reverted")

	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateCourierCommandHandler_Handle_ClassEditKeepsLightOrders(t *testing.T) {
	ctx := t.Context()
	class := courier.ClassBike
	cmd, err := commands.NewUpdateCourierCommand(1, &class, nil, nil)
	require.NoError(t, err)

	testCourier := updateTestCourier(t)
	light := assignedTestOrder(t, 10, 2) // 1 weight unit, fine for a bike

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		courierRepo.On("Get", ctx, int64(1)).Return(testCourier, nil).Once(),
		orderRepo.On("GetAllByCourier", ctx, int64(1)).Return([]*order.Order{light}, nil).Once(),
		courierRepo.On("Update", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCourierCommandHandler(factory, services.NewReconciler())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, result.UnassignedOrderIDs)
	assert.Equal(t, courier.ClassBike, result.Courier.Class())
	assert.True(t, light.IsAssigned())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateCourierCommandHandler_Handle_EmptyPatchIsNoOp(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateCourierCommand(1, nil, nil, nil)
	require.NoError(t, err)

	testCourier := updateTestCourier(t)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		courierRepo.On("Get", ctx, int64(1)).Return(testCourier, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCourierCommandHandler(factory, services.NewReconciler())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, result.UnassignedOrderIDs)
	orderRepo.AssertNotCalled(t, "GetAllByCourier", mock.Anything, mock.Anything)
	courierRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateCourierCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateCourierCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewUpdateCourierCommandHandler(factory, services.NewReconciler())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateCourierCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateCourierCommandHandler_Handle_CourierNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateCourierCommand(99, nil, []int{5}, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		courierRepo.On("Get", ctx, int64(99)).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCourierCommandHandler(factory, services.NewReconciler())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
