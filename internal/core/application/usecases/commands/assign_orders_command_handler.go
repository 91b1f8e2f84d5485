package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/services"
)

// AssignOrdersResult describes the outcome of one assignment pass:
// which orders were handed to the courier and the shared batch timestamp.
type AssignOrdersResult struct {
	OrderIDs   []int64
	AssignedAt time.Time
}

// AssignOrdersCommandHandler runs the order assignment pass.
// Loads the courier and the unassigned pool, delegates the eligibility
// matching to the domain dispatcher, and persists every assigned order
// atomically.
type AssignOrdersCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.Dispatcher
}

// NewAssignOrdersCommandHandler creates a handler for the assignment pass.
func NewAssignOrdersCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.Dispatcher,
) AssignOrdersCommandHandler {
	return AssignOrdersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the assignment command.
// An empty pool is not an error: the result simply carries no order ids.
func (h AssignOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd AssignOrdersCommand,
) (AssignOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignOrdersResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignOrdersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	courierEntity, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return AssignOrdersResult{}, err
	}

	pool, err := orderRepo.GetAllUnassigned(ctx)
	if err != nil {
		return AssignOrdersResult{}, err
	}

	assigned, err := h.dispatcher.Dispatch(courierEntity, pool, cmd.At())
	if err != nil {
		return AssignOrdersResult{}, err
	}

	result := AssignOrdersResult{AssignedAt: cmd.At()}
	for _, orderEntity := range assigned {
		if err = orderRepo.Update(ctx, orderEntity); err != nil {
			return AssignOrdersResult{}, err
		}
		result.OrderIDs = append(result.OrderIDs, orderEntity.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignOrdersResult{}, err
	}

	return result, nil
}
