package commands

import (
	"context"
)

// CompleteOrderCommandHandler handles delivery completion reports.
// The aggregate itself rejects completion by the wrong courier and
// repeated completion, so the handler only orchestrates the transaction.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for completion reports.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderEntity, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderEntity.Complete(cmd.CourierID(), cmd.At()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, orderEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
