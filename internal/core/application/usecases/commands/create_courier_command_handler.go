package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
)

// CreateCourierCommandHandler handles courier registration.
// Creates and persists a new courier aggregate within a transaction.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewCreateCourierCommandHandler creates a handler for courier registration.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier creation command.
// Automatically rolls back on any error to prevent partial data.
func (h CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
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

	courierEntity, err := courier.NewCourier(cmd.CourierID(), cmd.Class(), cmd.Regions(), cmd.WorkingHours())
	if err != nil {
		return err
	}

	if err = uow.CourierRepository().Add(ctx, courierEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
