package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/services"
)

// UpdateCourierResult carries the edited profile and the ids of the orders
// that were returned to the unassigned pool by reconciliation.
type UpdateCourierResult struct {
	Courier            *courier.Courier
	UnassignedOrderIDs []int64
}

// UpdateCourierCommandHandler handles courier profile edits.
// Applies the patched fields to the aggregate, re-validates the courier's
// active orders through the domain reconciler, and persists the courier
// together with every reverted order in a single transaction.
type UpdateCourierCommandHandler struct {
	uowFactory UoWFactory
	reconciler services.Reconciler
}

// NewUpdateCourierCommandHandler creates a handler for profile edits.
func NewUpdateCourierCommandHandler(
	uowFactory UoWFactory,
	reconciler services.Reconciler,
) UpdateCourierCommandHandler {
	return UpdateCourierCommandHandler{
		uowFactory: uowFactory,
		reconciler: reconciler,
	}
}

// Handle processes the profile edit command.
func (h UpdateCourierCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCourierCommand,
) (UpdateCourierResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateCourierResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateCourierResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	courierEntity, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return UpdateCourierResult{}, err
	}

	var changes services.ProfileChanges

	if cmd.Class() != nil {
		if err = courierEntity.SetClass(*cmd.Class()); err != nil {
			return UpdateCourierResult{}, err
		}
		changes.Class = true
	}
	if cmd.Regions() != nil {
		if err = courierEntity.SetRegions(cmd.Regions()); err != nil {
			return UpdateCourierResult{}, err
		}
		changes.Regions = true
	}
	if cmd.WorkingHours() != nil {
		if err = courierEntity.SetAvailability(*cmd.WorkingHours()); err != nil {
			return UpdateCourierResult{}, err
		}
		changes.Availability = true
	}

	result := UpdateCourierResult{Courier: courierEntity}

	if changes.Any() {
		orders, err := orderRepo.GetAllByCourier(ctx, courierEntity.ID())
		if err != nil {
			return UpdateCourierResult{}, err
		}

		broken, err := h.reconciler.Reconcile(courierEntity, changes, orders)
		if err != nil {
			return UpdateCourierResult{}, err
		}

		for _, orderEntity := range broken {
			if err = orderRepo.Update(ctx, orderEntity); err != nil {
				return UpdateCourierResult{}, err
			}
			result.UnassignedOrderIDs = append(result.UnassignedOrderIDs, orderEntity.ID())
		}

		if err = courierRepo.Update(ctx, courierEntity); err != nil {
			return UpdateCourierResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateCourierResult{}, err
	}

	return result, nil
}
