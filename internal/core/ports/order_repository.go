package ports

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns errs.ErrObjectNotFound (wrapped) when no such order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllUnassigned retrieves the pool of orders without a courier.
	// Completed orders never appear here: completion implies assignment.
	GetAllUnassigned(ctx context.Context) ([]*order.Order, error)

	// GetAllByCourier retrieves every order currently referencing the
	// courier, whether in progress or completed. Used by reconciliation
	// and by the rating/earnings computation.
	GetAllByCourier(ctx context.Context, courierID int64) ([]*order.Order, error)
}
