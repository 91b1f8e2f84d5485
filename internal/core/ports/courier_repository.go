// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its identifier.
	// Returns errs.ErrObjectNotFound (wrapped) when no such courier exists.
	Get(ctx context.Context, id int64) (*courier.Courier, error)
}
