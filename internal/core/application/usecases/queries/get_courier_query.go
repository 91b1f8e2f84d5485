// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetCourierQueryIsNotConstructed = errors.New(
	"GetCourierQuery must be created via NewGetCourierQuery constructor",
)

// GetCourierQuery retrieves one courier's profile by id.
type GetCourierQuery struct {
	courierID int64

	guard guard.ConstructorGuard
}

// NewGetCourierQuery creates a query for a single courier profile.
func NewGetCourierQuery(courierID int64) (GetCourierQuery, error) {
	if courierID <= 0 {
		return GetCourierQuery{}, errs.NewValueIsInvalidErrorWithCause("courier id",
			fmt.Errorf("%d is not greater than 0", courierID))
	}
	return GetCourierQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierQueryIsNotConstructed)
}

// CourierID returns the requested courier id.
func (q GetCourierQuery) CourierID() int64 {
	return q.courierID
}

// GetCourierQueryResponse represents a courier profile in the read model.
// WorkingHours carries the normalized "HH:MM-HH:MM" window strings.
type GetCourierQueryResponse struct {
	ID           int64
	CourierType  string
	Regions      []int
	WorkingHours []string
}
