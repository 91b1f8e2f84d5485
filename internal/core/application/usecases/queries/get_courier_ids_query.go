package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetCourierIDsQueryIsNotConstructed = errors.New(
	"GetCourierIDsQuery must be created via NewGetCourierIDsQuery constructor",
)

// GetCourierIDsQuery retrieves the ids of all registered couriers.
// Used by the background dispatch job to run assignment passes.
type GetCourierIDsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCourierIDsQuery creates a query for the courier roster.
func NewGetCourierIDsQuery() GetCourierIDsQuery {
	return GetCourierIDsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCourierIDsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierIDsQueryIsNotConstructed)
}
