package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetUnassignedOrdersQueryIsNotConstructed = errors.New(
	"GetUnassignedOrdersQuery must be created via NewGetUnassignedOrdersQuery constructor",
)

// GetUnassignedOrdersQuery retrieves the pool of orders waiting for a courier.
type GetUnassignedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedOrdersQuery creates a query for the unassigned order pool.
// This is a parameterless query that fetches the complete pool.
func NewGetUnassignedOrdersQuery() GetUnassignedOrdersQuery {
	return GetUnassignedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedOrdersQueryIsNotConstructed)
}

// GetUnassignedOrdersQueryResponse represents an unassigned order in the
// read model. DeliveryHours carries the normalized "HH:MM-HH:MM" strings.
type GetUnassignedOrdersQueryResponse struct {
	ID            int64
	Weight        float64
	Region        int
	DeliveryHours []string
}
