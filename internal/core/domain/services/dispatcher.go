package services

import (
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

// Dispatcher is a domain service that assigns a courier to every eligible
// order in a candidate pool.
//
// Business rules:
//   - the pool must already be restricted to unassigned orders by the caller;
//     the dispatcher trusts its input and does not re-check
//   - every order assigned in one Dispatch call receives the same timestamp,
//     forming a single assignment batch
//   - orders are independent: one order's ineligibility never blocks another
//   - an empty pool yields an empty result, not an error
type Dispatcher struct{}

// NewDispatcher creates a new Dispatcher instance.
func NewDispatcher() Dispatcher {
	return Dispatcher{}
}

// Dispatch filters the pool to the orders the courier is eligible for and
// stamps each with the courier's id and the shared batch timestamp `now`.
// Returns the newly assigned orders for persistence by the caller.
func (d Dispatcher) Dispatch(c *courier.Courier, pool []*order.Order, now time.Time) ([]*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	for _, o := range pool {
		if err := o.Validate(); err != nil {
			return nil, err
		}
	}

	assigned := FilterCandidates(c, pool)
	for _, o := range assigned {
		if err := o.Assign(c.ID(), now); err != nil {
			return nil, err
		}
	}

	return assigned, nil
}
