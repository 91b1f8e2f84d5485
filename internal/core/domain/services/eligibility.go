package services

import (
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

// Eligible reports whether the courier satisfies all three constraints for
// the order: the weight fits the class limit, the region is served, and the
// working hours overlap the delivery hours. The predicates are independent;
// evaluation order never changes the result.
func Eligible(c *courier.Courier, o *order.Order) bool {
	return c.CanCarry(o.Weight()) &&
		c.ServesRegion(o.Region()) &&
		c.IsAvailableFor(o.DeliveryHours())
}

// FilterCandidates returns the subsequence of orders the courier is eligible
// for, preserving the input order. Pure: neither the courier nor the orders
// are modified.
func FilterCandidates(c *courier.Courier, orders []*order.Order) []*order.Order {
	eligible := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if Eligible(c, o) {
			eligible = append(eligible, o)
		}
	}
	return eligible
}
