package services

import (
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

// ProfileChanges records which courier profile fields an edit touched.
// Each changed field triggers its own eligibility re-check; the checks are
// independent, so an order failing only one of them is still reverted.
type ProfileChanges struct {
	Class        bool
	Regions      bool
	Availability bool
}

// Any reports whether the edit touched at least one constraint field.
func (p ProfileChanges) Any() bool {
	return p.Class || p.Regions || p.Availability
}

// Reconciler is a domain service that re-validates a courier's active
// assignments after a profile edit.
//
// For every order currently assigned to the courier and not yet completed,
// the predicate belonging to each changed field is re-evaluated against the
// NEW profile: availability edits re-check only the time-window overlap,
// class edits only the weight limit, region edits only region membership.
// Orders failing any re-check are unassigned and returned to the pool.
// Completed orders are never touched, regardless of eligibility.
type Reconciler struct{}

// NewReconciler creates a new Reconciler instance.
func NewReconciler() Reconciler {
	return Reconciler{}
}

// Reconcile applies the per-field re-checks to the courier's orders and
// unassigns every order that no longer qualifies. The broken set is
// deduplicated across the three checks. Returns the reverted orders for
// persistence by the caller.
func (r Reconciler) Reconcile(c *courier.Courier, changes ProfileChanges, orders []*order.Order) ([]*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	broken := make([]*order.Order, 0)
	seen := make(map[int64]bool)

	collect := func(failing func(*order.Order) bool) {
		for _, o := range orders {
			if o.IsCompleted() || !o.IsAssigned() {
				continue
			}
			if o.Courier() == nil || *o.Courier() != c.ID() {
				continue
			}
			if seen[o.ID()] || !failing(o) {
				continue
			}
			seen[o.ID()] = true
			broken = append(broken, o)
		}
	}

	if changes.Availability {
		collect(func(o *order.Order) bool { return !c.IsAvailableFor(o.DeliveryHours()) })
	}
	if changes.Class {
		collect(func(o *order.Order) bool { return !c.CanCarry(o.Weight()) })
	}
	if changes.Regions {
		collect(func(o *order.Order) bool { return !c.ServesRegion(o.Region()) })
	}

	for _, o := range broken {
		if err := o.Unassign(); err != nil {
			return nil, err
		}
	}

	return broken, nil
}
