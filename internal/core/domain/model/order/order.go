package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyAssigned is returned when assigning an order that
	// already carries a courier.
	ErrOrderAlreadyAssigned = errors.New("order is already assigned to a courier")

	// ErrOrderAlreadyCompleted is returned when mutating a completed order.
	// Completion is terminal.
	ErrOrderAlreadyCompleted = errors.New("order is already completed")

	// ErrOrderNotAssignedToCourier is returned when completion is reported
	// by a courier the order is not assigned to, or when the order was
	// never assigned.
	ErrOrderNotAssignedToCourier = errors.New("order is not assigned to the reporting courier")
)

// Order represents a delivery order. It is an aggregate root managing the
// order lifecycle from creation through assignment to completion.
//
// Invariants:
//   - identity is immutable and positive
//   - weight is positive
//   - at most one courier is assigned at any time; courier and assignment
//     timestamp are set and cleared together
//   - completion is terminal and recorded exactly once
type Order struct {
	// id is the externally assigned order identifier
	id int64

	// weight is the order weight (must be positive)
	weight float64

	// region is the delivery region code
	region int

	// deliveryHours is the window set the delivery must fall into
	deliveryHours kernel.Schedule

	// courierID is the assigned courier (nil if unassigned)
	courierID *int64

	// assignedAt is the assignment batch timestamp (nil if unassigned)
	assignedAt *time.Time

	// completedAt is the delivery completion time (nil until completed)
	completedAt *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an unassigned Order with validation.
func NewOrder(id int64, weight float64, region int, deliveryHours kernel.Schedule) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setWeight(weight),
		o.setDeliveryHours(deliveryHours),
	); err != nil {
		return nil, err
	}

	o.region = region
	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its
// assignment and completion state. The persisted state must be consistent:
// courier and assignment timestamp are either both present or both absent,
// and a completed order must carry a courier.
func RestoreOrder(
	id int64,
	weight float64,
	region int,
	deliveryHours kernel.Schedule,
	courierID *int64,
	assignedAt *time.Time,
	completedAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, weight, region, deliveryHours)
	if err != nil {
		return nil, err
	}

	if (courierID == nil) != (assignedAt == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("order assignment",
			fmt.Errorf("courier and assignment time must be set together for order %d", id))
	}
	if completedAt != nil && courierID == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order completion",
			fmt.Errorf("completed order %d has no courier", id))
	}

	o.courierID = courierID
	o.assignedAt = assignedAt
	o.completedAt = completedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's identifier.
func (o *Order) ID() int64 {
	return o.id
}

// Weight returns the order weight.
func (o *Order) Weight() float64 {
	return o.weight
}

// Region returns the delivery region code.
func (o *Order) Region() int {
	return o.region
}

// DeliveryHours returns the order's delivery window set.
func (o *Order) DeliveryHours() kernel.Schedule {
	return o.deliveryHours
}

// Courier returns the assigned courier's id, or nil if unassigned.
func (o *Order) Courier() *int64 {
	return o.courierID
}

// AssignedAt returns the assignment batch timestamp, or nil if unassigned.
func (o *Order) AssignedAt() *time.Time {
	return o.assignedAt
}

// CompletedAt returns the completion time, or nil if not completed.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// IsAssigned reports whether a courier is currently assigned.
func (o *Order) IsAssigned() bool {
	return o.courierID != nil
}

// IsCompleted reports whether the delivery has been completed.
func (o *Order) IsCompleted() bool {
	return o.completedAt != nil
}

// Status derives the lifecycle status from the assignment and completion fields.
func (o *Order) Status() Status {
	switch {
	case o.completedAt != nil:
		return Completed
	case o.courierID != nil:
		return Assigned
	default:
		return Created
	}
}

// Assign stamps the order with a courier and the assignment batch timestamp.
// Both fields are set together. Fails if the order is completed or already
// carries a courier.
func (o *Order) Assign(courierID int64, at time.Time) error {
	if o.completedAt != nil {
		return ErrOrderAlreadyCompleted
	}
	if o.courierID != nil {
		return ErrOrderAlreadyAssigned
	}

	o.courierID = &courierID
	o.assignedAt = &at
	return nil
}

// Unassign returns the order to the unassigned pool, clearing the courier
// and the assignment timestamp together. Only reconciliation uses this edge;
// completed orders are never reverted.
func (o *Order) Unassign() error {
	if o.completedAt != nil {
		return ErrOrderAlreadyCompleted
	}

	o.courierID = nil
	o.assignedAt = nil
	return nil
}

// Complete records the delivery as done. The reporting courier must match
// the assigned one and the order must not already be completed. Terminal.
func (o *Order) Complete(courierID int64, at time.Time) error {
	if o.completedAt != nil {
		return ErrOrderAlreadyCompleted
	}
	if o.courierID == nil || *o.courierID != courierID {
		return ErrOrderNotAssignedToCourier
	}

	o.completedAt = &at
	return nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not greater than 0", weight))
	}
	o.weight = weight
	return nil
}

func (o *Order) setDeliveryHours(deliveryHours kernel.Schedule) error {
	if err := deliveryHours.Validate(); err != nil {
		return err
	}
	o.deliveryHours = deliveryHours
	return nil
}
