package order

// Status is the lifecycle state of an order, derived from its assignment
// and completion fields rather than stored separately.
//
// State transitions:
//
//	Created ──> Assigned ──> Completed
//	    ^          │
//	    └──────────┘
//	(reconciliation reverts uncompleted assignments)
//
// Completed is terminal: a completed order is never reassigned or reverted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Created is the initial status: the order waits in the unassigned pool.
	Created

	// Assigned means a courier has been stamped on the order.
	Assigned

	// Completed means the delivery has been reported done. Terminal.
	Completed
)

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case Created:
		return "Created"
	case Assigned:
		return "Assigned"
	case Completed:
		return "Completed"
	default:
		return "Unknown"
	}
}
