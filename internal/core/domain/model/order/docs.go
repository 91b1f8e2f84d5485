// Package order contains the Order aggregate.
//
// An order moves one way through its lifecycle: created (unassigned),
// assigned, completed. The single permitted reverse edge is
// assigned -> created, taken only when a courier profile edit invalidates
// an active assignment. Completion is terminal.
package order
