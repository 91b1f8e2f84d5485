// Package services contains stateless domain services that operate across
// the courier and order aggregates:
//
//   - the eligibility filter, combining the courier's three constraint
//     predicates over a candidate pool
//   - the Dispatcher, stamping eligible orders with a courier and a shared
//     assignment batch timestamp
//   - the Reconciler, re-validating a courier's active assignments after a
//     profile edit and reverting the ones that no longer qualify
//   - the scorecard functions, deriving a courier's performance rating and
//     earnings from delivery history
package services
