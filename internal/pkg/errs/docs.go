// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Domain-specific preconditions (such as requesting a rating for a courier
// with no completed deliveries) are modeled as sentinel errors in their own
// packages; this package only covers the generic validation vocabulary.
package errs
