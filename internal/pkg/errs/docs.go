// Package errs provides standardized error categories for the catalog domain.
// Every domain error in the module unwraps to exactly one of the sentinel errors
// declared here, so callers can classify failures with errors.Is without knowing
// the concrete component that produced them.
//
// The package includes:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is present but malformed
//   - ErrValueIsOutOfRange: the category for values outside a permitted range
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
