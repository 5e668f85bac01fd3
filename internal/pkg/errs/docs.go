// Package errs provides the standardized error types used across the
// water-delivery service. It implements a consistent pattern for error
// creation, formatting, and unwrapping.
//
// The package covers the failure taxonomy of the application:
//   - ValueIsRequiredError: a required input value is missing
//   - ValueIsInvalidError: an input value is malformed or breaks a rule
//   - ValueIsOutOfRangeError: a numeric value is outside its interval
//   - ObjectNotFoundError: a referenced entity does not exist
//   - ConflictError: a write collided with concurrent state
//   - UnauthorizedError: no valid session accompanies the request
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// The HTTP adapter relies on the sentinels to translate failures into
// response codes, so every error that crosses the transport boundary must
// unwrap to exactly one of them.
package errs
