// Package errx provides structured error handling with stable codes, broad
// error types and per-package registries.
//
// Every package in this module owns an error Registry created with
// NewRegistry and registers its error codes up front:
//
//	var FieldErrors = errx.NewRegistry("FIELDX")
//
//	var ErrNoRule = FieldErrors.Register("NO_RULE", errx.TypeValidation,
//		http.StatusUnprocessableEntity, "No rule registered for field")
//
// Errors are then minted from the registered templates:
//
//	return FieldErrors.New(ErrNoRule).WithDetail("field", name)
//
// An *Error carries a Code, a Type (VALIDATION, NOT_FOUND, SYSTEM, ...), a
// message, an optional HTTP status, free-form details and an optional cause.
// It implements error and errors.Unwrap, so the standard errors.As/Is
// machinery works across package boundaries.
//
// Transport adapters live in subpackages: errxfiber renders errors as Fiber
// JSON responses, errxcobra formats them for command line output, and
// errxlambda maps them to API Gateway proxy responses.
package errx
