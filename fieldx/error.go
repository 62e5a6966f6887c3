package fieldx

import (
	"net/http"

	"github.com/btnwtn/form-bureaucracy/errx"
)

// Error registry for fieldx
var (
	FieldErrors = errx.NewRegistry("FIELDX")

	// ErrValidationFailed carries a non-empty findings set across a transport
	// boundary. Inside the library findings are data, not errors.
	ErrValidationFailed = FieldErrors.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Validation failed")

	// ErrNoRule is the strict-lookup configuration error for an unregistered
	// field name.
	ErrNoRule = FieldErrors.Register("NO_RULE", errx.TypeInternal, http.StatusInternalServerError, "No rule registered for field")

	// ErrNilRule reports a registry entry whose rule function is nil.
	ErrNilRule = FieldErrors.Register("NIL_RULE", errx.TypeInternal, http.StatusInternalServerError, "Registered rule is nil")

	// ErrUnknownResult reports a Result variant normalization cannot match.
	ErrUnknownResult = FieldErrors.Register("UNKNOWN_RESULT", errx.TypeInternal, http.StatusInternalServerError, "Unknown rule result shape")
)
