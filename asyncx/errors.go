package asyncx

import (
	"github.com/btnwtn/form-bureaucracy/errx"
)

// Error registry for asyncx
var ErrorRegistry = errx.NewRegistry("ASYNC")

// Error codes for asyncx
var (
	ErrCanceled  = ErrorRegistry.Register("CANCELED", errx.TypeSystem, 499, "Operation was canceled")
	ErrTimeout   = ErrorRegistry.Register("TIMEOUT", errx.TypeTimeout, 408, "Operation timed out")
	ErrNoFutures = ErrorRegistry.Register("NO_FUTURES", errx.TypeBadRequest, 400, "No futures provided")
)
