package errx

import (
	"fmt"
	"sync"
)

// definition holds the registered template for a code
type definition struct {
	typ        Type
	httpStatus int
	message    string
}

// Registry is a prefix-scoped table of error definitions. Each package owns
// one registry and registers its codes at init time; errors are then minted
// from the registered templates.
type Registry struct {
	prefix string

	mu   sync.RWMutex
	defs map[Code]definition
}

// NewRegistry creates a registry scoped by the given prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		defs:   make(map[Code]definition),
	}
}

// Register records an error definition and returns its Code.
// Registering the same code twice overwrites the previous definition.
func (r *Registry) Register(code string, typ Type, httpStatus int, message string) Code {
	c := Code(code)

	r.mu.Lock()
	r.defs[c] = definition{
		typ:        typ,
		httpStatus: httpStatus,
		message:    message,
	}
	r.mu.Unlock()

	return c
}

// Prefix returns the registry's scope prefix
func (r *Registry) Prefix() string {
	return r.prefix
}

// New mints an error from a registered code
func (r *Registry) New(code Code) *Error {
	return r.build(code, "", nil)
}

// NewWithMessage mints an error from a registered code with the message replaced
func (r *Registry) NewWithMessage(code Code, message string) *Error {
	return r.build(code, message, nil)
}

// NewWithCause mints an error from a registered code with an underlying cause
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	return r.build(code, "", cause)
}

func (r *Registry) build(code Code, message string, cause error) *Error {
	r.mu.RLock()
	def, ok := r.defs[code]
	r.mu.RUnlock()

	if !ok {
		// An unknown code is a programming error in the calling package;
		// surface it loudly rather than returning nil.
		return &Error{
			Code:    code,
			Type:    TypeInternal,
			Message: fmt.Sprintf("unregistered error code %q in registry %s", code, r.prefix),
			Cause:   cause,
		}
	}

	if message == "" {
		message = def.message
	}

	return &Error{
		Code:       code,
		Type:       def.typ,
		Message:    message,
		HTTPStatus: def.httpStatus,
		Cause:      cause,
	}
}
