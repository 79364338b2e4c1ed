package contracts

import "errors"

// Dispatch error kinds. The engine wraps these with fmt.Errorf and %w, so
// callers classify failures with errors.Is. Handler faults are never
// wrapped; they reach the caller exactly as the handler returned them.
var (
	// ErrHandlerNotFound is returned when a request resolves to zero
	// handlers. Requests require exactly one.
	ErrHandlerNotFound = errors.New("no handler registered")

	// ErrMultipleHandlers is returned when a request resolves to two or
	// more handlers. Ambiguous routing is a configuration defect and is
	// never resolved by picking one.
	ErrMultipleHandlers = errors.New("multiple handlers registered")

	// ErrInvalidHandler is returned when a registered handler does not
	// satisfy the contract instantiation the caller asked for, e.g. it
	// was registered with a different response type.
	ErrInvalidHandler = errors.New("handler does not match requested contract")

	// ErrCancelled is returned when a dispatch observes cancellation
	// before completion, so callers can tell "asked to stop" from a
	// handler fault. The underlying context error stays in the wrap
	// chain.
	ErrCancelled = errors.New("dispatch cancelled")
)
