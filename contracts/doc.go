// Package contracts defines the message and handler contracts for the mediator.
//
// A message belongs to one of two families:
//   - Request: expects exactly one response value and exactly one handler.
//   - Notification: expects no response and zero or more handlers.
//
// Each family comes in three execution shapes: synchronous (a blocking
// call), asynchronous (the handler returns a Future), and context-aware
// (asynchronous with cooperative cancellation through a context.Context).
// The shape a handler supports is fixed by which of the six handler
// interfaces it implements; a concrete handler type implements exactly one
// contract for exactly one message type.
//
// Unit is the response type of requests that have nothing to return, so
// void requests flow through the same response-typed pipeline as every
// other request.
package contracts
