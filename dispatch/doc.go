// Package dispatch implements the mediator's dispatch engine.
//
// The engine resolves handlers through a Resolver and invokes them with the
// shape-appropriate calling convention:
//   - Send / SendAsync / SendContext route a request to exactly one handler
//     and return its response. Zero matches fail with
//     contracts.ErrHandlerNotFound, two or more with
//     contracts.ErrMultipleHandlers.
//   - Publish / PublishAsync / PublishContext route a notification to all
//     of its handlers, sequentially, in registration order. Zero handlers
//     is not an error. A fault in one handler aborts the rest of the
//     sequence and surfaces to the publisher.
//   - CreateStream routes a request to exactly one stream handler and
//     forwards its value channel.
//
// Registry is the default in-process Resolver. Handlers register through
// the generic Register* functions, keyed by message type and shape, so a
// handler registered for one shape is never matched by another shape's
// dispatch.
//
// The engine owns no handler lifetime and no mutable state of its own;
// independent dispatches from multiple goroutines are safe as long as the
// Resolver is safe for concurrent reads. Handler faults propagate to the
// caller unchanged, without wrapping or retries. Behaviors registered on
// the Mediator wrap every request dispatch in registration order and may
// short-circuit it; notifications bypass behaviors.
package dispatch
