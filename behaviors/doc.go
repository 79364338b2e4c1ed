// Package behaviors provides built-in pipeline behaviors for the mediator's
// request dispatch path.
//
// Behaviors implement dispatch.Behavior and wrap every Send, SendAsync, and
// SendContext invocation in the order they were added to the Mediator.
// Available behaviors:
//   - Logging: structured request/outcome logging via slog
//   - Recovery: converts handler panics into errors
//   - Validation: rejects requests a Validator refuses
//   - Timeout: bounds handler execution with a context deadline
//   - Metrics: reports counts and durations to a Collector
//   - PreProcessor / PostProcessor: run user hooks before and after the
//     handler
//
// Notifications are dispatched behavior-free; cross-cutting logic for
// notification handlers belongs inside the handlers themselves.
package behaviors
