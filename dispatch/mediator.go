package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Ngnintedem3004/MediatR/contracts"
)

// Handler is the type-erased view of a request handler used inside the
// behavior chain. The concrete request and response types are re-asserted
// by the generic dispatch function on the way out.
type Handler interface {
	Handle(ctx context.Context, request any) (any, error)
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, request any) (any, error)

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, request any) (any, error) {
	return f(ctx, request)
}

// Behavior wraps request dispatches with cross-cutting logic. Behaviors run
// in registration order, outermost first, and may short-circuit the chain
// by returning without calling next.
type Behavior interface {
	// Handle processes the request and calls the next element of the
	// chain.
	Handle(ctx context.Context, request any, next Handler) (any, error)

	// Name returns the behavior name for logging and debugging.
	Name() string
}

// Mediator resolves and invokes handlers for requests and notifications.
// It holds no mutable state of its own, so independent dispatches from
// multiple goroutines are safe.
type Mediator struct {
	resolver  Resolver
	behaviors []Behavior
	logger    *slog.Logger
}

// MediatorOption configures a Mediator.
type MediatorOption func(*Mediator)

// WithLogger sets the logger used for dispatch events.
func WithLogger(logger *slog.Logger) MediatorOption {
	return func(m *Mediator) {
		m.logger = logger
	}
}

// WithBehaviors appends behaviors to the request pipeline.
func WithBehaviors(behaviors ...Behavior) MediatorOption {
	return func(m *Mediator) {
		m.behaviors = append(m.behaviors, behaviors...)
	}
}

// NewMediator creates a mediator dispatching through resolver. A nil
// resolver is replaced with an empty Registry, which fails every request
// with contracts.ErrHandlerNotFound.
func NewMediator(resolver Resolver, options ...MediatorOption) *Mediator {
	m := &Mediator{
		resolver: resolver,
		logger:   slog.Default(),
	}

	for _, opt := range options {
		opt(m)
	}

	if m.resolver == nil {
		m.resolver = NewRegistry(WithRegistryLogger(m.logger))
	}

	return m
}

// Resolver returns the resolver this mediator dispatches through.
func (m *Mediator) Resolver() Resolver {
	return m.resolver
}

// runPipeline executes the behavior chain around final. The chain is built
// in reverse so the first registered behavior runs outermost.
func (m *Mediator) runPipeline(ctx context.Context, request any, final Handler) (any, error) {
	if len(m.behaviors) == 0 {
		return final.Handle(ctx, request)
	}

	handler := final
	for i := len(m.behaviors) - 1; i >= 0; i-- {
		behavior := m.behaviors[i]
		next := handler
		handler = HandlerFunc(func(ctx context.Context, request any) (any, error) {
			return behavior.Handle(ctx, request, next)
		})
	}

	return handler.Handle(ctx, request)
}

// logDispatch records a completed dispatch, including message metadata when
// the message carries it.
func (m *Mediator) logDispatch(event string, message any, shape contracts.Shape) {
	attrs := []any{
		"messageType", fmt.Sprintf("%T", message),
		"shape", shape.String(),
	}
	if msg, ok := message.(contracts.Message); ok {
		attrs = append(attrs, "messageId", msg.GetID())
		if correlationID := msg.GetCorrelationID(); correlationID != "" {
			attrs = append(attrs, "correlationId", correlationID)
		}
	}
	m.logger.Debug(event, attrs...)
}

// cancelledError marks err as a cancellation. The original error stays in
// the wrap chain so errors.Is still matches context.Canceled or
// context.DeadlineExceeded.
func cancelledError(err error) error {
	if errors.Is(err, contracts.ErrCancelled) {
		return err
	}
	return fmt.Errorf("%w: %w", contracts.ErrCancelled, err)
}

// isCancellation reports whether err is a context cancellation, whoever
// observed it.
func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, contracts.ErrCancelled)
}
