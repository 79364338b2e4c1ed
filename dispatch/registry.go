package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/Ngnintedem3004/MediatR/contracts"
)

// Resolver locates handlers for a message type and shape. The engine
// depends on this capability only; Registry is the default in-process
// implementation, and tests may supply fakes.
type Resolver interface {
	// ResolveOne returns the single handler registered for a request
	// type under the given shape. It fails with
	// contracts.ErrHandlerNotFound when there are none and
	// contracts.ErrMultipleHandlers when there is more than one.
	ResolveOne(messageType reflect.Type, shape contracts.Shape) (any, error)

	// ResolveMany returns all handlers registered for a notification
	// type under the given shape, in registration order. An empty result
	// is not an error.
	ResolveMany(messageType reflect.Type, shape contracts.Shape) []any
}

type registryKey struct {
	messageType reflect.Type
	shape       contracts.Shape
}

// Registry is a thread-safe, in-process handler registry keyed by message
// type and shape. Registration order is preserved per key; it is stable for
// the process lifetime but not across runs.
type Registry struct {
	mu            sync.RWMutex
	requests      map[registryKey][]any
	notifications map[registryKey][]any
	logger        *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used for registration events.
func WithRegistryLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(options ...RegistryOption) *Registry {
	r := &Registry{
		requests:      make(map[registryKey][]any),
		notifications: make(map[registryKey][]any),
		logger:        slog.Default(),
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

// typeOf returns the reflect.Type of T, including interface types.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ResolveOne implements Resolver.
func (r *Registry) ResolveOne(messageType reflect.Type, shape contracts.Shape) (any, error) {
	r.mu.RLock()
	entries := r.requests[registryKey{messageType: messageType, shape: shape}]
	r.mu.RUnlock()

	switch len(entries) {
	case 0:
		return nil, fmt.Errorf("%w for request type %s (%s)", contracts.ErrHandlerNotFound, messageType, shape)
	case 1:
		return entries[0], nil
	default:
		return nil, fmt.Errorf("%w for request type %s (%s): found %d", contracts.ErrMultipleHandlers, messageType, shape, len(entries))
	}
}

// ResolveMany implements Resolver.
func (r *Registry) ResolveMany(messageType reflect.Type, shape contracts.Shape) []any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.notifications[registryKey{messageType: messageType, shape: shape}]
	if len(entries) == 0 {
		return nil
	}

	// Copy so callers never observe later registrations mid-dispatch.
	result := make([]any, len(entries))
	copy(result, entries)
	return result
}

func (r *Registry) addRequestHandler(messageType reflect.Type, shape contracts.Shape, handler any) {
	key := registryKey{messageType: messageType, shape: shape}

	r.mu.Lock()
	r.requests[key] = append(r.requests[key], handler)
	count := len(r.requests[key])
	r.mu.Unlock()

	r.logger.Debug("registered request handler",
		"requestType", messageType.String(),
		"shape", shape.String(),
		"count", count,
	)
}

func (r *Registry) addNotificationHandler(messageType reflect.Type, shape contracts.Shape, handler any) {
	key := registryKey{messageType: messageType, shape: shape}

	r.mu.Lock()
	r.notifications[key] = append(r.notifications[key], handler)
	count := len(r.notifications[key])
	r.mu.Unlock()

	r.logger.Debug("registered notification handler",
		"notificationType", messageType.String(),
		"shape", shape.String(),
		"count", count,
	)
}

// RegisterRequestHandler registers a synchronous request handler for Req.
// Registering a second handler for the same request type and shape is
// accepted here but makes every matching dispatch fail with
// contracts.ErrMultipleHandlers.
func RegisterRequestHandler[Req any, Resp any](r *Registry, handler contracts.RequestHandler[Req, Resp]) error {
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}
	r.addRequestHandler(typeOf[Req](), contracts.ShapeSync, handler)
	return nil
}

// RegisterRequestHandlerFunc registers a function as a synchronous request
// handler.
func RegisterRequestHandlerFunc[Req any, Resp any](r *Registry, fn func(req Req) (Resp, error)) error {
	if fn == nil {
		return fmt.Errorf("handler func cannot be nil")
	}
	return RegisterRequestHandler[Req, Resp](r, contracts.RequestHandlerFunc[Req, Resp](fn))
}

// RegisterAsyncRequestHandler registers an asynchronous request handler for
// Req.
func RegisterAsyncRequestHandler[Req any, Resp any](r *Registry, handler contracts.AsyncRequestHandler[Req, Resp]) error {
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}
	r.addRequestHandler(typeOf[Req](), contracts.ShapeAsync, handler)
	return nil
}

// RegisterAsyncRequestHandlerFunc registers a function as an asynchronous
// request handler.
func RegisterAsyncRequestHandlerFunc[Req any, Resp any](r *Registry, fn func(req Req) *contracts.Future[Resp]) error {
	if fn == nil {
		return fmt.Errorf("handler func cannot be nil")
	}
	return RegisterAsyncRequestHandler[Req, Resp](r, contracts.AsyncRequestHandlerFunc[Req, Resp](fn))
}

// RegisterContextRequestHandler registers a cancellable asynchronous
// request handler for Req.
func RegisterContextRequestHandler[Req any, Resp any](r *Registry, handler contracts.ContextRequestHandler[Req, Resp]) error {
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}
	r.addRequestHandler(typeOf[Req](), contracts.ShapeContext, handler)
	return nil
}

// RegisterContextRequestHandlerFunc registers a function as a cancellable
// asynchronous request handler.
func RegisterContextRequestHandlerFunc[Req any, Resp any](r *Registry, fn func(ctx context.Context, req Req) *contracts.Future[Resp]) error {
	if fn == nil {
		return fmt.Errorf("handler func cannot be nil")
	}
	return RegisterContextRequestHandler[Req, Resp](r, contracts.ContextRequestHandlerFunc[Req, Resp](fn))
}

// RegisterStreamRequestHandler registers a stream request handler for Req.
func RegisterStreamRequestHandler[Req any, T any](r *Registry, handler contracts.StreamRequestHandler[Req, T]) error {
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}
	r.addRequestHandler(typeOf[Req](), contracts.ShapeStream, handler)
	return nil
}

// RegisterNotificationHandler registers a synchronous notification handler
// for N. Notification types accept any number of handlers; they are
// invoked in registration order.
func RegisterNotificationHandler[N any](r *Registry, handler contracts.NotificationHandler[N]) error {
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}
	r.addNotificationHandler(typeOf[N](), contracts.ShapeSync, handler)
	return nil
}

// RegisterNotificationHandlerFunc registers a function as a synchronous
// notification handler.
func RegisterNotificationHandlerFunc[N any](r *Registry, fn func(notification N) error) error {
	if fn == nil {
		return fmt.Errorf("handler func cannot be nil")
	}
	return RegisterNotificationHandler[N](r, contracts.NotificationHandlerFunc[N](fn))
}

// RegisterAsyncNotificationHandler registers an asynchronous notification
// handler for N.
func RegisterAsyncNotificationHandler[N any](r *Registry, handler contracts.AsyncNotificationHandler[N]) error {
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}
	r.addNotificationHandler(typeOf[N](), contracts.ShapeAsync, handler)
	return nil
}

// RegisterAsyncNotificationHandlerFunc registers a function as an
// asynchronous notification handler.
func RegisterAsyncNotificationHandlerFunc[N any](r *Registry, fn func(notification N) *contracts.Future[contracts.Unit]) error {
	if fn == nil {
		return fmt.Errorf("handler func cannot be nil")
	}
	return RegisterAsyncNotificationHandler[N](r, contracts.AsyncNotificationHandlerFunc[N](fn))
}

// RegisterContextNotificationHandler registers a cancellable asynchronous
// notification handler for N.
func RegisterContextNotificationHandler[N any](r *Registry, handler contracts.ContextNotificationHandler[N]) error {
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}
	r.addNotificationHandler(typeOf[N](), contracts.ShapeContext, handler)
	return nil
}

// UnregisterRequestHandlers removes every request handler registered for
// Req under the given shape and returns how many were removed.
func UnregisterRequestHandlers[Req any](r *Registry, shape contracts.Shape) int {
	key := registryKey{messageType: typeOf[Req](), shape: shape}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := len(r.requests[key])
	delete(r.requests, key)
	return removed
}

// UnregisterNotificationHandlers removes every notification handler
// registered for N under the given shape and returns how many were removed.
func UnregisterNotificationHandlers[N any](r *Registry, shape contracts.Shape) int {
	key := registryKey{messageType: typeOf[N](), shape: shape}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := len(r.notifications[key])
	delete(r.notifications, key)
	return removed
}

// RegisteredRequestTypes returns the request types that currently have at
// least one handler, in no particular order.
func (r *Registry) RegisteredRequestTypes() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[reflect.Type]bool)
	types := make([]reflect.Type, 0, len(r.requests))
	for key := range r.requests {
		if !seen[key.messageType] {
			seen[key.messageType] = true
			types = append(types, key.messageType)
		}
	}
	return types
}

// RegisteredNotificationTypes returns the notification types that currently
// have at least one handler, in no particular order.
func (r *Registry) RegisteredNotificationTypes() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[reflect.Type]bool)
	types := make([]reflect.Type, 0, len(r.notifications))
	for key := range r.notifications {
		if !seen[key.messageType] {
			seen[key.messageType] = true
			types = append(types, key.messageType)
		}
	}
	return types
}
