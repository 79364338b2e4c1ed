package contracts

import (
	"context"
)

// Specialized handler interfaces, one per message shape. A concrete handler
// type implements exactly one of these for exactly one message type; the
// compiler enforces both.

// RequestHandler handles a request synchronously on the caller's goroutine.
type RequestHandler[Req any, Resp any] interface {
	Handle(req Req) (Resp, error)
}

// AsyncRequestHandler handles a request asynchronously. Handle must not
// block; it returns a Future completed when the work finishes.
type AsyncRequestHandler[Req any, Resp any] interface {
	Handle(req Req) *Future[Resp]
}

// ContextRequestHandler handles a request asynchronously with cooperative
// cancellation. The handler body is expected to observe ctx at its own
// suspension points; nothing force-aborts a handler that ignores it.
type ContextRequestHandler[Req any, Resp any] interface {
	Handle(ctx context.Context, req Req) *Future[Resp]
}

// NotificationHandler handles a notification synchronously.
type NotificationHandler[N any] interface {
	Handle(notification N) error
}

// AsyncNotificationHandler handles a notification asynchronously. The
// returned Future carries Unit because notifications have no response.
type AsyncNotificationHandler[N any] interface {
	Handle(notification N) *Future[Unit]
}

// ContextNotificationHandler handles a notification asynchronously with
// cooperative cancellation.
type ContextNotificationHandler[N any] interface {
	Handle(ctx context.Context, notification N) *Future[Unit]
}

// StreamRequestHandler handles a request by producing a sequence of values.
// The handler owns the returned channel and must close it when the sequence
// ends or ctx is cancelled.
type StreamRequestHandler[Req any, T any] interface {
	Handle(ctx context.Context, req Req) (<-chan T, error)
}

// Function adapters so plain functions can serve as handlers.

// RequestHandlerFunc adapts a function to RequestHandler.
type RequestHandlerFunc[Req any, Resp any] func(req Req) (Resp, error)

// Handle implements RequestHandler.
func (f RequestHandlerFunc[Req, Resp]) Handle(req Req) (Resp, error) {
	return f(req)
}

// AsyncRequestHandlerFunc adapts a function to AsyncRequestHandler.
type AsyncRequestHandlerFunc[Req any, Resp any] func(req Req) *Future[Resp]

// Handle implements AsyncRequestHandler.
func (f AsyncRequestHandlerFunc[Req, Resp]) Handle(req Req) *Future[Resp] {
	return f(req)
}

// ContextRequestHandlerFunc adapts a function to ContextRequestHandler.
type ContextRequestHandlerFunc[Req any, Resp any] func(ctx context.Context, req Req) *Future[Resp]

// Handle implements ContextRequestHandler.
func (f ContextRequestHandlerFunc[Req, Resp]) Handle(ctx context.Context, req Req) *Future[Resp] {
	return f(ctx, req)
}

// NotificationHandlerFunc adapts a function to NotificationHandler.
type NotificationHandlerFunc[N any] func(notification N) error

// Handle implements NotificationHandler.
func (f NotificationHandlerFunc[N]) Handle(notification N) error {
	return f(notification)
}

// AsyncNotificationHandlerFunc adapts a function to AsyncNotificationHandler.
type AsyncNotificationHandlerFunc[N any] func(notification N) *Future[Unit]

// Handle implements AsyncNotificationHandler.
func (f AsyncNotificationHandlerFunc[N]) Handle(notification N) *Future[Unit] {
	return f(notification)
}

// ContextNotificationHandlerFunc adapts a function to ContextNotificationHandler.
type ContextNotificationHandlerFunc[N any] func(ctx context.Context, notification N) *Future[Unit]

// Handle implements ContextNotificationHandler.
func (f ContextNotificationHandlerFunc[N]) Handle(ctx context.Context, notification N) *Future[Unit] {
	return f(ctx, notification)
}

// StreamRequestHandlerFunc adapts a function to StreamRequestHandler.
type StreamRequestHandlerFunc[Req any, T any] func(ctx context.Context, req Req) (<-chan T, error)

// Handle implements StreamRequestHandler.
func (f StreamRequestHandlerFunc[Req, T]) Handle(ctx context.Context, req Req) (<-chan T, error) {
	return f(ctx, req)
}
