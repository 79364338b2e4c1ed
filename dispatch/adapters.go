package dispatch

import (
	"context"
	"fmt"

	"github.com/Ngnintedem3004/MediatR/contracts"
)

// Void request handling. A void request declares contracts.Unit as its
// response and flows through the same Send path as any other request; the
// adapters below are the only place Unit-specific behavior lives. Each
// adapter presents the full value-returning contract of its shape to the
// dispatcher while the author supplies only the void core method. Faults
// from the core method pass through untranslated; on success the adapter
// always yields the Unit value.

// VoidRequestHandler is the core capability behind a synchronous void
// request handler.
type VoidRequestHandler[Req any] interface {
	Execute(req Req) error
}

// VoidRequestHandlerFunc adapts a function to VoidRequestHandler.
type VoidRequestHandlerFunc[Req any] func(req Req) error

// Execute implements VoidRequestHandler.
func (f VoidRequestHandlerFunc[Req]) Execute(req Req) error {
	return f(req)
}

// ContextVoidRequestHandler is the core capability behind a cancellable
// void request handler.
type ContextVoidRequestHandler[Req any] interface {
	Execute(ctx context.Context, req Req) error
}

// ContextVoidRequestHandlerFunc adapts a function to
// ContextVoidRequestHandler.
type ContextVoidRequestHandlerFunc[Req any] func(ctx context.Context, req Req) error

// Execute implements ContextVoidRequestHandler.
func (f ContextVoidRequestHandlerFunc[Req]) Execute(ctx context.Context, req Req) error {
	return f(ctx, req)
}

// VoidRequestAdapter presents a VoidRequestHandler as a synchronous
// RequestHandler with Unit response.
type VoidRequestAdapter[Req any] struct {
	handler VoidRequestHandler[Req]
}

// NewVoidRequestAdapter creates a synchronous void adapter.
func NewVoidRequestAdapter[Req any](handler VoidRequestHandler[Req]) *VoidRequestAdapter[Req] {
	return &VoidRequestAdapter[Req]{handler: handler}
}

// Handle implements contracts.RequestHandler.
func (a *VoidRequestAdapter[Req]) Handle(req Req) (contracts.Unit, error) {
	if err := a.handler.Execute(req); err != nil {
		return contracts.Unit{}, err
	}
	return contracts.UnitValue, nil
}

// AsyncVoidRequestAdapter presents a VoidRequestHandler as an asynchronous
// AsyncRequestHandler with Unit response. The core method runs off the
// caller's goroutine and its completion resolves the future.
type AsyncVoidRequestAdapter[Req any] struct {
	handler VoidRequestHandler[Req]
}

// NewAsyncVoidRequestAdapter creates an asynchronous void adapter.
func NewAsyncVoidRequestAdapter[Req any](handler VoidRequestHandler[Req]) *AsyncVoidRequestAdapter[Req] {
	return &AsyncVoidRequestAdapter[Req]{handler: handler}
}

// Handle implements contracts.AsyncRequestHandler.
func (a *AsyncVoidRequestAdapter[Req]) Handle(req Req) *contracts.Future[contracts.Unit] {
	return contracts.GoFuture(func() (contracts.Unit, error) {
		if err := a.handler.Execute(req); err != nil {
			return contracts.Unit{}, err
		}
		return contracts.UnitValue, nil
	})
}

// ContextVoidRequestAdapter presents a ContextVoidRequestHandler as a
// cancellable ContextRequestHandler with Unit response. The same ctx the
// dispatcher received reaches the core method unchanged.
type ContextVoidRequestAdapter[Req any] struct {
	handler ContextVoidRequestHandler[Req]
}

// NewContextVoidRequestAdapter creates a cancellable void adapter.
func NewContextVoidRequestAdapter[Req any](handler ContextVoidRequestHandler[Req]) *ContextVoidRequestAdapter[Req] {
	return &ContextVoidRequestAdapter[Req]{handler: handler}
}

// Handle implements contracts.ContextRequestHandler.
func (a *ContextVoidRequestAdapter[Req]) Handle(ctx context.Context, req Req) *contracts.Future[contracts.Unit] {
	return contracts.GoFuture(func() (contracts.Unit, error) {
		if err := a.handler.Execute(ctx, req); err != nil {
			return contracts.Unit{}, err
		}
		return contracts.UnitValue, nil
	})
}

// Registration shortcuts so void handlers register without naming the
// adapter types.

// RegisterVoidRequestHandler registers a synchronous void request handler
// for Req under the Unit response type.
func RegisterVoidRequestHandler[Req any](r *Registry, handler VoidRequestHandler[Req]) error {
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}
	return RegisterRequestHandler[Req, contracts.Unit](r, NewVoidRequestAdapter(handler))
}

// RegisterAsyncVoidRequestHandler registers an asynchronous void request
// handler for Req under the Unit response type.
func RegisterAsyncVoidRequestHandler[Req any](r *Registry, handler VoidRequestHandler[Req]) error {
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}
	return RegisterAsyncRequestHandler[Req, contracts.Unit](r, NewAsyncVoidRequestAdapter(handler))
}

// RegisterContextVoidRequestHandler registers a cancellable void request
// handler for Req under the Unit response type.
func RegisterContextVoidRequestHandler[Req any](r *Registry, handler ContextVoidRequestHandler[Req]) error {
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}
	return RegisterContextRequestHandler[Req, contracts.Unit](r, NewContextVoidRequestAdapter(handler))
}
