package dispatch

import (
	"context"
	"fmt"

	"github.com/Ngnintedem3004/MediatR/contracts"
)

// Send dispatches a synchronous request to its single registered handler
// and blocks until the handler returns. The response type is fixed by the
// call's type arguments, so a handler registered with a different response
// type fails with contracts.ErrInvalidHandler. Resolution failures wrap
// contracts.ErrHandlerNotFound or contracts.ErrMultipleHandlers; handler
// faults come back unchanged.
func Send[Resp any, Req contracts.Request[Resp]](m *Mediator, req Req) (Resp, error) {
	var zero Resp

	raw, err := m.resolver.ResolveOne(typeOf[Req](), contracts.ShapeSync)
	if err != nil {
		m.logger.Warn("request resolution failed",
			"requestType", typeOf[Req]().String(),
			"shape", contracts.ShapeSync.String(),
			"error", err,
		)
		return zero, err
	}

	handler, ok := raw.(contracts.RequestHandler[Req, Resp])
	if !ok {
		return zero, invalidHandlerError[Req, Resp](raw, contracts.ShapeSync)
	}

	out, err := m.runPipeline(context.Background(), req, HandlerFunc(func(_ context.Context, request any) (any, error) {
		resp, err := handler.Handle(request.(Req))
		return resp, err
	}))
	if err != nil {
		return zero, err
	}

	m.logDispatch("request dispatched", req, contracts.ShapeSync)
	return pipelineResponse[Resp](out)
}

// SendAsync dispatches an asynchronous request to its single registered
// handler without blocking. Resolution failures come back as an already
// failed future. When no behaviors are configured the handler's own future
// is forwarded as-is.
func SendAsync[Resp any, Req contracts.Request[Resp]](m *Mediator, req Req) *contracts.Future[Resp] {
	raw, err := m.resolver.ResolveOne(typeOf[Req](), contracts.ShapeAsync)
	if err != nil {
		m.logger.Warn("request resolution failed",
			"requestType", typeOf[Req]().String(),
			"shape", contracts.ShapeAsync.String(),
			"error", err,
		)
		return contracts.FailedFuture[Resp](err)
	}

	handler, ok := raw.(contracts.AsyncRequestHandler[Req, Resp])
	if !ok {
		return contracts.FailedFuture[Resp](invalidHandlerError[Req, Resp](raw, contracts.ShapeAsync))
	}

	m.logDispatch("request dispatched", req, contracts.ShapeAsync)

	if len(m.behaviors) == 0 {
		return handler.Handle(req)
	}

	return contracts.GoFuture(func() (Resp, error) {
		out, err := m.runPipeline(context.Background(), req, HandlerFunc(func(ctx context.Context, request any) (any, error) {
			return handler.Handle(request.(Req)).Wait(ctx)
		}))
		if err != nil {
			var zero Resp
			return zero, err
		}
		return pipelineResponse[Resp](out)
	})
}

// SendContext dispatches a cancellable asynchronous request to its single
// registered handler. ctx is checked before invocation and threaded into
// the handler, which observes it cooperatively; an observed cancellation
// surfaces wrapped in contracts.ErrCancelled rather than as a handler
// fault.
func SendContext[Resp any, Req contracts.Request[Resp]](ctx context.Context, m *Mediator, req Req) *contracts.Future[Resp] {
	if err := ctx.Err(); err != nil {
		return contracts.FailedFuture[Resp](cancelledError(err))
	}

	raw, err := m.resolver.ResolveOne(typeOf[Req](), contracts.ShapeContext)
	if err != nil {
		m.logger.Warn("request resolution failed",
			"requestType", typeOf[Req]().String(),
			"shape", contracts.ShapeContext.String(),
			"error", err,
		)
		return contracts.FailedFuture[Resp](err)
	}

	handler, ok := raw.(contracts.ContextRequestHandler[Req, Resp])
	if !ok {
		return contracts.FailedFuture[Resp](invalidHandlerError[Req, Resp](raw, contracts.ShapeContext))
	}

	m.logDispatch("request dispatched", req, contracts.ShapeContext)

	return contracts.GoFuture(func() (Resp, error) {
		out, err := m.runPipeline(ctx, req, HandlerFunc(func(ctx context.Context, request any) (any, error) {
			return handler.Handle(ctx, request.(Req)).Wait(ctx)
		}))
		if err != nil {
			var zero Resp
			if isCancellation(err) {
				return zero, cancelledError(err)
			}
			return zero, err
		}
		return pipelineResponse[Resp](out)
	})
}

// invalidHandlerError describes a registered handler that does not satisfy
// the contract instantiation the caller asked for.
func invalidHandlerError[Req any, Resp any](raw any, shape contracts.Shape) error {
	return fmt.Errorf("%w: %T registered for %s (%s) does not handle responses of %s",
		contracts.ErrInvalidHandler, raw, typeOf[Req](), shape, typeOf[Resp]())
}

// pipelineResponse re-asserts the type-erased pipeline result to the
// response type. A behavior that substitutes a value of another type is a
// defect reported against the pipeline, not the handler.
func pipelineResponse[Resp any](out any) (Resp, error) {
	resp, ok := out.(Resp)
	if !ok {
		var zero Resp
		return zero, fmt.Errorf("%w: pipeline produced %T, want %s", contracts.ErrInvalidHandler, out, typeOf[Resp]())
	}
	return resp, nil
}
