package dispatch

import (
	"context"
	"fmt"

	"github.com/Ngnintedem3004/MediatR/contracts"
)

// CreateStream dispatches a stream request to its single registered handler
// and forwards the handler's value channel. The exactly-one rules of Send
// apply; the handler owns the channel and closes it when the sequence ends
// or ctx is cancelled. Behaviors do not wrap stream dispatches.
func CreateStream[T any, Req any](ctx context.Context, m *Mediator, req Req) (<-chan T, error) {
	if err := ctx.Err(); err != nil {
		return nil, cancelledError(err)
	}

	raw, err := m.resolver.ResolveOne(typeOf[Req](), contracts.ShapeStream)
	if err != nil {
		m.logger.Warn("request resolution failed",
			"requestType", typeOf[Req]().String(),
			"shape", contracts.ShapeStream.String(),
			"error", err,
		)
		return nil, err
	}

	handler, ok := raw.(contracts.StreamRequestHandler[Req, T])
	if !ok {
		return nil, fmt.Errorf("%w: %T registered for %s (%s) does not stream values of %s",
			contracts.ErrInvalidHandler, raw, typeOf[Req](), contracts.ShapeStream, typeOf[T]())
	}

	m.logDispatch("stream request dispatched", req, contracts.ShapeStream)
	return handler.Handle(ctx, req)
}
