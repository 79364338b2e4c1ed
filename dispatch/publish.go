package dispatch

import (
	"context"
	"fmt"

	"github.com/Ngnintedem3004/MediatR/contracts"
)

// Publish dispatches a notification to every synchronous handler registered
// for it, sequentially and in registration order, so each handler's side
// effects are visible to the next. Zero handlers is success. The first
// handler fault aborts the remaining sequence and is returned unchanged.
func Publish[N contracts.Notification](m *Mediator, notification N) error {
	handlers := m.resolver.ResolveMany(typeOf[N](), contracts.ShapeSync)

	for i, raw := range handlers {
		handler, ok := raw.(contracts.NotificationHandler[N])
		if !ok {
			return invalidNotificationHandlerError[N](raw, i, contracts.ShapeSync)
		}
		if err := handler.Handle(notification); err != nil {
			return err
		}
	}

	m.logDispatch("notification published", notification, contracts.ShapeSync)
	return nil
}

// PublishAsync dispatches a notification to every asynchronous handler
// registered for it without blocking the caller. Handlers still run
// sequentially: each handler's future is awaited to completion before the
// next handler starts. The returned future completes with Unit on success
// or the first handler fault.
func PublishAsync[N contracts.Notification](m *Mediator, notification N) *contracts.Future[contracts.Unit] {
	handlers := m.resolver.ResolveMany(typeOf[N](), contracts.ShapeAsync)
	if len(handlers) == 0 {
		return contracts.ResolvedFuture(contracts.UnitValue)
	}

	m.logDispatch("notification published", notification, contracts.ShapeAsync)

	return contracts.GoFuture(func() (contracts.Unit, error) {
		for i, raw := range handlers {
			handler, ok := raw.(contracts.AsyncNotificationHandler[N])
			if !ok {
				return contracts.Unit{}, invalidNotificationHandlerError[N](raw, i, contracts.ShapeAsync)
			}
			if _, err := handler.Handle(notification).Wait(context.Background()); err != nil {
				return contracts.Unit{}, err
			}
		}
		return contracts.UnitValue, nil
	})
}

// PublishContext dispatches a notification to every cancellable handler
// registered for it, threading the same ctx into each invocation. ctx is
// checked before each handler, so cancellation observed mid-sequence stops
// the remaining handlers and surfaces wrapped in contracts.ErrCancelled.
func PublishContext[N contracts.Notification](ctx context.Context, m *Mediator, notification N) *contracts.Future[contracts.Unit] {
	handlers := m.resolver.ResolveMany(typeOf[N](), contracts.ShapeContext)
	if len(handlers) == 0 {
		if err := ctx.Err(); err != nil {
			return contracts.FailedFuture[contracts.Unit](cancelledError(err))
		}
		return contracts.ResolvedFuture(contracts.UnitValue)
	}

	m.logDispatch("notification published", notification, contracts.ShapeContext)

	return contracts.GoFuture(func() (contracts.Unit, error) {
		for i, raw := range handlers {
			if err := ctx.Err(); err != nil {
				return contracts.Unit{}, cancelledError(err)
			}
			handler, ok := raw.(contracts.ContextNotificationHandler[N])
			if !ok {
				return contracts.Unit{}, invalidNotificationHandlerError[N](raw, i, contracts.ShapeContext)
			}
			if _, err := handler.Handle(ctx, notification).Wait(ctx); err != nil {
				if isCancellation(err) {
					return contracts.Unit{}, cancelledError(err)
				}
				return contracts.Unit{}, err
			}
		}
		return contracts.UnitValue, nil
	})
}

// invalidNotificationHandlerError describes a registered handler that does
// not satisfy the notification contract for N.
func invalidNotificationHandlerError[N any](raw any, position int, shape contracts.Shape) error {
	return fmt.Errorf("%w: %T at position %d for notification %s (%s)",
		contracts.ErrInvalidHandler, raw, position, typeOf[N](), shape)
}
