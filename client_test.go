package mediatr

import (
	"context"
	"errors"
	"testing"

	"github.com/Ngnintedem3004/MediatR/behaviors"
	"github.com/Ngnintedem3004/MediatR/contracts"
	"github.com/Ngnintedem3004/MediatR/dispatch"
	"github.com/stretchr/testify/assert"
)

type createUser struct {
	contracts.BaseRequest
	Name string
}

type createUserResult struct {
	UserID string
}

type userRegistered struct {
	contracts.BaseNotification
	UserID string
}

type dropSession struct {
	SessionID string
}

func TestClient(t *testing.T) {
	t.Run("NewClient creates a working registry and mediator", func(t *testing.T) {
		c := NewClient()

		assert.NotNil(t, c.Registry())
		assert.NotNil(t, c.Mediator())
	})

	t.Run("request round-trip through the facade", func(t *testing.T) {
		c := NewClient()
		assert.NoError(t, dispatch.RegisterRequestHandlerFunc(c.Registry(), func(req createUser) (createUserResult, error) {
			return createUserResult{UserID: "user-" + req.Name}, nil
		}))

		result, err := Send[createUserResult](c, createUser{BaseRequest: contracts.NewBaseRequest(), Name: "ada"})

		assert.NoError(t, err)
		assert.Equal(t, "user-ada", result.UserID)
	})

	t.Run("notification fan-out through the facade", func(t *testing.T) {
		c := NewClient()
		var trace []string
		assert.NoError(t, dispatch.RegisterNotificationHandlerFunc(c.Registry(), func(n userRegistered) error {
			trace = append(trace, "audit:"+n.UserID)
			return nil
		}))
		assert.NoError(t, dispatch.RegisterNotificationHandlerFunc(c.Registry(), func(n userRegistered) error {
			trace = append(trace, "welcome:"+n.UserID)
			return nil
		}))

		err := Publish(c, userRegistered{UserID: "u1"})

		assert.NoError(t, err)
		assert.Equal(t, []string{"audit:u1", "welcome:u1"}, trace)
	})

	t.Run("void request through the facade", func(t *testing.T) {
		c := NewClient()
		dropped := ""
		assert.NoError(t, dispatch.RegisterVoidRequestHandler[dropSession](c.Registry(),
			dispatch.VoidRequestHandlerFunc[dropSession](func(req dropSession) error {
				dropped = req.SessionID
				return nil
			})))

		resp, err := Send[contracts.Unit](c, dropSession{SessionID: "s1"})

		assert.NoError(t, err)
		assert.Equal(t, contracts.UnitValue, resp)
		assert.Equal(t, "s1", dropped)
	})

	t.Run("async and context dispatch through the facade", func(t *testing.T) {
		c := NewClient()
		assert.NoError(t, dispatch.RegisterAsyncRequestHandlerFunc(c.Registry(), func(req createUser) *contracts.Future[createUserResult] {
			return contracts.ResolvedFuture(createUserResult{UserID: "async-" + req.Name})
		}))
		assert.NoError(t, dispatch.RegisterContextRequestHandlerFunc(c.Registry(), func(ctx context.Context, req createUser) *contracts.Future[createUserResult] {
			return contracts.ResolvedFuture(createUserResult{UserID: "ctx-" + req.Name})
		}))

		async, err := SendAsync[createUserResult](c, createUser{Name: "bob"}).Wait(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "async-bob", async.UserID)

		withCtx, err := SendContext[createUserResult](context.Background(), c, createUser{Name: "eve"}).Wait(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "ctx-eve", withCtx.UserID)
	})

	t.Run("stream dispatch through the facade", func(t *testing.T) {
		c := NewClient()
		assert.NoError(t, dispatch.RegisterStreamRequestHandler[createUser, string](c.Registry(),
			contracts.StreamRequestHandlerFunc[createUser, string](func(ctx context.Context, req createUser) (<-chan string, error) {
				out := make(chan string, 2)
				out <- req.Name + "-1"
				out <- req.Name + "-2"
				close(out)
				return out, nil
			})))

		stream, err := CreateStream[string](context.Background(), c, createUser{Name: "x"})
		assert.NoError(t, err)

		var values []string
		for v := range stream {
			values = append(values, v)
		}
		assert.Equal(t, []string{"x-1", "x-2"}, values)
	})

	t.Run("client behaviors wrap facade dispatches", func(t *testing.T) {
		var trace []string
		c := NewClient(WithClientBehaviors(behaviors.New("trace", func(ctx context.Context, request any, next dispatch.Handler) (any, error) {
			trace = append(trace, "before")
			resp, err := next.Handle(ctx, request)
			trace = append(trace, "after")
			return resp, err
		})))
		assert.NoError(t, dispatch.RegisterRequestHandlerFunc(c.Registry(), func(req createUser) (createUserResult, error) {
			trace = append(trace, "handler")
			return createUserResult{}, nil
		}))

		_, err := Send[createUserResult](c, createUser{})

		assert.NoError(t, err)
		assert.Equal(t, []string{"before", "handler", "after"}, trace)
	})

	t.Run("async publish failures surface through the facade", func(t *testing.T) {
		c := NewClient()
		boom := errors.New("boom")
		assert.NoError(t, dispatch.RegisterAsyncNotificationHandlerFunc(c.Registry(), func(n userRegistered) *contracts.Future[contracts.Unit] {
			return contracts.FailedFuture[contracts.Unit](boom)
		}))

		_, err := PublishAsync(c, userRegistered{}).Wait(context.Background())

		assert.Equal(t, boom, err)
	})

	t.Run("context publish honors cancellation through the facade", func(t *testing.T) {
		c := NewClient()
		assert.NoError(t, dispatch.RegisterContextNotificationHandler[userRegistered](c.Registry(),
			contracts.ContextNotificationHandlerFunc[userRegistered](func(ctx context.Context, n userRegistered) *contracts.Future[contracts.Unit] {
				return contracts.ResolvedFuture(contracts.UnitValue)
			})))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := PublishContext(ctx, c, userRegistered{}).Wait(context.Background())

		assert.ErrorIs(t, err, contracts.ErrCancelled)
	})
}
