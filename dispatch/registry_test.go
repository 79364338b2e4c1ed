package dispatch

import (
	"fmt"
	"sync"
	"testing"

	"github.com/Ngnintedem3004/MediatR/contracts"
	"github.com/stretchr/testify/assert"
)

// Test message types
type ping struct {
	Value string
}

type pong struct {
	Value string
}

type userCreated struct {
	contracts.BaseNotification
	UserID string
}

func TestRegistryResolveOne(t *testing.T) {
	t.Run("resolves the single registered handler", func(t *testing.T) {
		r := NewRegistry()
		handler := contracts.RequestHandlerFunc[ping, pong](func(req ping) (pong, error) {
			return pong{Value: req.Value}, nil
		})

		err := RegisterRequestHandler[ping, pong](r, handler)
		assert.NoError(t, err)

		raw, err := r.ResolveOne(typeOf[ping](), contracts.ShapeSync)
		assert.NoError(t, err)
		assert.NotNil(t, raw)
	})

	t.Run("fails with ErrHandlerNotFound for an unregistered type", func(t *testing.T) {
		r := NewRegistry()

		_, err := r.ResolveOne(typeOf[ping](), contracts.ShapeSync)

		assert.ErrorIs(t, err, contracts.ErrHandlerNotFound)
	})

	t.Run("fails with ErrMultipleHandlers for ambiguous registration", func(t *testing.T) {
		r := NewRegistry()
		handler := contracts.RequestHandlerFunc[ping, pong](func(req ping) (pong, error) {
			return pong{}, nil
		})

		assert.NoError(t, RegisterRequestHandler[ping, pong](r, handler))
		assert.NoError(t, RegisterRequestHandler[ping, pong](r, handler))

		_, err := r.ResolveOne(typeOf[ping](), contracts.ShapeSync)

		assert.ErrorIs(t, err, contracts.ErrMultipleHandlers)
	})

	t.Run("shapes do not cross-match", func(t *testing.T) {
		r := NewRegistry()
		handler := contracts.RequestHandlerFunc[ping, pong](func(req ping) (pong, error) {
			return pong{}, nil
		})
		assert.NoError(t, RegisterRequestHandler[ping, pong](r, handler))

		_, err := r.ResolveOne(typeOf[ping](), contracts.ShapeAsync)

		assert.ErrorIs(t, err, contracts.ErrHandlerNotFound)
	})
}

func TestRegistryResolveMany(t *testing.T) {
	t.Run("returns handlers in registration order", func(t *testing.T) {
		r := NewRegistry()
		for i := 0; i < 3; i++ {
			err := RegisterNotificationHandlerFunc(r, func(n userCreated) error {
				return nil
			})
			assert.NoError(t, err)
		}

		handlers := r.ResolveMany(typeOf[userCreated](), contracts.ShapeSync)

		assert.Len(t, handlers, 3)
	})

	t.Run("returns nil for an unregistered type", func(t *testing.T) {
		r := NewRegistry()

		handlers := r.ResolveMany(typeOf[userCreated](), contracts.ShapeSync)

		assert.Nil(t, handlers)
	})

	t.Run("result is a copy unaffected by later registrations", func(t *testing.T) {
		r := NewRegistry()
		assert.NoError(t, RegisterNotificationHandlerFunc(r, func(n userCreated) error { return nil }))

		handlers := r.ResolveMany(typeOf[userCreated](), contracts.ShapeSync)
		assert.NoError(t, RegisterNotificationHandlerFunc(r, func(n userCreated) error { return nil }))

		assert.Len(t, handlers, 1)
	})
}

func TestRegistryRegistration(t *testing.T) {
	t.Run("rejects nil handlers", func(t *testing.T) {
		r := NewRegistry()

		assert.Error(t, RegisterRequestHandler[ping, pong](r, nil))
		assert.Error(t, RegisterNotificationHandler[userCreated](r, nil))
		assert.Error(t, RegisterRequestHandlerFunc[ping, pong](r, nil))
	})

	t.Run("unregister removes all handlers for a shape", func(t *testing.T) {
		r := NewRegistry()
		handler := contracts.RequestHandlerFunc[ping, pong](func(req ping) (pong, error) {
			return pong{}, nil
		})
		assert.NoError(t, RegisterRequestHandler[ping, pong](r, handler))
		assert.NoError(t, RegisterRequestHandler[ping, pong](r, handler))

		removed := UnregisterRequestHandlers[ping](r, contracts.ShapeSync)

		assert.Equal(t, 2, removed)
		_, err := r.ResolveOne(typeOf[ping](), contracts.ShapeSync)
		assert.ErrorIs(t, err, contracts.ErrHandlerNotFound)
	})

	t.Run("unregister notification handlers", func(t *testing.T) {
		r := NewRegistry()
		assert.NoError(t, RegisterNotificationHandlerFunc(r, func(n userCreated) error { return nil }))

		removed := UnregisterNotificationHandlers[userCreated](r, contracts.ShapeSync)

		assert.Equal(t, 1, removed)
		assert.Empty(t, r.ResolveMany(typeOf[userCreated](), contracts.ShapeSync))
	})

	t.Run("registered type listings", func(t *testing.T) {
		r := NewRegistry()
		assert.NoError(t, RegisterRequestHandlerFunc(r, func(req ping) (pong, error) { return pong{}, nil }))
		assert.NoError(t, RegisterNotificationHandlerFunc(r, func(n userCreated) error { return nil }))

		assert.Len(t, r.RegisteredRequestTypes(), 1)
		assert.Len(t, r.RegisteredNotificationTypes(), 1)
		assert.Equal(t, typeOf[ping](), r.RegisteredRequestTypes()[0])
	})
}

func TestRegistryConcurrentReads(t *testing.T) {
	r := NewRegistry()
	assert.NoError(t, RegisterRequestHandlerFunc(r, func(req ping) (pong, error) {
		return pong{Value: req.Value}, nil
	}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			raw, err := r.ResolveOne(typeOf[ping](), contracts.ShapeSync)
			assert.NoError(t, err)
			handler := raw.(contracts.RequestHandler[ping, pong])
			resp, err := handler.Handle(ping{Value: fmt.Sprintf("v%d", i)})
			assert.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("v%d", i), resp.Value)
		}(i)
	}
	wg.Wait()
}
