package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/Ngnintedem3004/MediatR/contracts"
	"github.com/stretchr/testify/assert"
)

type deleteUser struct {
	UserID string
}

// recordingVoidHandler remembers what it was asked to do and can fail.
type recordingVoidHandler struct {
	executed []string
	err      error
}

func (h *recordingVoidHandler) Execute(req deleteUser) error {
	h.executed = append(h.executed, req.UserID)
	return h.err
}

func TestVoidRequestAdapter(t *testing.T) {
	t.Run("success always yields the Unit value", func(t *testing.T) {
		core := &recordingVoidHandler{}
		adapter := NewVoidRequestAdapter[deleteUser](core)

		resp, err := adapter.Handle(deleteUser{UserID: "u1"})

		assert.NoError(t, err)
		assert.Equal(t, contracts.UnitValue, resp)
		assert.Equal(t, []string{"u1"}, core.executed)
	})

	t.Run("core faults pass through untranslated", func(t *testing.T) {
		boom := errors.New("boom")
		adapter := NewVoidRequestAdapter[deleteUser](&recordingVoidHandler{err: boom})

		_, err := adapter.Handle(deleteUser{})

		assert.Equal(t, boom, err)
	})

	t.Run("void request flows through the normal send path", func(t *testing.T) {
		m, r := newTestMediator(t)
		core := &recordingVoidHandler{}
		assert.NoError(t, RegisterVoidRequestHandler[deleteUser](r, core))

		resp, err := Send[contracts.Unit](m, deleteUser{UserID: "u2"})

		assert.NoError(t, err)
		assert.Equal(t, contracts.UnitValue, resp)
		assert.Equal(t, []string{"u2"}, core.executed)
	})
}

func TestAsyncVoidRequestAdapter(t *testing.T) {
	t.Run("future resolves to the Unit value on success", func(t *testing.T) {
		m, r := newTestMediator(t)
		core := &recordingVoidHandler{}
		assert.NoError(t, RegisterAsyncVoidRequestHandler[deleteUser](r, core))

		resp, err := SendAsync[contracts.Unit](m, deleteUser{UserID: "u3"}).Wait(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, contracts.UnitValue, resp)
		assert.Equal(t, []string{"u3"}, core.executed)
	})

	t.Run("core faults fail the future", func(t *testing.T) {
		boom := errors.New("boom")
		adapter := NewAsyncVoidRequestAdapter[deleteUser](&recordingVoidHandler{err: boom})

		_, err := adapter.Handle(deleteUser{}).Wait(context.Background())

		assert.Equal(t, boom, err)
	})
}

func TestContextVoidRequestAdapter(t *testing.T) {
	t.Run("context reaches the core method unchanged", func(t *testing.T) {
		m, r := newTestMediator(t)
		type ctxKey struct{}
		var observed string
		assert.NoError(t, RegisterContextVoidRequestHandler[deleteUser](r,
			ContextVoidRequestHandlerFunc[deleteUser](func(ctx context.Context, req deleteUser) error {
				observed, _ = ctx.Value(ctxKey{}).(string)
				return nil
			})))

		ctx := context.WithValue(context.Background(), ctxKey{}, "threaded")
		resp, err := SendContext[contracts.Unit](ctx, m, deleteUser{}).Wait(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, contracts.UnitValue, resp)
		assert.Equal(t, "threaded", observed)
	})

	t.Run("core faults fail the future untranslated", func(t *testing.T) {
		boom := errors.New("boom")
		adapter := NewContextVoidRequestAdapter[deleteUser](
			ContextVoidRequestHandlerFunc[deleteUser](func(ctx context.Context, req deleteUser) error {
				return boom
			}))

		_, err := adapter.Handle(context.Background(), deleteUser{}).Wait(context.Background())

		assert.Equal(t, boom, err)
	})

	t.Run("func adapter implements the core capability", func(t *testing.T) {
		called := false
		fn := VoidRequestHandlerFunc[deleteUser](func(req deleteUser) error {
			called = true
			return nil
		})

		assert.NoError(t, fn.Execute(deleteUser{}))
		assert.True(t, called)
	})
}
