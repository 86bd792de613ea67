package event

import (
	"context"
	"errors"
	"testing"

	"github.com/crediario/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingHandler struct {
	types    []string
	received []shared.DomainEvent
	fail     bool
}

func (h *recordingHandler) Handle(ctx context.Context, evt shared.DomainEvent) error {
	if h.fail {
		return errors.New("handler failure")
	}
	h.received = append(h.received, evt)
	return nil
}

func (h *recordingHandler) EventTypes() []string {
	return h.types
}

func newEvent(eventType string) shared.DomainEvent {
	evt := shared.NewBaseDomainEvent(eventType, "Test", uuid.New())
	return &evt
}

func TestInMemoryEventBus(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers to type-matched handlers", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		paid := &recordingHandler{types: []string{"billing.installment.paid"}}
		other := &recordingHandler{types: []string{"orders.request.decided"}}
		bus.Subscribe(paid)
		bus.Subscribe(other)

		require.NoError(t, bus.Publish(ctx, newEvent("billing.installment.paid")))

		assert.Len(t, paid.received, 1)
		assert.Empty(t, other.received)
	})

	t.Run("wildcard handler receives every event", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		audit := &recordingHandler{}
		bus.Subscribe(audit)

		require.NoError(t, bus.Publish(ctx,
			newEvent("billing.contract.created"),
			newEvent("orders.request.created"),
		))

		assert.Len(t, audit.received, 2)
	})

	t.Run("failing handler does not block the rest", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		failing := &recordingHandler{types: []string{"billing.contract.created"}, fail: true}
		healthy := &recordingHandler{types: []string{"billing.contract.created"}}
		bus.Subscribe(failing)
		bus.Subscribe(healthy)

		require.NoError(t, bus.Publish(ctx, newEvent("billing.contract.created")))
		assert.Len(t, healthy.received, 1)
	})
}
