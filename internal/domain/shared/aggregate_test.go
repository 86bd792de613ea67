package shared

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseAggregateRoot(t *testing.T) {
	t.Run("satisfies the AggregateRoot interface", func(t *testing.T) {
		root := NewBaseAggregateRoot()
		var _ AggregateRoot = &root
	})

	t.Run("collects and clears domain events", func(t *testing.T) {
		root := NewBaseAggregateRoot()
		assert.Empty(t, root.GetDomainEvents())

		evt := NewBaseDomainEvent("something.happened", "thing", uuid.New())
		root.AddDomainEvent(&evt)

		events := root.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "something.happened", events[0].EventType())

		root.ClearDomainEvents()
		assert.Empty(t, root.GetDomainEvents())
	})

	t.Run("version starts at 1 and increments", func(t *testing.T) {
		root := NewBaseAggregateRoot()
		assert.Equal(t, 1, root.GetVersion())
		root.IncrementVersion()
		assert.Equal(t, 2, root.GetVersion())
	})
}
