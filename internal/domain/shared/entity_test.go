package shared

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBaseEntity(t *testing.T) {
	t.Run("new entity gets an id and matching timestamps", func(t *testing.T) {
		e := NewBaseEntity()
		assert.NotEqual(t, uuid.Nil, e.GetID())
		assert.Equal(t, e.GetCreatedAt(), e.GetUpdatedAt())
	})

	t.Run("touch moves only the update timestamp", func(t *testing.T) {
		e := NewBaseEntity()
		created := e.GetCreatedAt()

		later := created.Add(time.Hour)
		e.Touch(later)

		assert.Equal(t, created, e.GetCreatedAt())
		assert.Equal(t, later, e.GetUpdatedAt())
	})
}
