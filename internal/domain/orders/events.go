package orders

import (
	"github.com/crediario/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Event types for the orders context
const (
	EventOrderRequested = "orders.request.created"
	EventOrderDecided   = "orders.request.decided"
	EventOrderDeleted   = "orders.request.deleted"
)

const aggregateTypeOrderRequest = "OrderRequest"

// OrderRequestedEvent is raised when a customer submits a purchase request
type OrderRequestedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
	Product    string    `json:"product"`
	Amount     string    `json:"amount"`
}

// NewOrderRequestedEvent creates an OrderRequestedEvent
func NewOrderRequestedEvent(o *OrderRequest) *OrderRequestedEvent {
	return &OrderRequestedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderRequested, aggregateTypeOrderRequest, o.ID),
		CustomerID:      o.CustomerID,
		Product:         o.Product,
		Amount:          o.Amount.StringFixed(),
	}
}

// OrderDecidedEvent is raised exactly once per request, on approval or
// rejection
type OrderDecidedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID   `json:"customer_id"`
	Decision   OrderStatus `json:"decision"`
	Note       string      `json:"note,omitempty"`
}

// NewOrderDecidedEvent creates an OrderDecidedEvent
func NewOrderDecidedEvent(o *OrderRequest) *OrderDecidedEvent {
	return &OrderDecidedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderDecided, aggregateTypeOrderRequest, o.ID),
		CustomerID:      o.CustomerID,
		Decision:        o.Status,
		Note:            o.DecisionNote,
	}
}

// OrderDeletedEvent is raised when an admin removes a request in any state
type OrderDeletedEvent struct {
	shared.BaseDomainEvent
}

// NewOrderDeletedEvent creates an OrderDeletedEvent
func NewOrderDeletedEvent(id uuid.UUID) *OrderDeletedEvent {
	return &OrderDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderDeleted, aggregateTypeOrderRequest, id),
	}
}
