package orders

import (
	"time"

	"github.com/crediario/backend/internal/domain/orders"
	"github.com/google/uuid"
)

// CreateOrderRequest represents a customer's purchase request
type CreateOrderRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	Product    string    `json:"product" binding:"required"`
	Amount     string    `json:"amount" binding:"required"`
}

// DecideOrderRequest represents a staff decision on a pending request
type DecideOrderRequest struct {
	Decision string `json:"decision" binding:"required"`
	Note     string `json:"note"`
}

// OrderResponse represents an order request returned to callers
type OrderResponse struct {
	ID           uuid.UUID  `json:"id"`
	CustomerID   uuid.UUID  `json:"customer_id"`
	Product      string     `json:"product"`
	Amount       string     `json:"amount"`
	Status       string     `json:"status"`
	DecisionNote string     `json:"decision_note,omitempty"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ToOrderResponse converts a domain order request to a response DTO
func ToOrderResponse(o *orders.OrderRequest) OrderResponse {
	return OrderResponse{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		Product:      o.Product,
		Amount:       o.Amount.StringFixed(),
		Status:       string(o.Status),
		DecisionNote: o.DecisionNote,
		DecidedAt:    o.DecidedAt,
		CreatedAt:    o.CreatedAt,
	}
}
