package orders

import (
	"strings"
	"time"

	"github.com/crediario/backend/internal/domain/shared"
	"github.com/crediario/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order request
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusRejected OrderStatus = "rejected"
)

// IsValid checks if the order status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusApproved || s == OrderStatusRejected
}

// OrderRequest is a customer's purchase ask awaiting a staff decision. The
// lifecycle is one-way: pending to approved or rejected, decided exactly
// once. The decided time and note form the audit trail shown back to the
// customer.
type OrderRequest struct {
	shared.BaseAggregateRoot
	CustomerID   uuid.UUID
	Product      string
	Amount       valueobject.Money
	Status       OrderStatus
	DecidedAt    *time.Time
	DecisionNote string
}

// NewOrderRequest creates a pending order request. The amount is
// customer-declared and not validated against any catalog.
func NewOrderRequest(customerID uuid.UUID, product string, amount valueobject.Money) (*OrderRequest, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID is required")
	}
	product = strings.TrimSpace(product)
	if product == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product description cannot be empty")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Order amount cannot be negative")
	}

	order := &OrderRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Product:           product,
		Amount:            amount,
		Status:            OrderStatusPending,
	}

	order.AddDomainEvent(NewOrderRequestedEvent(order))

	return order, nil
}

// Decide transitions a pending request to approved or rejected. Deciding an
// already-decided request is a conflict, never a silent overwrite of the
// recorded decision.
func (o *OrderRequest) Decide(decision OrderStatus, note string, at time.Time) error {
	if !decision.IsTerminal() {
		return shared.NewDomainError("INVALID_DECISION", "Decision must be approved or rejected")
	}
	if o.Status.IsTerminal() {
		return shared.ErrAlreadyDecided
	}

	o.Status = decision
	decidedAt := at
	o.DecidedAt = &decidedAt
	o.DecisionNote = strings.TrimSpace(note)
	o.Touch(at)
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderDecidedEvent(o))

	return nil
}

// IsPending reports whether the request still awaits a decision
func (o *OrderRequest) IsPending() bool {
	return o.Status == OrderStatusPending
}
