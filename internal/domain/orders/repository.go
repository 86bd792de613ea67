package orders

import (
	"context"

	"github.com/google/uuid"
)

// OrderRequestRepository defines the interface for order request persistence
type OrderRequestRepository interface {
	// FindByID finds an order request by ID
	FindByID(ctx context.Context, id uuid.UUID) (*OrderRequest, error)

	// FindByStatus lists requests with the given status, newest first.
	// A nil status means all statuses.
	FindByStatus(ctx context.Context, status *OrderStatus) ([]OrderRequest, error)

	// FindByCustomer lists a customer's own requests, newest first
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]OrderRequest, error)

	// CountPending counts requests still awaiting a decision
	CountPending(ctx context.Context) (int64, error)

	// Save creates or updates an order request
	Save(ctx context.Context, order *OrderRequest) error

	// Delete removes a request regardless of its state
	Delete(ctx context.Context, id uuid.UUID) error
}
