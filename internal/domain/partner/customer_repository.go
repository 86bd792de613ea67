package partner

import (
	"context"

	"github.com/crediario/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByTaxID finds a customer by normalized (digits-only) tax id
	FindByTaxID(ctx context.Context, taxID string) (*Customer, error)

	// FindAll lists customers matching the filter; Search matches name,
	// email or tax id
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)

	// Count counts customers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByTaxID reports whether a customer with the tax id exists
	ExistsByTaxID(ctx context.Context, taxID string) (bool, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error

	// Delete removes the customer and cascades to contracts and installments
	Delete(ctx context.Context, id uuid.UUID) error
}
