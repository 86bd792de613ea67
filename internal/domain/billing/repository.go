package billing

import (
	"context"
	"time"

	"github.com/crediario/backend/internal/domain/shared"
	"github.com/crediario/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ContractRepository defines the interface for contract persistence.
// Save and Delete are transactional over the contract and its installments;
// a contract row without its ledger must never be observable.
type ContractRepository interface {
	// FindByID finds a contract with its installments loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Contract, error)

	// FindByCustomer lists a customer's contracts with installments loaded,
	// newest first
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]Contract, error)

	// FindAll lists contracts matching the filter, installments loaded
	FindAll(ctx context.Context, filter shared.Filter) ([]Contract, error)

	// FindRecent lists the most recently created contracts
	FindRecent(ctx context.Context, limit int) ([]Contract, error)

	// Count counts contracts matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save persists the contract and all installments atomically
	Save(ctx context.Context, contract *Contract) error

	// Delete removes the contract and cascades to its installments
	Delete(ctx context.Context, id uuid.UUID) error

	// SumTotalsCreatedInRange sums immutable contract totals for contracts
	// created in [start, end). Used for deal-volume reporting.
	SumTotalsCreatedInRange(ctx context.Context, start, end time.Time) (valueobject.Money, int64, error)
}

// InstallmentRepository defines the interface for installment persistence
type InstallmentRepository interface {
	// FindByID finds an installment by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Installment, error)

	// ListByContract lists a contract's installments ordered by ordinal
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]Installment, error)

	// ListByCustomer lists all installments across a customer's contracts
	// ordered by due date ascending
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]Installment, error)

	// Save updates a single installment
	Save(ctx context.Context, installment *Installment) error

	// Delete removes a single installment without rebalancing the rest
	Delete(ctx context.Context, id uuid.UUID) error

	// SumPaidInRange sums values and counts installments settled in
	// [start, end) by paid time
	SumPaidInRange(ctx context.Context, start, end time.Time) (valueobject.Money, int64, error)
}
