package billing

import (
	"github.com/crediario/backend/internal/domain/shared"
	"github.com/crediario/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ContractType classifies a contract
type ContractType string

const (
	ContractTypeBusiness ContractType = "business"
	ContractTypeSale     ContractType = "sale"
	ContractTypeService  ContractType = "service"
)

// IsValid checks if the contract type is valid
func (t ContractType) IsValid() bool {
	switch t {
	case ContractTypeBusiness, ContractTypeSale, ContractTypeService:
		return true
	}
	return false
}

// ContractStatus is derived from the installment ledger, never stored
type ContractStatus string

const (
	ContractStatusOpen ContractStatus = "open"
	ContractStatusLate ContractStatus = "late"
	ContractStatusPaid ContractStatus = "paid"
)

// Contract is a financed sale. Total is fixed at creation and is the
// canonical deal size for reporting; editing or deleting individual
// installments later never rewrites it.
type Contract struct {
	shared.BaseAggregateRoot
	CustomerID       uuid.UUID
	Total            valueobject.Money
	InstallmentCount int
	FirstDueDate     valueobject.Date
	Type             ContractType
	Installments     []Installment
}

// NewContract creates a contract together with its full installment plan.
// The aggregate is born complete; the repository persists contract and
// installments in one transaction.
func NewContract(customerID uuid.UUID, total valueobject.Money, count int, firstDue valueobject.Date, contractType ContractType) (*Contract, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID is required")
	}
	if !contractType.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONTRACT_TYPE", "Contract type must be business, sale or service")
	}

	plan, err := GeneratePlan(total, count, firstDue)
	if err != nil {
		return nil, err
	}

	contract := &Contract{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Total:             total,
		InstallmentCount:  count,
		FirstDueDate:      firstDue,
		Type:              contractType,
	}

	contract.Installments = make([]Installment, len(plan))
	for i, planned := range plan {
		contract.Installments[i] = newInstallment(contract.ID, planned)
	}

	contract.AddDomainEvent(NewContractCreatedEvent(contract))

	return contract, nil
}

// DeriveStatus computes the contract status from its installments as of the
// given calendar date. Paid when nothing is outstanding, late when any
// unpaid installment is strictly past due, open otherwise. The result is
// never cached because late depends on the current date.
func (c *Contract) DeriveStatus(asOf valueobject.Date) ContractStatus {
	return DeriveStatus(c.Installments, asOf)
}

// DeriveStatus computes an aggregate status over any set of installments,
// also used for the customer-level late flag across contracts.
func DeriveStatus(installments []Installment, asOf valueobject.Date) ContractStatus {
	unpaid := 0
	for i := range installments {
		if installments[i].IsPaid() {
			continue
		}
		unpaid++
		if installments[i].IsOverdue(asOf) {
			return ContractStatusLate
		}
	}
	if unpaid == 0 {
		return ContractStatusPaid
	}
	return ContractStatusOpen
}
