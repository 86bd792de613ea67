package billing

import (
	"time"

	"github.com/crediario/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Event types for the billing context
const (
	EventContractCreated    = "billing.contract.created"
	EventContractDeleted    = "billing.contract.deleted"
	EventInstallmentPaid    = "billing.installment.paid"
	EventInstallmentEdited  = "billing.installment.edited"
	EventInstallmentDeleted = "billing.installment.deleted"
)

const (
	aggregateTypeContract    = "Contract"
	aggregateTypeInstallment = "Installment"
)

// ContractCreatedEvent is raised when a contract and its plan are created
type ContractCreatedEvent struct {
	shared.BaseDomainEvent
	CustomerID       uuid.UUID `json:"customer_id"`
	Total            string    `json:"total"`
	InstallmentCount int       `json:"installment_count"`
}

// NewContractCreatedEvent creates a ContractCreatedEvent
func NewContractCreatedEvent(c *Contract) *ContractCreatedEvent {
	return &ContractCreatedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventContractCreated, aggregateTypeContract, c.ID),
		CustomerID:       c.CustomerID,
		Total:            c.Total.StringFixed(),
		InstallmentCount: c.InstallmentCount,
	}
}

// ContractDeletedEvent is raised when a contract is removed with its ledger
type ContractDeletedEvent struct {
	shared.BaseDomainEvent
	CustomerID uuid.UUID `json:"customer_id"`
}

// NewContractDeletedEvent creates a ContractDeletedEvent
func NewContractDeletedEvent(contractID, customerID uuid.UUID) *ContractDeletedEvent {
	return &ContractDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventContractDeleted, aggregateTypeContract, contractID),
		CustomerID:      customerID,
	}
}

// InstallmentPaidEvent is raised on the pending to paid transition. Repeated
// settlement calls on an already-paid installment raise nothing.
type InstallmentPaidEvent struct {
	shared.BaseDomainEvent
	ContractID uuid.UUID `json:"contract_id"`
	Ordinal    int       `json:"ordinal"`
	Value      string    `json:"value"`
	PaidAt     time.Time `json:"paid_at"`
}

// NewInstallmentPaidEvent creates an InstallmentPaidEvent
func NewInstallmentPaidEvent(i *Installment, paidAt time.Time) *InstallmentPaidEvent {
	return &InstallmentPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventInstallmentPaid, aggregateTypeInstallment, i.ID),
		ContractID:      i.ContractID,
		Ordinal:         i.Ordinal,
		Value:           i.Value.StringFixed(),
		PaidAt:          paidAt,
	}
}

// InstallmentEditedEvent is raised on an administrative correction
type InstallmentEditedEvent struct {
	shared.BaseDomainEvent
	ContractID uuid.UUID `json:"contract_id"`
}

// NewInstallmentEditedEvent creates an InstallmentEditedEvent
func NewInstallmentEditedEvent(i *Installment) *InstallmentEditedEvent {
	return &InstallmentEditedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventInstallmentEdited, aggregateTypeInstallment, i.ID),
		ContractID:      i.ContractID,
	}
}

// InstallmentDeletedEvent is raised when a single installment is removed
type InstallmentDeletedEvent struct {
	shared.BaseDomainEvent
	ContractID uuid.UUID `json:"contract_id"`
}

// NewInstallmentDeletedEvent creates an InstallmentDeletedEvent
func NewInstallmentDeletedEvent(installmentID, contractID uuid.UUID) *InstallmentDeletedEvent {
	return &InstallmentDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventInstallmentDeleted, aggregateTypeInstallment, installmentID),
		ContractID:      contractID,
	}
}
