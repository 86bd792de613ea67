package billing

import (
	"time"

	"github.com/crediario/backend/internal/domain/shared"
	"github.com/crediario/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// InstallmentStatus is the payment state of a single installment
type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "pending"
	InstallmentStatusPaid    InstallmentStatus = "paid"
)

// IsValid checks if the installment status is valid
func (s InstallmentStatus) IsValid() bool {
	return s == InstallmentStatusPending || s == InstallmentStatusPaid
}

// Installment is one scheduled payment of a contract. Its ordinal is fixed at
// plan generation and never renumbered, even when the ledger is displayed
// sorted by due date.
type Installment struct {
	shared.BaseEntity
	ContractID uuid.UUID
	Ordinal    int
	Value      valueobject.Money
	DueDate    valueobject.Date
	Status     InstallmentStatus
	PaidAt     *time.Time
}

func newInstallment(contractID uuid.UUID, planned PlannedInstallment) Installment {
	return Installment{
		BaseEntity: shared.NewBaseEntity(),
		ContractID: contractID,
		Ordinal:    planned.Ordinal,
		Value:      planned.Value,
		DueDate:    planned.DueDate,
		Status:     InstallmentStatusPending,
	}
}

// IsPaid reports whether the installment has been settled
func (i *Installment) IsPaid() bool {
	return i.Status == InstallmentStatusPaid
}

// IsOverdue reports whether the installment is unpaid and strictly past due
// as of the given calendar date
func (i *Installment) IsOverdue(asOf valueobject.Date) bool {
	return !i.IsPaid() && i.DueDate.Before(asOf)
}

// MarkPaid transitions the installment to paid with the given settlement
// time. Marking an already-paid installment is a no-op: the original paid
// time is kept so retried gateway callbacks never shift it or double-count
// in reports. The return value reports whether this call changed state.
func (i *Installment) MarkPaid(at time.Time) bool {
	if i.IsPaid() {
		return false
	}
	i.Status = InstallmentStatusPaid
	paidAt := at
	i.PaidAt = &paidAt
	i.Touch(time.Now())
	return true
}

// InstallmentPatch carries an administrative partial update. Nil fields keep
// their current value.
type InstallmentPatch struct {
	Value   *valueobject.Money
	DueDate *valueobject.Date
	Status  *InstallmentStatus
	PaidAt  *time.Time
}

// ApplyEdit applies an administrative correction. Setting status to paid
// without an explicit paid time defaults it to now; setting status back to
// pending clears it, keeping paid time non-null exactly when status is paid.
func (i *Installment) ApplyEdit(patch InstallmentPatch, now time.Time) error {
	if patch.Value != nil {
		if patch.Value.IsNegative() {
			return shared.NewDomainError("INVALID_VALUE", "Installment value cannot be negative")
		}
		i.Value = *patch.Value
	}
	if patch.DueDate != nil {
		if patch.DueDate.IsZero() {
			return shared.NewDomainError("INVALID_DUE_DATE", "Due date cannot be empty")
		}
		i.DueDate = *patch.DueDate
	}
	if patch.Status != nil {
		if !patch.Status.IsValid() {
			return shared.NewDomainError("INVALID_STATUS", "Installment status must be pending or paid")
		}
		i.Status = *patch.Status
		switch *patch.Status {
		case InstallmentStatusPaid:
			if patch.PaidAt != nil {
				i.PaidAt = patch.PaidAt
			} else if i.PaidAt == nil {
				paidAt := now
				i.PaidAt = &paidAt
			}
		case InstallmentStatusPending:
			i.PaidAt = nil
		}
	} else if patch.PaidAt != nil {
		if !i.IsPaid() {
			return shared.NewDomainError("INVALID_STATE", "Cannot set paid time on a pending installment")
		}
		i.PaidAt = patch.PaidAt
	}

	i.Touch(now)
	return nil
}
