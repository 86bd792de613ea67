package billing

import (
	"github.com/crediario/backend/internal/domain/shared"
	"github.com/crediario/backend/internal/domain/shared/valueobject"
)

// PlannedInstallment is one line of a generated payment plan, before any
// entity identity or persistence concerns are attached.
type PlannedInstallment struct {
	Ordinal int
	Value   valueobject.Money
	DueDate valueobject.Date
}

// GeneratePlan splits a contract total into count monthly installments
// starting at firstDue. The split works on integer centavos, earlier
// installments absorb the remainder, and due dates advance by whole calendar
// months from firstDue. The function is pure; persisting the plan is the
// repository's job.
func GeneratePlan(total valueobject.Money, count int, firstDue valueobject.Date) ([]PlannedInstallment, error) {
	if count < 1 {
		return nil, shared.NewDomainError("INVALID_INSTALLMENT_COUNT", "Installment count must be at least 1")
	}
	if total.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TOTAL", "Contract total cannot be negative")
	}
	if firstDue.IsZero() {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "First due date is required")
	}

	values, err := total.Split(count)
	if err != nil {
		return nil, err
	}

	plan := make([]PlannedInstallment, count)
	for i := 0; i < count; i++ {
		plan[i] = PlannedInstallment{
			Ordinal: i + 1,
			Value:   values[i],
			DueDate: firstDue.AddMonths(i),
		}
	}
	return plan, nil
}
