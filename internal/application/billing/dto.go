package billing

import (
	"time"

	"github.com/crediario/backend/internal/domain/billing"
	"github.com/crediario/backend/internal/domain/shared"
	"github.com/crediario/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// CreateContractRequest represents a contract creation request. Total is a
// decimal string and the first due date is an ISO calendar date.
type CreateContractRequest struct {
	CustomerID       uuid.UUID `json:"customer_id" binding:"required"`
	Total            string    `json:"total" binding:"required"`
	InstallmentCount int       `json:"installment_count" binding:"required"`
	FirstDueDate     string    `json:"first_due_date" binding:"required"`
	Type             string    `json:"type" binding:"required"`
}

// EditInstallmentRequest represents an administrative partial update of one
// installment; nil fields keep their stored values
type EditInstallmentRequest struct {
	Value   *string    `json:"value"`
	DueDate *string    `json:"due_date"`
	Status  *string    `json:"status"`
	PaidAt  *time.Time `json:"paid_at"`
}

// ContractListFilter represents filtering options for contract lists
type ContractListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
}

// InstallmentResponse represents one installment returned to callers
type InstallmentResponse struct {
	ID         uuid.UUID  `json:"id"`
	ContractID uuid.UUID  `json:"contract_id"`
	Ordinal    int        `json:"ordinal"`
	Value      string     `json:"value"`
	DueDate    string     `json:"due_date"`
	Status     string     `json:"status"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
}

// ContractResponse represents a contract with its ledger and derived status
type ContractResponse struct {
	ID               uuid.UUID             `json:"id"`
	CustomerID       uuid.UUID             `json:"customer_id"`
	Total            string                `json:"total"`
	InstallmentCount int                   `json:"installment_count"`
	FirstDueDate     string                `json:"first_due_date"`
	Type             string                `json:"type"`
	Status           string                `json:"status"`
	CreatedAt        time.Time             `json:"created_at"`
	Installments     []InstallmentResponse `json:"installments,omitempty"`
}

// MarkPaidResult reports the outcome of a settlement call. AlreadyPaid is
// true when the call was absorbed by idempotency and nothing changed.
type MarkPaidResult struct {
	Installment InstallmentResponse `json:"installment"`
	AlreadyPaid bool                `json:"already_paid"`
}

// PeriodTotal is a money sum together with the number of records it covers
type PeriodTotal struct {
	Total string `json:"total"`
	Count int64  `json:"count"`
}

// DashboardResponse aggregates the KPI figures shown on the admin dashboard
type DashboardResponse struct {
	ReceivedMonth   PeriodTotal        `json:"received_month"`
	SalesMonth      PeriodTotal        `json:"sales_month"`
	DealsYear       PeriodTotal        `json:"deals_year"`
	PendingOrders   int64              `json:"pending_orders"`
	RecentContracts []ContractResponse `json:"recent_contracts"`
}

// ToInstallmentResponse converts a domain installment to a response DTO
func ToInstallmentResponse(i *billing.Installment) InstallmentResponse {
	return InstallmentResponse{
		ID:         i.ID,
		ContractID: i.ContractID,
		Ordinal:    i.Ordinal,
		Value:      i.Value.StringFixed(),
		DueDate:    i.DueDate.String(),
		Status:     string(i.Status),
		PaidAt:     i.PaidAt,
	}
}

// ToContractResponse converts a domain contract to a response DTO, deriving
// the aggregate status as of the given date
func ToContractResponse(c *billing.Contract, asOf valueobject.Date) ContractResponse {
	installments := make([]InstallmentResponse, len(c.Installments))
	for i := range c.Installments {
		installments[i] = ToInstallmentResponse(&c.Installments[i])
	}
	return ContractResponse{
		ID:               c.ID,
		CustomerID:       c.CustomerID,
		Total:            c.Total.StringFixed(),
		InstallmentCount: c.InstallmentCount,
		FirstDueDate:     c.FirstDueDate.String(),
		Type:             string(c.Type),
		Status:           string(c.DeriveStatus(asOf)),
		CreatedAt:        c.CreatedAt,
		Installments:     installments,
	}
}

func parseMoney(value string) (valueobject.Money, error) {
	m, err := valueobject.NewMoneyFromString(value)
	if err != nil {
		return valueobject.Money{}, shared.NewDomainError("INVALID_AMOUNT", "Amount must be a decimal with at most two decimal places")
	}
	return m, nil
}

func parseDate(value string) (valueobject.Date, error) {
	d, err := valueobject.ParseDate(value)
	if err != nil {
		return valueobject.Date{}, shared.NewDomainError("INVALID_DATE", "Date must be in YYYY-MM-DD form")
	}
	return d, nil
}
