package billing

import (
	"context"

	appartner "github.com/crediario/backend/internal/application/partner"
	"github.com/crediario/backend/internal/domain/billing"
	"github.com/crediario/backend/internal/domain/partner"
	"github.com/crediario/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// PortalOverview is what an authenticated customer sees: their own data,
// contracts with derived status, and the full ledger ordered by due date
type PortalOverview struct {
	Customer        appartner.CustomerResponse `json:"customer"`
	Contracts       []ContractResponse         `json:"contracts"`
	Installments    []InstallmentResponse      `json:"installments"`
	NextInstallment *InstallmentResponse       `json:"next_installment,omitempty"`
	HasLate         bool                       `json:"has_late"`
}

// PortalService serves the customer-facing portal. It only ever reads data
// scoped to the authenticated customer id; authorization happened upstream.
type PortalService struct {
	customerRepo    partner.CustomerRepository
	contractRepo    billing.ContractRepository
	installmentRepo billing.InstallmentRepository
}

// NewPortalService creates a new PortalService
func NewPortalService(
	customerRepo partner.CustomerRepository,
	contractRepo billing.ContractRepository,
	installmentRepo billing.InstallmentRepository,
) *PortalService {
	return &PortalService{
		customerRepo:    customerRepo,
		contractRepo:    contractRepo,
		installmentRepo: installmentRepo,
	}
}

// Overview assembles the portal home view for one customer
func (s *PortalService) Overview(ctx context.Context, customerID uuid.UUID) (*PortalOverview, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	contracts, err := s.contractRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	installments, err := s.installmentRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	today := valueobject.Today()
	contractResponses := make([]ContractResponse, len(contracts))
	hasLate := false
	for i := range contracts {
		contractResponses[i] = ToContractResponse(&contracts[i], today)
		if contractResponses[i].Status == string(billing.ContractStatusLate) {
			hasLate = true
		}
	}

	overview := &PortalOverview{
		Customer:     appartner.ToCustomerResponse(customer),
		Contracts:    contractResponses,
		Installments: toInstallmentResponses(installments),
		HasLate:      hasLate,
	}

	// installments arrive ordered by due date, so the first pending one is
	// the next payment
	for i := range installments {
		if !installments[i].IsPaid() {
			next := ToInstallmentResponse(&installments[i])
			overview.NextInstallment = &next
			break
		}
	}

	return overview, nil
}

// ListInstallments retrieves the customer's full ledger ordered by due date
func (s *PortalService) ListInstallments(ctx context.Context, customerID uuid.UUID) ([]InstallmentResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}
	installments, err := s.installmentRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toInstallmentResponses(installments), nil
}
