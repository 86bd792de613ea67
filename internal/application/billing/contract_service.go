package billing

import (
	"context"

	"github.com/crediario/backend/internal/domain/billing"
	"github.com/crediario/backend/internal/domain/partner"
	"github.com/crediario/backend/internal/domain/shared"
	"github.com/crediario/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ContractService handles contract lifecycle operations
type ContractService struct {
	contractRepo   billing.ContractRepository
	customerRepo   partner.CustomerRepository
	eventPublisher shared.EventPublisher
}

// NewContractService creates a new ContractService
func NewContractService(
	contractRepo billing.ContractRepository,
	customerRepo partner.CustomerRepository,
	eventPublisher shared.EventPublisher,
) *ContractService {
	return &ContractService{
		contractRepo:   contractRepo,
		customerRepo:   customerRepo,
		eventPublisher: eventPublisher,
	}
}

// Create creates a contract and its full installment plan in one transaction
func (s *ContractService) Create(ctx context.Context, req CreateContractRequest) (*ContractResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	total, err := parseMoney(req.Total)
	if err != nil {
		return nil, err
	}
	firstDue, err := parseDate(req.FirstDueDate)
	if err != nil {
		return nil, err
	}

	contract, err := billing.NewContract(req.CustomerID, total, req.InstallmentCount, firstDue, billing.ContractType(req.Type))
	if err != nil {
		return nil, err
	}

	if err := s.contractRepo.Save(ctx, contract); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		if events := contract.GetDomainEvents(); len(events) > 0 {
			_ = s.eventPublisher.Publish(ctx, events...)
			contract.ClearDomainEvents()
		}
	}

	response := ToContractResponse(contract, valueobject.Today())
	return &response, nil
}

// GetByID retrieves a contract with its ledger and current derived status
func (s *ContractService) GetByID(ctx context.Context, contractID uuid.UUID) (*ContractResponse, error) {
	contract, err := s.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	response := ToContractResponse(contract, valueobject.Today())
	return &response, nil
}

// ListByCustomer retrieves a customer's contracts, newest first
func (s *ContractService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]ContractResponse, error) {
	contracts, err := s.contractRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	today := valueobject.Today()
	responses := make([]ContractResponse, len(contracts))
	for i := range contracts {
		responses[i] = ToContractResponse(&contracts[i], today)
	}
	return responses, nil
}

// List retrieves contracts with pagination
func (s *ContractService) List(ctx context.Context, filter ContractListFilter) ([]ContractResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Search:   filter.Search,
	}

	contracts, err := s.contractRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.contractRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	today := valueobject.Today()
	responses := make([]ContractResponse, len(contracts))
	for i := range contracts {
		responses[i] = ToContractResponse(&contracts[i], today)
	}
	return responses, total, nil
}

// Delete removes a contract and all of its installments in one transaction
func (s *ContractService) Delete(ctx context.Context, contractID uuid.UUID) error {
	contract, err := s.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		return err
	}

	if err := s.contractRepo.Delete(ctx, contractID); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, billing.NewContractDeletedEvent(contract.ID, contract.CustomerID))
	}
	return nil
}
