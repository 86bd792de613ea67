package partner

import (
	"context"

	"github.com/crediario/backend/internal/domain/partner"
	"github.com/crediario/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo   partner.CustomerRepository
	eventPublisher shared.EventPublisher
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, eventPublisher shared.EventPublisher) *CustomerService {
	return &CustomerService{
		customerRepo:   customerRepo,
		eventPublisher: eventPublisher,
	}
}

// Create registers a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	normalized, err := partner.NormalizeTaxID(req.TaxID)
	if err != nil {
		return nil, err
	}

	exists, err := s.customerRepo.ExistsByTaxID(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this tax ID already exists")
	}

	customer, err := partner.NewCustomer(req.Name, normalized)
	if err != nil {
		return nil, err
	}

	// Contact and address come in through the same patch path as updates
	patch := partner.CustomerPatch{}
	setIfNotEmpty(&patch.Email, req.Email)
	setIfNotEmpty(&patch.Phone, req.Phone)
	setIfNotEmpty(&patch.PostalCode, req.PostalCode)
	setIfNotEmpty(&patch.Street, req.Street)
	setIfNotEmpty(&patch.Number, req.Number)
	setIfNotEmpty(&patch.Complement, req.Complement)
	setIfNotEmpty(&patch.District, req.District)
	setIfNotEmpty(&patch.City, req.City)
	setIfNotEmpty(&patch.State, req.State)
	if patch != (partner.CustomerPatch{}) {
		if err := customer.Apply(patch); err != nil {
			return nil, err
		}
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, customer)

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByTaxID retrieves a customer by tax id in either formatted or bare form
func (s *CustomerService) GetByTaxID(ctx context.Context, taxID string) (*CustomerResponse, error) {
	normalized, err := partner.NormalizeTaxID(taxID)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindByTaxID(ctx, normalized)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves customers with filtering and pagination
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) ([]CustomerResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "name",
		OrderDir: "asc",
		Search:   filter.Search,
	}

	customers, err := s.customerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.customerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses, total, nil
}

// Update applies a partial update to a customer
func (s *CustomerService) Update(ctx context.Context, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	patch := partner.CustomerPatch{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		PostalCode: req.PostalCode,
		Street:     req.Street,
		Number:     req.Number,
		Complement: req.Complement,
		District:   req.District,
		City:       req.City,
		State:      req.State,
	}
	if err := customer.Apply(patch); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, customer)

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete removes a customer and, by cascade, all contracts and installments
// that reference it
func (s *CustomerService) Delete(ctx context.Context, customerID uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return err
	}

	if err := s.customerRepo.Delete(ctx, customerID); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, partner.NewCustomerDeletedEvent(customerID))
	}
	return nil
}

func (s *CustomerService) publishEvents(ctx context.Context, customer *partner.Customer) {
	if s.eventPublisher == nil {
		return
	}
	if events := customer.GetDomainEvents(); len(events) > 0 {
		_ = s.eventPublisher.Publish(ctx, events...)
		customer.ClearDomainEvents()
	}
}

func setIfNotEmpty(dst **string, value string) {
	if value != "" {
		v := value
		*dst = &v
	}
}
