package billing

import (
	"context"
	"time"

	"github.com/crediario/backend/internal/domain/billing"
	"github.com/crediario/backend/internal/domain/orders"
	"github.com/crediario/backend/internal/domain/partner"
	"github.com/crediario/backend/internal/domain/shared"
	"github.com/crediario/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockContractRepository is a mock implementation of ContractRepository
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Contract), args.Error(1)
}

func (m *MockContractRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]billing.Contract, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]billing.Contract), args.Error(1)
}

func (m *MockContractRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Contract, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]billing.Contract), args.Error(1)
}

func (m *MockContractRepository) FindRecent(ctx context.Context, limit int) ([]billing.Contract, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]billing.Contract), args.Error(1)
}

func (m *MockContractRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContractRepository) Save(ctx context.Context, contract *billing.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContractRepository) SumTotalsCreatedInRange(ctx context.Context, start, end time.Time) (valueobject.Money, int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(valueobject.Money), args.Get(1).(int64), args.Error(2)
}

// MockInstallmentRepository is a mock implementation of InstallmentRepository
type MockInstallmentRepository struct {
	mock.Mock
}

func (m *MockInstallmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Installment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Installment), args.Error(1)
}

func (m *MockInstallmentRepository) ListByContract(ctx context.Context, contractID uuid.UUID) ([]billing.Installment, error) {
	args := m.Called(ctx, contractID)
	return args.Get(0).([]billing.Installment), args.Error(1)
}

func (m *MockInstallmentRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]billing.Installment, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]billing.Installment), args.Error(1)
}

func (m *MockInstallmentRepository) Save(ctx context.Context, installment *billing.Installment) error {
	args := m.Called(ctx, installment)
	return args.Error(0)
}

func (m *MockInstallmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInstallmentRepository) SumPaidInRange(ctx context.Context, start, end time.Time) (valueobject.Money, int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(valueobject.Money), args.Get(1).(int64), args.Error(2)
}

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByTaxID(ctx context.Context, taxID string) (*partner.Customer, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	args := m.Called(ctx, taxID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOrderRequestRepository is a mock implementation of orders.OrderRequestRepository
type MockOrderRequestRepository struct {
	mock.Mock
}

func (m *MockOrderRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*orders.OrderRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.OrderRequest), args.Error(1)
}

func (m *MockOrderRequestRepository) FindByStatus(ctx context.Context, status *orders.OrderStatus) ([]orders.OrderRequest, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]orders.OrderRequest), args.Error(1)
}

func (m *MockOrderRequestRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]orders.OrderRequest, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]orders.OrderRequest), args.Error(1)
}

func (m *MockOrderRequestRepository) CountPending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRequestRepository) Save(ctx context.Context, order *orders.OrderRequest) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of shared.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// MockPaymentGateway is a mock implementation of billing.PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) VerifyNotification(payload []byte, signature string) (*billing.PaymentNotification, error) {
	args := m.Called(payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.PaymentNotification), args.Error(1)
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore
type MockIdempotencyStore struct {
	mock.Mock
}

func (m *MockIdempotencyStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) Forget(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
