package partner

import (
	"context"
	"testing"

	"github.com/crediario/backend/internal/domain/partner"
	"github.com/crediario/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCustomerRepository is a mock implementation of CustomerRepository
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

func TestCustomerServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates customer with normalized tax id", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)

		repo.On("ExistsByTaxID", ctx, "19119119100").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*partner.Customer")).Return(nil)

		resp, err := service.Create(ctx, CreateCustomerRequest{
			Name:  "Maria Silva",
			TaxID: "191.191.191-00",
			Email: "maria@example.com",
			City:  "Fortaleza",
		})
		require.NoError(t, err)

		assert.Equal(t, "19119119100", resp.TaxID)
		assert.Equal(t, "191.191.191-00", resp.TaxIDFormatted)
		assert.Equal(t, "maria@example.com", resp.Email)
		assert.Equal(t, "Fortaleza", resp.City)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate tax id", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)

		repo.On("ExistsByTaxID", ctx, "19119119100").Return(true, nil)

		_, err := service.Create(ctx, CreateCustomerRequest{Name: "Maria", TaxID: "19119119100"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed tax id before touching the repository", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)

		_, err := service.Create(ctx, CreateCustomerRequest{Name: "Maria", TaxID: "123"})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "ExistsByTaxID", mock.Anything, mock.Anything)
	})
}

func TestCustomerServiceGetByTaxID(t *testing.T) {
	ctx := context.Background()

	t.Run("looks up by normalized form", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)

		customer, err := partner.NewCustomer("Maria Silva", "19119119100")
		require.NoError(t, err)
		repo.On("FindByTaxID", ctx, "19119119100").Return(customer, nil)

		resp, err := service.GetByTaxID(ctx, "191.191.191-00")
		require.NoError(t, err)
		assert.Equal(t, "Maria Silva", resp.Name)
		repo.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)

		repo.On("FindByTaxID", ctx, "19119119100").Return(nil, shared.ErrNotFound)

		_, err := service.GetByTaxID(ctx, "19119119100")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCustomerServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("applies partial update", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)

		customer, err := partner.NewCustomer("Maria Silva", "19119119100")
		require.NoError(t, err)
		repo.On("FindByID", ctx, customer.ID).Return(customer, nil)
		repo.On("Save", ctx, customer).Return(nil)

		phone := "85999990000"
		resp, err := service.Update(ctx, customer.ID, UpdateCustomerRequest{Phone: &phone})
		require.NoError(t, err)

		assert.Equal(t, "85999990000", resp.Phone)
		assert.Equal(t, "Maria Silva", resp.Name)
		repo.AssertExpectations(t)
	})
}

func TestCustomerServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes existing customer", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)

		customer, err := partner.NewCustomer("Maria Silva", "19119119100")
		require.NoError(t, err)
		repo.On("FindByID", ctx, customer.ID).Return(customer, nil)
		repo.On("Delete", ctx, customer.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, customer.ID))
		repo.AssertExpectations(t)
	})

	t.Run("does not delete when lookup fails", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		assert.ErrorIs(t, service.Delete(ctx, id), shared.ErrNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
