package billing

import (
	"context"
	"testing"
	"time"

	"github.com/crediario/backend/internal/domain/billing"
	"github.com/crediario/backend/internal/domain/shared"
	"github.com/crediario/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContract(t *testing.T) *billing.Contract {
	t.Helper()
	total, err := valueobject.NewMoneyFromString("1000.00")
	require.NoError(t, err)
	contract, err := billing.NewContract(
		uuid.New(), total, 3, valueobject.MustDate(2024, time.January, 15), billing.ContractTypeSale)
	require.NoError(t, err)
	return contract
}

func TestLedgerServiceMarkPaid(t *testing.T) {
	ctx := context.Background()
	t1 := time.Date(2024, time.January, 10, 14, 0, 0, 0, time.UTC)
	t2 := t1.Add(72 * time.Hour)

	t.Run("settles a pending installment and publishes", func(t *testing.T) {
		repo := new(MockInstallmentRepository)
		publisher := new(MockEventPublisher)
		service := NewLedgerService(repo, publisher)

		contract := newTestContract(t)
		inst := &contract.Installments[0]

		repo.On("FindByID", ctx, inst.ID).Return(inst, nil)
		repo.On("Save", ctx, inst).Return(nil)
		publisher.On("Publish", ctx, mock.Anything).Return(nil)

		result, err := service.MarkPaid(ctx, inst.ID, t1)
		require.NoError(t, err)

		assert.False(t, result.AlreadyPaid)
		assert.Equal(t, "paid", result.Installment.Status)
		require.NotNil(t, result.Installment.PaidAt)
		assert.True(t, result.Installment.PaidAt.Equal(t1))
		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("second settlement is absorbed without save or event", func(t *testing.T) {
		repo := new(MockInstallmentRepository)
		publisher := new(MockEventPublisher)
		service := NewLedgerService(repo, publisher)

		contract := newTestContract(t)
		inst := &contract.Installments[0]
		inst.MarkPaid(t1)

		repo.On("FindByID", ctx, inst.ID).Return(inst, nil)

		result, err := service.MarkPaid(ctx, inst.ID, t2)
		require.NoError(t, err)

		assert.True(t, result.AlreadyPaid)
		assert.True(t, result.Installment.PaidAt.Equal(t1), "paid time must not move")
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("unknown installment is not found", func(t *testing.T) {
		repo := new(MockInstallmentRepository)
		service := NewLedgerService(repo, nil)

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.MarkPaid(ctx, id, t1)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestLedgerServiceEdit(t *testing.T) {
	ctx := context.Background()
	frozen := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	newService := func(repo *MockInstallmentRepository) *LedgerService {
		service := NewLedgerService(repo, nil)
		service.now = func() time.Time { return frozen }
		return service
	}

	t.Run("status paid without paid time defaults to now", func(t *testing.T) {
		repo := new(MockInstallmentRepository)
		service := newService(repo)

		contract := newTestContract(t)
		inst := &contract.Installments[1]
		repo.On("FindByID", ctx, inst.ID).Return(inst, nil)
		repo.On("Save", ctx, inst).Return(nil)

		paid := "paid"
		resp, err := service.Edit(ctx, inst.ID, EditInstallmentRequest{Status: &paid})
		require.NoError(t, err)

		require.NotNil(t, resp.PaidAt)
		assert.True(t, resp.PaidAt.Equal(frozen))
	})

	t.Run("edits value and due date together", func(t *testing.T) {
		repo := new(MockInstallmentRepository)
		service := newService(repo)

		contract := newTestContract(t)
		inst := &contract.Installments[0]
		repo.On("FindByID", ctx, inst.ID).Return(inst, nil)
		repo.On("Save", ctx, inst).Return(nil)

		value := "350.00"
		due := "2024-02-01"
		resp, err := service.Edit(ctx, inst.ID, EditInstallmentRequest{Value: &value, DueDate: &due})
		require.NoError(t, err)

		assert.Equal(t, "350.00", resp.Value)
		assert.Equal(t, "2024-02-01", resp.DueDate)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("rejects malformed value without saving", func(t *testing.T) {
		repo := new(MockInstallmentRepository)
		service := newService(repo)

		contract := newTestContract(t)
		inst := &contract.Installments[0]
		repo.On("FindByID", ctx, inst.ID).Return(inst, nil)

		bad := "12.345"
		_, err := service.Edit(ctx, inst.ID, EditInstallmentRequest{Value: &bad})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestLedgerServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes one installment without touching siblings", func(t *testing.T) {
		repo := new(MockInstallmentRepository)
		service := NewLedgerService(repo, nil)

		contract := newTestContract(t)
		inst := &contract.Installments[2]
		repo.On("FindByID", ctx, inst.ID).Return(inst, nil)
		repo.On("Delete", ctx, inst.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, inst.ID))
		repo.AssertExpectations(t)
	})
}
