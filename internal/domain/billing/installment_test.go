package billing

import (
	"testing"
	"time"

	"github.com/crediario/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingInstallment(t *testing.T) Installment {
	t.Helper()
	return newInstallment(uuid.New(), PlannedInstallment{
		Ordinal: 1,
		Value:   mustMoney(t, "100.00"),
		DueDate: valueobject.MustDate(2024, time.January, 15),
	})
}

func TestInstallmentMarkPaid(t *testing.T) {
	t.Run("first settlement wins", func(t *testing.T) {
		inst := pendingInstallment(t)
		t1 := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
		t2 := t1.Add(48 * time.Hour)

		assert.True(t, inst.MarkPaid(t1))
		require.NotNil(t, inst.PaidAt)
		assert.True(t, inst.PaidAt.Equal(t1))
		assert.Equal(t, InstallmentStatusPaid, inst.Status)

		assert.False(t, inst.MarkPaid(t2))
		assert.True(t, inst.PaidAt.Equal(t1), "repeated settlement must not move paid time")
	})
}

func TestInstallmentOverdue(t *testing.T) {
	inst := pendingInstallment(t)

	assert.False(t, inst.IsOverdue(valueobject.MustDate(2024, time.January, 15)), "due today is not overdue")
	assert.True(t, inst.IsOverdue(valueobject.MustDate(2024, time.January, 16)))

	inst.MarkPaid(time.Now())
	assert.False(t, inst.IsOverdue(valueobject.MustDate(2024, time.December, 1)))
}

func TestInstallmentApplyEdit(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	t.Run("omitted fields keep their values", func(t *testing.T) {
		inst := pendingInstallment(t)
		due := valueobject.MustDate(2024, time.February, 20)
		require.NoError(t, inst.ApplyEdit(InstallmentPatch{DueDate: &due}, now))

		assert.Equal(t, "2024-02-20", inst.DueDate.String())
		assert.Equal(t, "100.00", inst.Value.StringFixed())
		assert.Equal(t, InstallmentStatusPending, inst.Status)
		assert.Nil(t, inst.PaidAt)
	})

	t.Run("status paid without paid time defaults to now", func(t *testing.T) {
		inst := pendingInstallment(t)
		paid := InstallmentStatusPaid
		require.NoError(t, inst.ApplyEdit(InstallmentPatch{Status: &paid}, now))

		require.NotNil(t, inst.PaidAt)
		assert.True(t, inst.PaidAt.Equal(now))
	})

	t.Run("status paid with explicit paid time keeps it", func(t *testing.T) {
		inst := pendingInstallment(t)
		paid := InstallmentStatusPaid
		at := time.Date(2024, time.February, 5, 18, 30, 0, 0, time.UTC)
		require.NoError(t, inst.ApplyEdit(InstallmentPatch{Status: &paid, PaidAt: &at}, now))

		require.NotNil(t, inst.PaidAt)
		assert.True(t, inst.PaidAt.Equal(at))
	})

	t.Run("status back to pending clears paid time", func(t *testing.T) {
		inst := pendingInstallment(t)
		inst.MarkPaid(now)

		pending := InstallmentStatusPending
		require.NoError(t, inst.ApplyEdit(InstallmentPatch{Status: &pending}, now))
		assert.Nil(t, inst.PaidAt)
	})

	t.Run("rejects paid time on a pending installment", func(t *testing.T) {
		inst := pendingInstallment(t)
		at := now
		assert.Error(t, inst.ApplyEdit(InstallmentPatch{PaidAt: &at}, now))
	})

	t.Run("rejects negative value", func(t *testing.T) {
		inst := pendingInstallment(t)
		neg := mustMoney(t, "-5.00")
		assert.Error(t, inst.ApplyEdit(InstallmentPatch{Value: &neg}, now))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		inst := pendingInstallment(t)
		bogus := InstallmentStatus("cancelled")
		assert.Error(t, inst.ApplyEdit(InstallmentPatch{Status: &bogus}, now))
	})
}
