package persistence

import (
	"context"
	"testing"

	"github.com/crediario/backend/internal/domain/billing"
	"github.com/crediario/backend/internal/domain/partner"
	"github.com/crediario/backend/internal/domain/shared/valueobject"
	"github.com/crediario/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.CustomerModel{},
		&models.ContractModel{},
		&models.InstallmentModel{},
		&models.OrderRequestModel{},
	)
	require.NoError(t, err)

	return db
}

func mustMoney(t *testing.T, amount string) valueobject.Money {
	t.Helper()
	m, err := valueobject.NewMoneyFromString(amount)
	require.NoError(t, err)
	return m
}

func newPersistedCustomer(t *testing.T, db *gorm.DB, name, taxID string) *partner.Customer {
	t.Helper()
	customer, err := partner.NewCustomer(name, taxID)
	require.NoError(t, err)
	require.NoError(t, NewGormCustomerRepository(db).Save(context.Background(), customer))
	return customer
}

func newTestContract(t *testing.T, customer *partner.Customer, total string, count int, firstDue valueobject.Date) *billing.Contract {
	t.Helper()
	contract, err := billing.NewContract(customer.ID, mustMoney(t, total), count, firstDue, billing.ContractTypeSale)
	require.NoError(t, err)
	return contract
}
