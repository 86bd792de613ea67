package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/crediario/backend/internal/domain/billing"
	"github.com/crediario/backend/internal/domain/shared"
	"github.com/crediario/backend/internal/domain/shared/valueobject"
	"github.com/crediario/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInstallmentRepository implements InstallmentRepository using GORM
type GormInstallmentRepository struct {
	db *gorm.DB
}

// NewGormInstallmentRepository creates a new GormInstallmentRepository
func NewGormInstallmentRepository(db *gorm.DB) *GormInstallmentRepository {
	return &GormInstallmentRepository{db: db}
}

// FindByID finds an installment by its ID
func (r *GormInstallmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Installment, error) {
	var model models.InstallmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	installment := model.ToDomain()
	return &installment, nil
}

// ListByContract lists a contract's installments ordered by ordinal
func (r *GormInstallmentRepository) ListByContract(ctx context.Context, contractID uuid.UUID) ([]billing.Installment, error) {
	var installmentModels []models.InstallmentModel
	if err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("ordinal ASC").
		Find(&installmentModels).Error; err != nil {
		return nil, err
	}
	return toDomainInstallments(installmentModels), nil
}

// ListByCustomer lists all installments across a customer's contracts
// ordered by due date ascending
func (r *GormInstallmentRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]billing.Installment, error) {
	var installmentModels []models.InstallmentModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN contracts ON contracts.id = installments.contract_id").
		Where("contracts.customer_id = ?", customerID).
		Order("installments.due_date ASC, installments.ordinal ASC").
		Find(&installmentModels).Error; err != nil {
		return nil, err
	}
	return toDomainInstallments(installmentModels), nil
}

// Save updates a single installment
func (r *GormInstallmentRepository) Save(ctx context.Context, installment *billing.Installment) error {
	return r.db.WithContext(ctx).Save(models.InstallmentModelFromDomain(installment)).Error
}

// Delete removes a single installment without rebalancing the rest
func (r *GormInstallmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.InstallmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SumPaidInRange sums values and counts installments settled in [start, end)
// by paid time
func (r *GormInstallmentRepository) SumPaidInRange(ctx context.Context, start, end time.Time) (valueobject.Money, int64, error) {
	var row struct {
		Total valueobject.Money
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.InstallmentModel{}).
		Select("COALESCE(SUM(value), 0) AS total, COUNT(*) AS count").
		Where("status = ? AND paid_at >= ? AND paid_at < ?", billing.InstallmentStatusPaid, start, end).
		Scan(&row).Error
	if err != nil {
		return valueobject.Zero(), 0, err
	}
	return row.Total, row.Count, nil
}

func toDomainInstallments(installmentModels []models.InstallmentModel) []billing.Installment {
	installments := make([]billing.Installment, len(installmentModels))
	for i := range installmentModels {
		installments[i] = installmentModels[i].ToDomain()
	}
	return installments
}

// Ensure GormInstallmentRepository implements InstallmentRepository
var _ billing.InstallmentRepository = (*GormInstallmentRepository)(nil)
