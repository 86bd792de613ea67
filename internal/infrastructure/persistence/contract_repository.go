package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/crediario/backend/internal/domain/billing"
	"github.com/crediario/backend/internal/domain/shared"
	"github.com/crediario/backend/internal/domain/shared/valueobject"
	"github.com/crediario/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormContractRepository implements ContractRepository using GORM. Contracts
// and their installment ledgers are written and removed in one transaction;
// a contract row without its ledger is never observable.
type GormContractRepository struct {
	db *gorm.DB
}

// NewGormContractRepository creates a new GormContractRepository
func NewGormContractRepository(db *gorm.DB) *GormContractRepository {
	return &GormContractRepository{db: db}
}

// FindByID finds a contract with its installments loaded
func (r *GormContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Contract, error) {
	var model models.ContractModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	contract := model.ToDomain()
	installments, err := r.loadInstallments(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	contract.Installments = installments[id]
	return contract, nil
}

// FindByCustomer lists a customer's contracts with installments, newest first
func (r *GormContractRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]billing.Contract, error) {
	var contractModels []models.ContractModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&contractModels).Error; err != nil {
		return nil, err
	}
	return r.toDomainWithInstallments(ctx, contractModels)
}

// FindAll lists contracts matching the filter with installments loaded
func (r *GormContractRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Contract, error) {
	var contractModels []models.ContractModel
	query := r.applySearch(r.db.WithContext(ctx).Model(&models.ContractModel{}), filter)

	orderDir := "DESC"
	if strings.ToLower(filter.OrderDir) == "asc" {
		orderDir = "ASC"
	}
	switch filter.OrderBy {
	case "total", "first_due_date", "created_at":
		query = query.Order(filter.OrderBy + " " + orderDir)
	default:
		query = query.Order("created_at DESC")
	}

	if err := query.Offset(filter.Offset()).Limit(filter.Limit()).Find(&contractModels).Error; err != nil {
		return nil, err
	}
	return r.toDomainWithInstallments(ctx, contractModels)
}

// FindRecent lists the most recently created contracts
func (r *GormContractRepository) FindRecent(ctx context.Context, limit int) ([]billing.Contract, error) {
	var contractModels []models.ContractModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&contractModels).Error; err != nil {
		return nil, err
	}
	return r.toDomainWithInstallments(ctx, contractModels)
}

// Count counts contracts matching the filter. It applies the same predicates
// as FindAll so a filtered page and its total always agree.
func (r *GormContractRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&models.ContractModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists the contract and all its installments atomically
func (r *GormContractRepository) Save(ctx context.Context, contract *billing.Contract) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(models.ContractModelFromDomain(contract)).Error; err != nil {
			return err
		}
		for i := range contract.Installments {
			if err := tx.Save(models.InstallmentModelFromDomain(&contract.Installments[i])).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the contract and cascades to its installments
func (r *GormContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contract_id = ?", id).
			Delete(&models.InstallmentModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.ContractModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// SumTotalsCreatedInRange sums immutable contract totals for contracts
// created in [start, end)
func (r *GormContractRepository) SumTotalsCreatedInRange(ctx context.Context, start, end time.Time) (valueobject.Money, int64, error) {
	var row struct {
		Total valueobject.Money
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.ContractModel{}).
		Select("COALESCE(SUM(total), 0) AS total, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", start, end).
		Scan(&row).Error
	if err != nil {
		return valueobject.Zero(), 0, err
	}
	return row.Total, row.Count, nil
}

// applySearch narrows contracts to those whose customer matches the search
// term by name, or by tax id when the term carries digits
func (r *GormContractRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search == "" {
		return query
	}

	customers := r.db.Model(&models.CustomerModel{}).
		Select("id").
		Where("name LIKE ?", "%"+filter.Search+"%")
	if digits := strings.Map(keepDigits, filter.Search); digits != "" {
		customers = customers.Or("tax_id LIKE ?", "%"+digits+"%")
	}
	return query.Where("customer_id IN (?)", customers)
}

// loadInstallments fetches the ledgers for a set of contracts in one query,
// grouped by contract and ordered by ordinal
func (r *GormContractRepository) loadInstallments(ctx context.Context, contractIDs []uuid.UUID) (map[uuid.UUID][]billing.Installment, error) {
	grouped := make(map[uuid.UUID][]billing.Installment, len(contractIDs))
	if len(contractIDs) == 0 {
		return grouped, nil
	}

	var installmentModels []models.InstallmentModel
	if err := r.db.WithContext(ctx).
		Where("contract_id IN ?", contractIDs).
		Order("ordinal ASC").
		Find(&installmentModels).Error; err != nil {
		return nil, err
	}

	for i := range installmentModels {
		model := &installmentModels[i]
		grouped[model.ContractID] = append(grouped[model.ContractID], model.ToDomain())
	}
	return grouped, nil
}

func (r *GormContractRepository) toDomainWithInstallments(ctx context.Context, contractModels []models.ContractModel) ([]billing.Contract, error) {
	ids := make([]uuid.UUID, len(contractModels))
	for i := range contractModels {
		ids[i] = contractModels[i].ID
	}

	installments, err := r.loadInstallments(ctx, ids)
	if err != nil {
		return nil, err
	}

	contracts := make([]billing.Contract, len(contractModels))
	for i := range contractModels {
		contract := contractModels[i].ToDomain()
		contract.Installments = installments[contract.ID]
		contracts[i] = *contract
	}
	return contracts, nil
}

// Ensure GormContractRepository implements ContractRepository
var _ billing.ContractRepository = (*GormContractRepository)(nil)
