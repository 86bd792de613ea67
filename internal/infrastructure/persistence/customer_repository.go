package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/crediario/backend/internal/domain/partner"
	"github.com/crediario/backend/internal/domain/shared"
	"github.com/crediario/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTaxID finds a customer by its normalized tax id
func (r *GormCustomerRepository) FindByTaxID(ctx context.Context, taxID string) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "tax_id = ?", taxID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all customers matching the filter
func (r *GormCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	var customerModels []models.CustomerModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.CustomerModel{}), filter)

	if err := query.Find(&customerModels).Error; err != nil {
		return nil, err
	}

	customers := make([]partner.Customer, len(customerModels))
	for i, model := range customerModels {
		customers[i] = *model.ToDomain()
	}
	return customers, nil
}

// Count counts customers matching the filter
func (r *GormCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&models.CustomerModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByTaxID checks if a customer with the given tax id exists
func (r *GormCustomerRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("tax_id = ?", taxID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes the customer and cascades to everything that hangs off it:
// contracts, their installments, and the customer's order requests.
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		contractIDs := tx.Model(&models.ContractModel{}).
			Select("id").
			Where("customer_id = ?", id)

		if err := tx.Where("contract_id IN (?)", contractIDs).
			Delete(&models.InstallmentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", id).
			Delete(&models.ContractModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", id).
			Delete(&models.OrderRequestModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.CustomerModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// applyFilter applies search, ordering and pagination to the query
func (r *GormCustomerRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applySearch(query, filter)

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		switch filter.OrderBy {
		case "name", "created_at", "tax_id":
			query = query.Order(filter.OrderBy + " " + orderDir)
		default:
			query = query.Order("name ASC")
		}
	} else {
		query = query.Order("name ASC")
	}

	return query.Offset(filter.Offset()).Limit(filter.Limit())
}

// applySearch matches name, email or tax id
func (r *GormCustomerRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search == "" {
		return query
	}
	pattern := "%" + filter.Search + "%"
	if digits := strings.Map(keepDigits, filter.Search); digits != "" {
		return query.Where("name LIKE ? OR email LIKE ? OR tax_id LIKE ?", pattern, pattern, "%"+digits+"%")
	}
	return query.Where("name LIKE ? OR email LIKE ?", pattern, pattern)
}

func keepDigits(r rune) rune {
	if r >= '0' && r <= '9' {
		return r
	}
	return -1
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
