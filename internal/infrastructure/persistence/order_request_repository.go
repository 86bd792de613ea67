package persistence

import (
	"context"
	"errors"

	"github.com/crediario/backend/internal/domain/orders"
	"github.com/crediario/backend/internal/domain/shared"
	"github.com/crediario/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRequestRepository implements OrderRequestRepository using GORM
type GormOrderRequestRepository struct {
	db *gorm.DB
}

// NewGormOrderRequestRepository creates a new GormOrderRequestRepository
func NewGormOrderRequestRepository(db *gorm.DB) *GormOrderRequestRepository {
	return &GormOrderRequestRepository{db: db}
}

// FindByID finds an order request by its ID
func (r *GormOrderRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*orders.OrderRequest, error) {
	var model models.OrderRequestModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByStatus lists requests with the given status, newest first.
// A nil status means all statuses.
func (r *GormOrderRequestRepository) FindByStatus(ctx context.Context, status *orders.OrderStatus) ([]orders.OrderRequest, error) {
	query := r.db.WithContext(ctx).Model(&models.OrderRequestModel{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var orderModels []models.OrderRequestModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, err
	}
	return toDomainOrderRequests(orderModels), nil
}

// FindByCustomer lists a customer's own requests, newest first
func (r *GormOrderRequestRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]orders.OrderRequest, error) {
	var orderModels []models.OrderRequestModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, err
	}
	return toDomainOrderRequests(orderModels), nil
}

// CountPending counts requests still awaiting a decision
func (r *GormOrderRequestRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderRequestModel{}).
		Where("status = ?", orders.OrderStatusPending).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an order request
func (r *GormOrderRequestRepository) Save(ctx context.Context, order *orders.OrderRequest) error {
	return r.db.WithContext(ctx).Save(models.OrderRequestModelFromDomain(order)).Error
}

// Delete removes a request regardless of its state
func (r *GormOrderRequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.OrderRequestModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toDomainOrderRequests(orderModels []models.OrderRequestModel) []orders.OrderRequest {
	requests := make([]orders.OrderRequest, len(orderModels))
	for i := range orderModels {
		requests[i] = *orderModels[i].ToDomain()
	}
	return requests
}

// Ensure GormOrderRequestRepository implements OrderRequestRepository
var _ orders.OrderRequestRepository = (*GormOrderRequestRepository)(nil)
