package models

import (
	"time"

	"github.com/crediario/backend/internal/domain/orders"
	"github.com/crediario/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// OrderRequestModel is the persistence model for the OrderRequest aggregate root.
type OrderRequestModel struct {
	AggregateModel
	CustomerID   uuid.UUID          `gorm:"type:uuid;not null;index"`
	Product      string             `gorm:"type:text;not null"`
	Amount       valueobject.Money  `gorm:"type:numeric(14,2);not null"`
	Status       orders.OrderStatus `gorm:"type:varchar(20);not null;index"`
	DecidedAt    *time.Time
	DecisionNote string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (OrderRequestModel) TableName() string {
	return "order_requests"
}

// ToDomain converts the persistence model to a domain OrderRequest.
func (m *OrderRequestModel) ToDomain() *orders.OrderRequest {
	return &orders.OrderRequest{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		CustomerID:        m.CustomerID,
		Product:           m.Product,
		Amount:            m.Amount,
		Status:            m.Status,
		DecidedAt:         m.DecidedAt,
		DecisionNote:      m.DecisionNote,
	}
}

// FromDomain populates the persistence model from a domain OrderRequest.
func (m *OrderRequestModel) FromDomain(o *orders.OrderRequest) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.CustomerID = o.CustomerID
	m.Product = o.Product
	m.Amount = o.Amount
	m.Status = o.Status
	m.DecidedAt = o.DecidedAt
	m.DecisionNote = o.DecisionNote
}

// OrderRequestModelFromDomain creates a new persistence model from a domain OrderRequest.
func OrderRequestModelFromDomain(o *orders.OrderRequest) *OrderRequestModel {
	m := &OrderRequestModel{}
	m.FromDomain(o)
	return m
}
