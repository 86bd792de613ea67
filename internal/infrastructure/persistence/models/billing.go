package models

import (
	"time"

	"github.com/crediario/backend/internal/domain/billing"
	"github.com/crediario/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ContractModel is the persistence model for the Contract aggregate root.
// The installment rows live in their own table; loading a contract always
// pulls them so the domain aggregate is complete.
type ContractModel struct {
	AggregateModel
	CustomerID       uuid.UUID            `gorm:"type:uuid;not null;index"`
	Total            valueobject.Money    `gorm:"type:numeric(14,2);not null"`
	InstallmentCount int                  `gorm:"not null"`
	FirstDueDate     valueobject.Date     `gorm:"type:date;not null"`
	Type             billing.ContractType `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (ContractModel) TableName() string {
	return "contracts"
}

// ToDomain converts the persistence model to a domain Contract. Installments
// are attached by the repository after loading their rows.
func (m *ContractModel) ToDomain() *billing.Contract {
	return &billing.Contract{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		CustomerID:        m.CustomerID,
		Total:             m.Total,
		InstallmentCount:  m.InstallmentCount,
		FirstDueDate:      m.FirstDueDate,
		Type:              m.Type,
	}
}

// FromDomain populates the persistence model from a domain Contract.
func (m *ContractModel) FromDomain(c *billing.Contract) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.CustomerID = c.CustomerID
	m.Total = c.Total
	m.InstallmentCount = c.InstallmentCount
	m.FirstDueDate = c.FirstDueDate
	m.Type = c.Type
}

// ContractModelFromDomain creates a new persistence model from a domain Contract.
func ContractModelFromDomain(c *billing.Contract) *ContractModel {
	m := &ContractModel{}
	m.FromDomain(c)
	return m
}

// InstallmentModel is the persistence model for the Installment entity.
type InstallmentModel struct {
	BaseModel
	ContractID uuid.UUID                 `gorm:"type:uuid;not null;uniqueIndex:idx_installments_contract_ordinal,priority:1"`
	Ordinal    int                       `gorm:"not null;uniqueIndex:idx_installments_contract_ordinal,priority:2"`
	Value      valueobject.Money         `gorm:"type:numeric(14,2);not null"`
	DueDate    valueobject.Date          `gorm:"type:date;not null;index"`
	Status     billing.InstallmentStatus `gorm:"type:varchar(20);not null;index"`
	PaidAt     *time.Time                `gorm:"index"`
}

// TableName returns the table name for GORM
func (InstallmentModel) TableName() string {
	return "installments"
}

// ToDomain converts the persistence model to a domain Installment.
func (m *InstallmentModel) ToDomain() billing.Installment {
	return billing.Installment{
		BaseEntity: m.BaseModel.ToDomain(),
		ContractID: m.ContractID,
		Ordinal:    m.Ordinal,
		Value:      m.Value,
		DueDate:    m.DueDate,
		Status:     m.Status,
		PaidAt:     m.PaidAt,
	}
}

// FromDomain populates the persistence model from a domain Installment.
func (m *InstallmentModel) FromDomain(i *billing.Installment) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.ContractID = i.ContractID
	m.Ordinal = i.Ordinal
	m.Value = i.Value
	m.DueDate = i.DueDate
	m.Status = i.Status
	m.PaidAt = i.PaidAt
}

// InstallmentModelFromDomain creates a new persistence model from a domain Installment.
func InstallmentModelFromDomain(i *billing.Installment) *InstallmentModel {
	m := &InstallmentModel{}
	m.FromDomain(i)
	return m
}
