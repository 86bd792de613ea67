package models

import (
	"github.com/crediario/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	AggregateModel
	Name       string `gorm:"type:varchar(200);not null;index"`
	TaxID      string `gorm:"type:varchar(11);not null;uniqueIndex:idx_customers_tax_id"`
	Email      string `gorm:"type:varchar(200)"`
	Phone      string `gorm:"type:varchar(50)"`
	PostalCode string `gorm:"type:varchar(20)"`
	Street     string `gorm:"type:varchar(200)"`
	Number     string `gorm:"type:varchar(20)"`
	Complement string `gorm:"type:varchar(100)"`
	District   string `gorm:"type:varchar(100)"`
	City       string `gorm:"type:varchar(100)"`
	State      string `gorm:"type:varchar(2)"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		TaxID:             m.TaxID,
		Email:             m.Email,
		Phone:             m.Phone,
		PostalCode:        m.PostalCode,
		Street:            m.Street,
		Number:            m.Number,
		Complement:        m.Complement,
		District:          m.District,
		City:              m.City,
		State:             m.State,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.TaxID = c.TaxID
	m.Email = c.Email
	m.Phone = c.Phone
	m.PostalCode = c.PostalCode
	m.Street = c.Street
	m.Number = c.Number
	m.Complement = c.Complement
	m.District = c.District
	m.City = c.City
	m.State = c.State
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
