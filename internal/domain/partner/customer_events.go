package partner

import (
	"github.com/crediario/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Event types for the partner context
const (
	EventCustomerCreated = "partner.customer.created"
	EventCustomerUpdated = "partner.customer.updated"
	EventCustomerDeleted = "partner.customer.deleted"
)

const aggregateTypeCustomer = "Customer"

// CustomerCreatedEvent is raised when a customer is registered
type CustomerCreatedEvent struct {
	shared.BaseDomainEvent
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
}

// NewCustomerCreatedEvent creates a CustomerCreatedEvent
func NewCustomerCreatedEvent(c *Customer) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCustomerCreated, aggregateTypeCustomer, c.ID),
		Name:            c.Name,
		TaxID:           c.TaxID,
	}
}

// CustomerUpdatedEvent is raised when contact or address fields change
type CustomerUpdatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewCustomerUpdatedEvent creates a CustomerUpdatedEvent
func NewCustomerUpdatedEvent(c *Customer) *CustomerUpdatedEvent {
	return &CustomerUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCustomerUpdated, aggregateTypeCustomer, c.ID),
		Name:            c.Name,
	}
}

// CustomerDeletedEvent is raised when a customer is removed together with all
// dependent contracts and installments
type CustomerDeletedEvent struct {
	shared.BaseDomainEvent
}

// NewCustomerDeletedEvent creates a CustomerDeletedEvent
func NewCustomerDeletedEvent(id uuid.UUID) *CustomerDeletedEvent {
	return &CustomerDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCustomerDeleted, aggregateTypeCustomer, id),
	}
}
