package partner

import (
	"fmt"
	"strings"
	"time"

	"github.com/crediario/backend/internal/domain/shared"
)

// Customer represents a customer of the installment business. It is the
// aggregate root for customer registration and the identity anchor every
// contract and order request hangs off.
type Customer struct {
	shared.BaseAggregateRoot
	Name  string
	TaxID string // CPF, stored as digits only; unique natural lookup key
	Email string
	Phone string

	// address
	PostalCode string
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
}

// NewCustomer creates a new customer with required fields. The tax id is
// normalized to digits before validation.
func NewCustomer(name, taxID string) (*Customer, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	normalized, err := NormalizeTaxID(taxID)
	if err != nil {
		return nil, err
	}

	customer := &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		TaxID:             normalized,
	}

	customer.AddDomainEvent(NewCustomerCreatedEvent(customer))

	return customer, nil
}

// CustomerPatch carries optional field updates for a customer. Nil fields are
// left untouched. The tax id is deliberately absent: it is the customer's
// identity key and is fixed at registration.
type CustomerPatch struct {
	Name       *string
	Email      *string
	Phone      *string
	PostalCode *string
	Street     *string
	Number     *string
	Complement *string
	District   *string
	City       *string
	State      *string
}

// Apply updates the customer's mutable contact and address fields
func (c *Customer) Apply(patch CustomerPatch) error {
	if patch.Name != nil {
		if err := validateName(*patch.Name); err != nil {
			return err
		}
		c.Name = *patch.Name
	}
	setIf(&c.Email, patch.Email)
	setIf(&c.Phone, patch.Phone)
	setIf(&c.PostalCode, patch.PostalCode)
	setIf(&c.Street, patch.Street)
	setIf(&c.Number, patch.Number)
	setIf(&c.Complement, patch.Complement)
	setIf(&c.District, patch.District)
	setIf(&c.City, patch.City)
	setIf(&c.State, patch.State)

	c.Touch(time.Now())
	c.IncrementVersion()
	c.AddDomainEvent(NewCustomerUpdatedEvent(c))

	return nil
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// NormalizeTaxID strips formatting from a CPF and validates its shape.
// "191.191.191-00" and "19119119100" normalize to the same key.
func NormalizeTaxID(taxID string) (string, error) {
	var b strings.Builder
	for _, r := range taxID {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return "", shared.NewDomainError("INVALID_TAX_ID", "Tax ID is required")
	}
	if len(digits) != 11 {
		return "", shared.NewDomainError("INVALID_TAX_ID", fmt.Sprintf("Tax ID must have 11 digits, got %d", len(digits)))
	}
	return digits, nil
}

// FormatTaxID renders a normalized CPF in the conventional display form
// XXX.XXX.XXX-XX. Input that is not 11 digits is returned unchanged.
func FormatTaxID(digits string) string {
	if len(digits) != 11 {
		return digits
	}
	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}
	return nil
}
