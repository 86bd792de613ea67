package partner

import (
	"time"

	"github.com/crediario/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CreateCustomerRequest represents a customer registration request
type CreateCustomerRequest struct {
	Name       string `json:"name" binding:"required"`
	TaxID      string `json:"tax_id" binding:"required"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PostalCode string `json:"postal_code"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
}

// UpdateCustomerRequest represents a partial customer update; nil fields are
// left unchanged
type UpdateCustomerRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	PostalCode *string `json:"postal_code"`
	Street     *string `json:"street"`
	Number     *string `json:"number"`
	Complement *string `json:"complement"`
	District   *string `json:"district"`
	City       *string `json:"city"`
	State      *string `json:"state"`
}

// CustomerListFilter represents filtering options for customer lists
type CustomerListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
}

// CustomerResponse represents customer data returned to callers
type CustomerResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	TaxID          string    `json:"tax_id"`
	TaxIDFormatted string    `json:"tax_id_formatted"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	PostalCode     string    `json:"postal_code,omitempty"`
	Street         string    `json:"street,omitempty"`
	Number         string    `json:"number,omitempty"`
	Complement     string    `json:"complement,omitempty"`
	District       string    `json:"district,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		TaxID:          c.TaxID,
		TaxIDFormatted: partner.FormatTaxID(c.TaxID),
		Email:          c.Email,
		Phone:          c.Phone,
		PostalCode:     c.PostalCode,
		Street:         c.Street,
		Number:         c.Number,
		Complement:     c.Complement,
		District:       c.District,
		City:           c.City,
		State:          c.State,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
