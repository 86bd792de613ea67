package handler

import (
	"time"

	apppartner "github.com/crediario/backend/internal/application/partner"
	"github.com/crediario/backend/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
)

// AdminLoginRequest carries back-office credentials
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CustomerLoginRequest identifies a customer by CPF
type CustomerLoginRequest struct {
	TaxID string `json:"tax_id" binding:"required,cpf"`
}

// LoginResponse carries the issued token and who it belongs to
type LoginResponse struct {
	Token     string                       `json:"token"`
	ExpiresAt time.Time                    `json:"expires_at"`
	Role      string                       `json:"role"`
	Customer  *apppartner.CustomerResponse `json:"customer,omitempty"`
}

// AuthHandler issues tokens for the back office and the customer portal
type AuthHandler struct {
	BaseHandler
	jwtService      *auth.JWTService
	adminAuth       *auth.AdminAuthenticator
	customerService *apppartner.CustomerService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(
	jwtService *auth.JWTService,
	adminAuth *auth.AdminAuthenticator,
	customerService *apppartner.CustomerService,
) *AuthHandler {
	return &AuthHandler{
		jwtService:      jwtService,
		adminAuth:       adminAuth,
		customerService: customerService,
	}
}

// AdminLogin handles POST /auth/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Username and password are required")
		return
	}

	if !h.adminAuth.Verify(req.Username, req.Password) {
		h.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := h.jwtService.GenerateAdminToken(req.Username)
	if err != nil {
		h.InternalError(c, "Failed to issue token")
		return
	}

	h.Success(c, LoginResponse{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		Role:      string(auth.RoleAdmin),
	})
}

// CustomerLogin handles POST /auth/customer-login. Customers authenticate
// with their CPF alone; the token they get back only opens their own data.
func (h *AuthHandler) CustomerLogin(c *gin.Context) {
	var req CustomerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "A valid CPF is required")
		return
	}

	customer, err := h.customerService.GetByTaxID(c.Request.Context(), req.TaxID)
	if err != nil {
		// do not reveal whether the CPF exists
		h.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := h.jwtService.GenerateCustomerToken(customer.ID)
	if err != nil {
		h.InternalError(c, "Failed to issue token")
		return
	}

	h.Success(c, LoginResponse{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		Role:      string(auth.RoleCustomer),
		Customer:  customer,
	})
}
