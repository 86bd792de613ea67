package handler

import (
	appbilling "github.com/crediario/backend/internal/application/billing"
	apporders "github.com/crediario/backend/internal/application/orders"
	"github.com/crediario/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// PortalHandler serves the customer-facing portal. Every endpoint reads the
// customer id from the token, never from the request, so a customer can only
// ever see their own data.
type PortalHandler struct {
	BaseHandler
	portalService *appbilling.PortalService
	orderService  *apporders.OrderService
}

// NewPortalHandler creates a new PortalHandler
func NewPortalHandler(
	portalService *appbilling.PortalService,
	orderService *apporders.OrderService,
) *PortalHandler {
	return &PortalHandler{
		portalService: portalService,
		orderService:  orderService,
	}
}

// Overview handles GET /portal/overview
func (h *PortalHandler) Overview(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		h.Unauthorized(c, "Token is not bound to a customer")
		return
	}

	overview, err := h.portalService.Overview(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, overview)
}

// Installments handles GET /portal/installments
func (h *PortalHandler) Installments(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		h.Unauthorized(c, "Token is not bound to a customer")
		return
	}

	installments, err := h.portalService.ListInstallments(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, installments)
}

// Orders handles GET /portal/orders
func (h *PortalHandler) Orders(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		h.Unauthorized(c, "Token is not bound to a customer")
		return
	}

	orders, err := h.orderService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// PortalOrderRequest is an order placed from the portal; the customer comes
// from the token, never from the body
type PortalOrderRequest struct {
	Product string `json:"product" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
}

// CreateOrder handles POST /portal/orders
func (h *PortalHandler) CreateOrder(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		h.Unauthorized(c, "Token is not bound to a customer")
		return
	}

	var req PortalOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "product and amount are required")
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), apporders.CreateOrderRequest{
		CustomerID: customerID,
		Product:    req.Product,
		Amount:     req.Amount,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}
