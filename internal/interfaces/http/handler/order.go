package handler

import (
	apporders "github.com/crediario/backend/internal/application/orders"
	"github.com/crediario/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// Default decision notes shown to the customer when staff leave none
const (
	defaultApprovalNote  = "Your order was approved"
	defaultRejectionNote = "Your order was rejected"
)

// OrderHandler serves the order request endpoints
type OrderHandler struct {
	BaseHandler
	orderService *apporders.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *apporders.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req apporders.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "customer_id, product and amount are required")
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// List handles GET /orders. An optional status query narrows the listing.
func (h *OrderHandler) List(c *gin.Context) {
	status := dto.NormalizeOrderStatus(c.Query("status"))

	orders, err := h.orderService.ListByStatus(c.Request.Context(), status)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// Decide handles POST /orders/:id/decide. A request can be decided once;
// deciding it again conflicts regardless of the verdict.
func (h *OrderHandler) Decide(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req apporders.DecideOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "A decision is required")
		return
	}

	req.Decision = dto.NormalizeOrderDecision(req.Decision)
	if req.Note == "" {
		switch req.Decision {
		case "approved":
			req.Note = defaultApprovalNote
		case "rejected":
			req.Note = defaultRejectionNote
		}
	}

	order, err := h.orderService.Decide(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Delete handles DELETE /orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
