package handler

import (
	"time"

	appbilling "github.com/crediario/backend/internal/application/billing"
	"github.com/crediario/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// MarkPaidRequest optionally overrides the settlement timestamp
type MarkPaidRequest struct {
	PaidAt *time.Time `json:"paid_at"`
}

// InstallmentHandler serves the installment ledger endpoints
type InstallmentHandler struct {
	BaseHandler
	ledgerService *appbilling.LedgerService
}

// NewInstallmentHandler creates a new InstallmentHandler
func NewInstallmentHandler(ledgerService *appbilling.LedgerService) *InstallmentHandler {
	return &InstallmentHandler{ledgerService: ledgerService}
}

// ListByContract handles GET /contracts/:id/installments
func (h *InstallmentHandler) ListByContract(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	installments, err := h.ledgerService.ListByContract(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, installments)
}

// MarkPaid handles POST /installments/:id/pay. Paying an installment that is
// already paid is not an error; the response says nothing changed.
func (h *InstallmentHandler) MarkPaid(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req MarkPaidRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, "Invalid request body")
			return
		}
	}

	paidAt := time.Now()
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	result, err := h.ledgerService.MarkPaid(c.Request.Context(), id, paidAt)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Edit handles PATCH /installments/:id
func (h *InstallmentHandler) Edit(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req appbilling.EditInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	if req.Status != nil {
		normalized := dto.NormalizeInstallmentStatus(*req.Status)
		req.Status = &normalized
	}

	installment, err := h.ledgerService.Edit(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, installment)
}

// Delete handles DELETE /installments/:id
func (h *InstallmentHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.ledgerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
