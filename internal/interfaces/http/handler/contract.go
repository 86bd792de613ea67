package handler

import (
	"crypto/subtle"

	appbilling "github.com/crediario/backend/internal/application/billing"
	"github.com/crediario/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// DeleteCodeHeader must carry the configured code on destructive contract calls
const DeleteCodeHeader = "X-Delete-Code"

// ContractHandler serves the contract endpoints
type ContractHandler struct {
	BaseHandler
	contractService *appbilling.ContractService
	deleteCode      string
}

// NewContractHandler creates a new ContractHandler
func NewContractHandler(contractService *appbilling.ContractService, deleteCode string) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
		deleteCode:      deleteCode,
	}
}

// Create handles POST /contracts
func (h *ContractHandler) Create(c *gin.Context) {
	var req appbilling.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "customer_id, total, installment_count, first_due_date and type are required")
		return
	}
	req.Type = dto.NormalizeContractType(req.Type)

	contract, err := h.contractService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, contract)
}

// Get handles GET /contracts/:id
func (h *ContractHandler) Get(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	contract, err := h.contractService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, contract)
}

// List handles GET /contracts
func (h *ContractHandler) List(c *gin.Context) {
	var filter appbilling.ContractListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid list parameters")
		return
	}

	contracts, total, err := h.contractService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, contracts, total, filter.Page, filter.PageSize)
}

// ListByCustomer handles GET /customers/:id/contracts
func (h *ContractHandler) ListByCustomer(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	contracts, err := h.contractService.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, contracts)
}

// Delete handles DELETE /contracts/:id. The caller must supply the
// configured deletion code; deleting a contract erases its ledger.
func (h *ContractHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	code := c.GetHeader(DeleteCodeHeader)
	if subtle.ConstantTimeCompare([]byte(code), []byte(h.deleteCode)) != 1 {
		h.Forbidden(c, "Invalid deletion code")
		return
	}

	if err := h.contractService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
