package handler

import (
	"errors"
	"io"
	"net/http"

	appbilling "github.com/crediario/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
)

// SignatureHeader carries the gateway's HMAC signature over the raw body
const SignatureHeader = "X-Webhook-Signature"

// maxCallbackBody caps how much of a callback body we are willing to read
const maxCallbackBody = 1 << 20

// PaymentCallbackHandler receives payment gateway webhooks
type PaymentCallbackHandler struct {
	BaseHandler
	callbackService *appbilling.PaymentCallbackService
}

// NewPaymentCallbackHandler creates a new PaymentCallbackHandler
func NewPaymentCallbackHandler(callbackService *appbilling.PaymentCallbackService) *PaymentCallbackHandler {
	return &PaymentCallbackHandler{callbackService: callbackService}
}

// Handle handles POST /payments/callback. The signature is verified over the
// raw body, so the body must not be parsed before verification.
func (h *PaymentCallbackHandler) Handle(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCallbackBody))
	if err != nil {
		h.BadRequest(c, "Failed to read request body")
		return
	}

	signature := c.GetHeader(SignatureHeader)
	if signature == "" {
		h.Unauthorized(c, "Missing signature")
		return
	}

	result, err := h.callbackService.Process(c.Request.Context(), payload, signature)
	if err != nil {
		switch {
		case errors.Is(err, appbilling.ErrCallbackVerificationFailed):
			h.Unauthorized(c, "Signature verification failed")
		case errors.Is(err, appbilling.ErrCallbackInvalidPayload):
			h.BadRequest(c, "Invalid callback payload")
		default:
			h.HandleError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
