package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crediario/backend/internal/domain/billing"
	"github.com/crediario/backend/internal/infrastructure/config"
)

// Common errors
var (
	ErrMissingWebhookSecret = errors.New("pix: webhook secret is not configured")
	ErrInvalidSignature     = errors.New("pix: webhook signature mismatch")
	ErrMalformedPayload     = errors.New("pix: malformed webhook payload")
)

// pixWebhookPayload is the wire format posted by the PSP on settlement
type pixWebhookPayload struct {
	InstallmentID string `json:"installment_id"`
	PaidAt        string `json:"paid_at"`
	Reference     string `json:"reference"`
}

// PixWebhookAdapter implements billing.PaymentGateway for PIX settlement
// webhooks. Payloads are authenticated with an HMAC-SHA256 signature over
// the raw body, hex encoded, optionally prefixed with "sha256=".
type PixWebhookAdapter struct {
	secret []byte
}

// NewPixWebhookAdapter creates a new PIX webhook adapter
func NewPixWebhookAdapter(cfg config.GatewayConfig) (*PixWebhookAdapter, error) {
	if cfg.WebhookSecret == "" {
		return nil, ErrMissingWebhookSecret
	}
	return &PixWebhookAdapter{secret: []byte(cfg.WebhookSecret)}, nil
}

// VerifyNotification checks the signature and parses the payload
func (a *PixWebhookAdapter) VerifyNotification(payload []byte, signature string) (*billing.PaymentNotification, error) {
	if !a.verifySignature(payload, signature) {
		return nil, ErrInvalidSignature
	}

	var body pixWebhookPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	installmentID, err := uuid.Parse(body.InstallmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid installment_id %q", ErrMalformedPayload, body.InstallmentID)
	}
	if body.Reference == "" {
		return nil, fmt.Errorf("%w: missing reference", ErrMalformedPayload)
	}

	paidAt, err := time.Parse(time.RFC3339, body.PaidAt)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid paid_at %q", ErrMalformedPayload, body.PaidAt)
	}

	return &billing.PaymentNotification{
		InstallmentID: installmentID,
		PaidAt:        paidAt,
		Reference:     body.Reference,
	}, nil
}

// Sign computes the signature for a payload. Exposed so tests and
// outbound tooling can produce valid webhook requests.
func (a *PixWebhookAdapter) Sign(payload []byte) string {
	mac := hmac.New(sha256.New, a.secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func (a *PixWebhookAdapter) verifySignature(payload []byte, signature string) bool {
	signature = strings.TrimPrefix(signature, "sha256=")
	provided, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, a.secret)
	mac.Write(payload)
	return hmac.Equal(provided, mac.Sum(nil))
}

var _ billing.PaymentGateway = (*PixWebhookAdapter)(nil)
