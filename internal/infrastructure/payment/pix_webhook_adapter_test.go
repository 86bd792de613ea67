package payment

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crediario/backend/internal/infrastructure/config"
)

func newTestAdapter(t *testing.T) *PixWebhookAdapter {
	adapter, err := NewPixWebhookAdapter(config.GatewayConfig{WebhookSecret: "test-webhook-secret"})
	require.NoError(t, err)
	return adapter
}

func testPayload(t *testing.T, installmentID uuid.UUID) []byte {
	payload, err := json.Marshal(map[string]string{
		"installment_id": installmentID.String(),
		"paid_at":        time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC).Format(time.RFC3339),
		"reference":      "E2024031012345",
	})
	require.NoError(t, err)
	return payload
}

func TestNewPixWebhookAdapter(t *testing.T) {
	_, err := NewPixWebhookAdapter(config.GatewayConfig{})
	assert.ErrorIs(t, err, ErrMissingWebhookSecret)
}

func TestPixWebhookAdapterVerifyNotification(t *testing.T) {
	adapter := newTestAdapter(t)
	installmentID := uuid.New()
	payload := testPayload(t, installmentID)

	t.Run("accepts a correctly signed payload", func(t *testing.T) {
		notification, err := adapter.VerifyNotification(payload, adapter.Sign(payload))
		require.NoError(t, err)

		assert.Equal(t, installmentID, notification.InstallmentID)
		assert.Equal(t, "E2024031012345", notification.Reference)
		assert.Equal(t, time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC), notification.PaidAt.UTC())
	})

	t.Run("accepts sha256= prefixed signatures", func(t *testing.T) {
		_, err := adapter.VerifyNotification(payload, "sha256="+adapter.Sign(payload))
		require.NoError(t, err)
	})

	t.Run("rejects a tampered payload", func(t *testing.T) {
		signature := adapter.Sign(payload)
		tampered := append([]byte{}, payload...)
		tampered[len(tampered)-2] = 'X'

		_, err := adapter.VerifyNotification(tampered, signature)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("rejects a signature from another secret", func(t *testing.T) {
		other, err := NewPixWebhookAdapter(config.GatewayConfig{WebhookSecret: "another-secret"})
		require.NoError(t, err)

		_, err = adapter.VerifyNotification(payload, other.Sign(payload))
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		body := []byte("{not json")
		_, err := adapter.VerifyNotification(body, adapter.Sign(body))
		assert.ErrorIs(t, err, ErrMalformedPayload)
	})

	t.Run("rejects an invalid installment id", func(t *testing.T) {
		body := []byte(`{"installment_id":"abc","paid_at":"2024-03-10T14:30:00Z","reference":"E1"}`)
		_, err := adapter.VerifyNotification(body, adapter.Sign(body))
		assert.ErrorIs(t, err, ErrMalformedPayload)
	})

	t.Run("rejects a missing reference", func(t *testing.T) {
		body, err := json.Marshal(map[string]string{
			"installment_id": uuid.New().String(),
			"paid_at":        "2024-03-10T14:30:00Z",
		})
		require.NoError(t, err)

		_, err = adapter.VerifyNotification(body, adapter.Sign(body))
		assert.ErrorIs(t, err, ErrMalformedPayload)
	})
}
