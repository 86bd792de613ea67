package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crediario/backend/internal/domain/billing"
	"go.uber.org/zap"
)

var (
	// ErrCallbackVerificationFailed is returned when callback verification fails
	ErrCallbackVerificationFailed = errors.New("payment callback: signature verification failed")
	// ErrCallbackInvalidPayload is returned when the callback payload is invalid
	ErrCallbackInvalidPayload = errors.New("payment callback: invalid payload")
)

// IdempotencyStore remembers which callback references were already handled.
// MarkProcessed returns false when the key was seen before; Forget releases
// a key so a failed callback can be retried.
type IdempotencyStore interface {
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Forget(ctx context.Context, key string) error
}

const callbackIdempotencyTTL = 24 * time.Hour

// CallbackResult reports the outcome of processing a gateway callback
type CallbackResult struct {
	Success          bool `json:"success"`
	AlreadyProcessed bool `json:"already_processed,omitempty"`
}

// PaymentCallbackService turns verified gateway notifications into ledger
// settlements. Gateways deliver at least once; the idempotency store absorbs
// duplicate deliveries before the ledger's own idempotent settlement does.
type PaymentCallbackService struct {
	gateway   billing.PaymentGateway
	ledger    *LedgerService
	processed IdempotencyStore
	logger    *zap.Logger
}

// NewPaymentCallbackService creates a new PaymentCallbackService
func NewPaymentCallbackService(
	gateway billing.PaymentGateway,
	ledger *LedgerService,
	processed IdempotencyStore,
	logger *zap.Logger,
) *PaymentCallbackService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentCallbackService{
		gateway:   gateway,
		ledger:    ledger,
		processed: processed,
		logger:    logger,
	}
}

// Process verifies a raw callback and settles the referenced installment
func (s *PaymentCallbackService) Process(ctx context.Context, payload []byte, signature string) (*CallbackResult, error) {
	notification, err := s.gateway.VerifyNotification(payload, signature)
	if err != nil {
		s.logger.Warn("Callback verification failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCallbackVerificationFailed, err)
	}
	if notification == nil {
		return nil, ErrCallbackInvalidPayload
	}

	s.logger.Info("Payment callback received",
		zap.String("installment_id", notification.InstallmentID.String()),
		zap.String("reference", notification.Reference),
		zap.Time("paid_at", notification.PaidAt))

	key := "payment:" + notification.Reference
	fresh, err := s.processed.MarkProcessed(ctx, key, callbackIdempotencyTTL)
	if err != nil {
		return nil, err
	}
	if !fresh {
		s.logger.Info("Callback already processed", zap.String("key", key))
		return &CallbackResult{Success: true, AlreadyProcessed: true}, nil
	}

	result, err := s.ledger.MarkPaid(ctx, notification.InstallmentID, notification.PaidAt)
	if err != nil {
		// release the key so the gateway's retry can succeed
		if forgetErr := s.processed.Forget(ctx, key); forgetErr != nil {
			s.logger.Warn("Failed to release idempotency key",
				zap.String("key", key),
				zap.Error(forgetErr))
		}
		s.logger.Error("Failed to settle installment from callback",
			zap.String("installment_id", notification.InstallmentID.String()),
			zap.Error(err))
		return nil, err
	}

	return &CallbackResult{Success: true, AlreadyProcessed: result.AlreadyPaid}, nil
}
