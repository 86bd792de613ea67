package billing

import (
	"time"

	"github.com/google/uuid"
)

// PaymentNotification is a gateway's confirmation that an installment was
// settled. Notifications may be delivered more than once; settlement is
// idempotent on the installment.
type PaymentNotification struct {
	InstallmentID uuid.UUID
	PaidAt        time.Time
	Reference     string
}

// PaymentGateway verifies inbound payment confirmations. Implementations
// own protocol details such as webhook signatures; the ledger only sees
// verified notifications.
type PaymentGateway interface {
	VerifyNotification(payload []byte, signature string) (*PaymentNotification, error)
}
