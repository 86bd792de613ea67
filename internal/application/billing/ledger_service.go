package billing

import (
	"context"
	"time"

	"github.com/crediario/backend/internal/domain/billing"
	"github.com/crediario/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// LedgerService handles mutations and queries on individual installments
type LedgerService struct {
	installmentRepo billing.InstallmentRepository
	eventPublisher  shared.EventPublisher
	now             func() time.Time
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(installmentRepo billing.InstallmentRepository, eventPublisher shared.EventPublisher) *LedgerService {
	return &LedgerService{
		installmentRepo: installmentRepo,
		eventPublisher:  eventPublisher,
		now:             time.Now,
	}
}

// MarkPaid settles an installment at the given time. The operation is
// idempotent: settling an already-paid installment reports AlreadyPaid and
// leaves the recorded paid time untouched, so retried gateway callbacks
// never double-count.
func (s *LedgerService) MarkPaid(ctx context.Context, installmentID uuid.UUID, at time.Time) (*MarkPaidResult, error) {
	installment, err := s.installmentRepo.FindByID(ctx, installmentID)
	if err != nil {
		return nil, err
	}

	if !installment.MarkPaid(at) {
		return &MarkPaidResult{
			Installment: ToInstallmentResponse(installment),
			AlreadyPaid: true,
		}, nil
	}

	if err := s.installmentRepo.Save(ctx, installment); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, billing.NewInstallmentPaidEvent(installment, at))
	}

	return &MarkPaidResult{Installment: ToInstallmentResponse(installment)}, nil
}

// Edit applies an administrative correction to an installment. It never
// rewrites the contract total; a manually edited ledger is an explicit
// admin override.
func (s *LedgerService) Edit(ctx context.Context, installmentID uuid.UUID, req EditInstallmentRequest) (*InstallmentResponse, error) {
	installment, err := s.installmentRepo.FindByID(ctx, installmentID)
	if err != nil {
		return nil, err
	}

	patch := billing.InstallmentPatch{PaidAt: req.PaidAt}
	if req.Value != nil {
		value, err := parseMoney(*req.Value)
		if err != nil {
			return nil, err
		}
		patch.Value = &value
	}
	if req.DueDate != nil {
		due, err := parseDate(*req.DueDate)
		if err != nil {
			return nil, err
		}
		patch.DueDate = &due
	}
	if req.Status != nil {
		status := billing.InstallmentStatus(*req.Status)
		patch.Status = &status
	}

	if err := installment.ApplyEdit(patch, s.now()); err != nil {
		return nil, err
	}

	if err := s.installmentRepo.Save(ctx, installment); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, billing.NewInstallmentEditedEvent(installment))
	}

	response := ToInstallmentResponse(installment)
	return &response, nil
}

// Delete removes one installment. Remaining installments are not rebalanced.
func (s *LedgerService) Delete(ctx context.Context, installmentID uuid.UUID) error {
	installment, err := s.installmentRepo.FindByID(ctx, installmentID)
	if err != nil {
		return err
	}

	if err := s.installmentRepo.Delete(ctx, installmentID); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, billing.NewInstallmentDeletedEvent(installment.ID, installment.ContractID))
	}
	return nil
}

// ListByContract retrieves a contract's installments ordered by ordinal
func (s *LedgerService) ListByContract(ctx context.Context, contractID uuid.UUID) ([]InstallmentResponse, error) {
	installments, err := s.installmentRepo.ListByContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	return toInstallmentResponses(installments), nil
}

// ListByCustomer retrieves all installments across a customer's contracts
// ordered by due date
func (s *LedgerService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]InstallmentResponse, error) {
	installments, err := s.installmentRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toInstallmentResponses(installments), nil
}

func toInstallmentResponses(installments []billing.Installment) []InstallmentResponse {
	responses := make([]InstallmentResponse, len(installments))
	for i := range installments {
		responses[i] = ToInstallmentResponse(&installments[i])
	}
	return responses
}
