package billing

import (
	"context"
	"time"

	"github.com/crediario/backend/internal/domain/billing"
	"github.com/crediario/backend/internal/domain/orders"
	"github.com/crediario/backend/internal/domain/shared"
	"github.com/crediario/backend/internal/domain/shared/valueobject"
)

const recentContractsLimit = 5

// ReportService computes time-windowed financial KPIs. Received figures are
// keyed by when installments were settled; sales and deal figures by when
// contracts were signed. The two deliberately use different timestamps and
// source fields: cash events versus signing events.
type ReportService struct {
	contractRepo    billing.ContractRepository
	installmentRepo billing.InstallmentRepository
	orderRepo       orders.OrderRequestRepository
}

// NewReportService creates a new ReportService
func NewReportService(
	contractRepo billing.ContractRepository,
	installmentRepo billing.InstallmentRepository,
	orderRepo orders.OrderRequestRepository,
) *ReportService {
	return &ReportService{
		contractRepo:    contractRepo,
		installmentRepo: installmentRepo,
		orderRepo:       orderRepo,
	}
}

// SumReceivedInMonth sums installment values settled within the calendar
// month, using the half-open window [first day, first day of next month) on
// the paid time
func (s *ReportService) SumReceivedInMonth(ctx context.Context, year int, month time.Month) (*PeriodTotal, error) {
	if month < time.January || month > time.December {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month must be between 1 and 12")
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	total, count, err := s.installmentRepo.SumPaidInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return &PeriodTotal{Total: total.StringFixed(), Count: count}, nil
}

// SumDealsInPeriod sums immutable contract totals for contracts created in
// [start, end). Later installment edits or deletions never move these
// figures.
func (s *ReportService) SumDealsInPeriod(ctx context.Context, start, end time.Time) (*PeriodTotal, error) {
	if !end.After(start) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Period end must be after start")
	}

	total, count, err := s.contractRepo.SumTotalsCreatedInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return &PeriodTotal{Total: total.StringFixed(), Count: count}, nil
}

// Dashboard assembles the admin dashboard figures as of now: cash received
// this month, deals signed this month and this year, pending purchase
// requests, and the latest contracts with their derived status.
func (s *ReportService) Dashboard(ctx context.Context, now time.Time) (*DashboardResponse, error) {
	received, err := s.SumReceivedInMonth(ctx, now.Year(), now.Month())
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	salesMonth, err := s.SumDealsInPeriod(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}

	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	dealsYear, err := s.SumDealsInPeriod(ctx, yearStart, yearStart.AddDate(1, 0, 0))
	if err != nil {
		return nil, err
	}

	pendingOrders, err := s.orderRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.contractRepo.FindRecent(ctx, recentContractsLimit)
	if err != nil {
		return nil, err
	}

	today := valueobject.DateOf(now)
	recentResponses := make([]ContractResponse, len(recent))
	for i := range recent {
		recentResponses[i] = ToContractResponse(&recent[i], today)
	}

	return &DashboardResponse{
		ReceivedMonth:   *received,
		SalesMonth:      *salesMonth,
		DealsYear:       *dealsYear,
		PendingOrders:   pendingOrders,
		RecentContracts: recentResponses,
	}, nil
}
