package orders

import (
	"context"
	"time"

	"github.com/crediario/backend/internal/domain/orders"
	"github.com/crediario/backend/internal/domain/partner"
	"github.com/crediario/backend/internal/domain/shared"
	"github.com/crediario/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// OrderService handles the order request workflow
type OrderService struct {
	orderRepo      orders.OrderRequestRepository
	customerRepo   partner.CustomerRepository
	eventPublisher shared.EventPublisher
	now            func() time.Time
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo orders.OrderRequestRepository,
	customerRepo partner.CustomerRepository,
	eventPublisher shared.EventPublisher,
) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		customerRepo:   customerRepo,
		eventPublisher: eventPublisher,
		now:            time.Now,
	}
}

// Create submits a new pending purchase request for a customer
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	amount, err := valueobject.NewMoneyFromString(req.Amount)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be a decimal with at most two decimal places")
	}

	order, err := orders.NewOrderRequest(req.CustomerID, req.Product, amount)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToOrderResponse(order)
	return &response, nil
}

// Decide approves or rejects a pending request. A second decision on the
// same request is a conflict.
func (s *OrderService) Decide(ctx context.Context, orderID uuid.UUID, req DecideOrderRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Decide(orders.OrderStatus(req.Decision), req.Note, s.now()); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToOrderResponse(order)
	return &response, nil
}

// ListByStatus retrieves requests in the given status, or all when status is
// empty
func (s *OrderService) ListByStatus(ctx context.Context, status string) ([]OrderResponse, error) {
	var statusFilter *orders.OrderStatus
	if status != "" {
		parsed := orders.OrderStatus(status)
		if !parsed.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Order status must be pending, approved or rejected")
		}
		statusFilter = &parsed
	}

	found, err := s.orderRepo.FindByStatus(ctx, statusFilter)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(found), nil
}

// ListByCustomer retrieves a customer's own requests, newest first
func (s *OrderService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]OrderResponse, error) {
	found, err := s.orderRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(found), nil
}

// Delete removes a request in any state
func (s *OrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return err
	}

	if err := s.orderRepo.Delete(ctx, orderID); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, orders.NewOrderDeletedEvent(orderID))
	}
	return nil
}

func (s *OrderService) publishEvents(ctx context.Context, order *orders.OrderRequest) {
	if s.eventPublisher == nil {
		return
	}
	if events := order.GetDomainEvents(); len(events) > 0 {
		_ = s.eventPublisher.Publish(ctx, events...)
		order.ClearDomainEvents()
	}
}

func toOrderResponses(found []orders.OrderRequest) []OrderResponse {
	responses := make([]OrderResponse, len(found))
	for i := range found {
		responses[i] = ToOrderResponse(&found[i])
	}
	return responses
}
