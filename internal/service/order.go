package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/zazianopizza/zaziano/internal/domain"
	"github.com/zazianopizza/zaziano/internal/payment"
	"github.com/zazianopizza/zaziano/internal/queue"
	"github.com/zazianopizza/zaziano/internal/repo"
	"go.uber.org/zap"
)

// idGenerator hands out strictly increasing millisecond-based order ids, so
// two orders created in the same millisecond still get distinct keys.
type idGenerator struct {
	mu   sync.Mutex
	last int64
}

func (g *idGenerator) next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id

	return id
}

type OrderService struct {
	orders    repo.OrderRepository
	auditRepo repo.OrderAuditRepository
	payments  payment.Provider
	broker    queue.Broker
	logger    *zap.SugaredLogger
	ids       idGenerator
}

func NewOrderService(
	orders repo.OrderRepository,
	auditRepo repo.OrderAuditRepository,
	payments payment.Provider,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orders:    orders,
		auditRepo: auditRepo,
		payments:  payments,
		broker:    broker,
		logger:    logger,
	}
}

// CreateOrder assigns a fresh id, stamps the order pending and persists it.
func (s *OrderService) CreateOrder(ctx context.Context, order *domain.Order) error {
	order.ID = s.ids.next()
	order.Status = domain.StatusPending
	order.CreatedAt = time.Now()

	if err := s.orders.Create(ctx, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Infow("order created", "order_id", order.ID, "total", order.TotalPrice)

	s.publishEvent(ctx, domain.OrderEvent{
		EventType: domain.EventOrderCreated,
		OrderID:   order.ID,
		NewStatus: order.Status,
		Timestamp: order.CreatedAt,
	})

	return nil
}

// ListOrders returns every order, newest first.
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})

	return orders, nil
}

// UpdateStatus overwrites an order's status with one of the six known values.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	current, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("order status updated", "order_id", id, "old_status", current.Status, "new_status", status)

	s.publishEvent(ctx, domain.OrderEvent{
		EventType: domain.EventOrderStatusChanged,
		OrderID:   id,
		OldStatus: current.Status,
		NewStatus: status,
		Timestamp: time.Now(),
	})

	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("order deleted", "order_id", id)

	s.publishEvent(ctx, domain.OrderEvent{
		EventType: domain.EventOrderDeleted,
		OrderID:   id,
		Timestamp: time.Now(),
	})

	return nil
}

// AttachCheckoutSession links a checkout session to its order. The session
// already exists on the processor side, so a missing order is only logged.
func (s *OrderService) AttachCheckoutSession(ctx context.Context, id int64, sessionID string) {
	if err := s.orders.AttachCheckoutSession(ctx, id, sessionID); err != nil {
		s.logger.Warnw("failed to attach checkout session to order", "order_id", id, "session_id", sessionID, "error", err)
		return
	}

	s.logger.Infow("checkout session attached", "order_id", id, "session_id", sessionID)
}

// Refund reverses the completed payment behind an order. The processor-side
// refund check before creating a new refund is best effort; under concurrent
// calls the processor's own duplicate-refund rejection is the backstop.
func (s *OrderService) Refund(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.RefundedAt != nil {
		return order, domain.ErrAlreadyRefunded
	}

	if order.StripeSessionID == "" {
		return nil, domain.ErrMissingPaymentLink
	}

	oldStatus := order.Status

	session, err := s.payments.GetSession(ctx, order.StripeSessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment session: %w", err)
	}

	if session.PaymentStatus != payment.PaymentCompleted {
		return nil, domain.ErrPaymentNotCompleted
	}
	if session.PaymentIntentID == "" {
		return nil, domain.ErrMissingPaymentLink
	}

	// a refund may already exist on the processor side; synchronize instead
	// of refunding twice
	existing, err := s.payments.FindRefund(ctx, session.PaymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing refunds: %w", err)
	}
	if existing != nil {
		s.logger.Warnw("refund already exists on processor, synchronizing", "order_id", id, "refund_id", existing.ID)

		order, err = s.orders.MarkRefunded(ctx, id, existing.ID, session.PaymentIntentID, time.Now())
		if err != nil {
			return nil, err
		}

		return order, domain.ErrAlreadyRefunded
	}

	refund, err := s.payments.CreateRefund(ctx, session.PaymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("failed to create refund: %w", err)
	}

	order, err = s.orders.MarkRefunded(ctx, id, refund.ID, session.PaymentIntentID, time.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Infow("order refunded", "order_id", id, "refund_id", refund.ID)

	s.publishEvent(ctx, domain.OrderEvent{
		EventType: domain.EventOrderRefunded,
		OrderID:   id,
		OldStatus: oldStatus,
		NewStatus: domain.StatusCancelled,
		Timestamp: time.Now(),
	})

	return order, nil
}

// ProcessOrderEvent persists one consumed lifecycle event to the audit trail.
func (s *OrderService) ProcessOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	audit := &domain.OrderStatusAudit{
		OrderID:   event.OrderID,
		EventType: event.EventType,
		OldStatus: event.OldStatus,
		NewStatus: event.NewStatus,
		Timestamp: event.Timestamp,
	}

	if err := s.auditRepo.Create(ctx, audit); err != nil {
		return fmt.Errorf("failed to create audit record: %w", err)
	}

	return nil
}

// publishEvent is best effort: the order write already succeeded, so a broker
// failure must not fail the request.
func (s *OrderService) publishEvent(ctx context.Context, event domain.OrderEvent) {
	if s.broker == nil {
		return
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("failed to marshal order event", "order_id", event.OrderID, "error", err)
		return
	}

	if err := s.broker.Publish(ctx, queue.QueueOrderEvents, eventBytes); err != nil {
		s.logger.Errorw("failed to publish order event", "order_id", event.OrderID, "event_type", event.EventType, "error", err)
	}
}
