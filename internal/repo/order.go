package repo

import (
	"context"
	"time"

	"github.com/zazianopizza/zaziano/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
	AttachCheckoutSession(ctx context.Context, id int64, sessionID string) error
	MarkRefunded(ctx context.Context, id int64, refundID, paymentIntentID string, refundedAt time.Time) (*domain.Order, error)
}
