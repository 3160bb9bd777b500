package repo

import (
	"context"

	"github.com/zazianopizza/zaziano/internal/domain"
)

type OrderAuditRepository interface {
	Create(ctx context.Context, audit *domain.OrderStatusAudit) error
	GetByOrderID(ctx context.Context, orderID int64, limit int) ([]domain.OrderStatusAudit, error)
}
