package mail

import (
	"context"
	"errors"

	"github.com/zazianopizza/zaziano/internal/domain"
)

// ErrMissingEmail is returned when an order carries no customer email to
// deliver to.
var ErrMissingEmail = errors.New("order has no customer email")

// Sender delivers transactional order emails. The returned string is the
// provider-side message id.
type Sender interface {
	SendOrderConfirmation(ctx context.Context, order *domain.Order, orderID int64) (string, error)
	SendCancellation(ctx context.Context, order *domain.Order, orderID int64, refunded bool) (string, error)
}
