package payment

import (
	"context"
	"math"

	"github.com/zazianopizza/zaziano/internal/domain"
)

// Line is one priced checkout line in minor currency units.
type Line struct {
	Name        string
	Description string
	UnitAmount  int64
	Quantity    int64
}

// CheckoutSession is the processor-side payment attempt linked to an order.
type CheckoutSession struct {
	ID              string
	PaymentStatus   string
	CustomerEmail   string
	PaymentIntentID string
	Metadata        map[string]string
}

// Refund is a processor-side reversal of a completed payment.
type Refund struct {
	ID              string
	PaymentIntentID string
	Status          string
}

// Provider is the payment processor the order lifecycle talks to.
type Provider interface {
	CreateCheckoutSession(ctx context.Context, lines []Line, customerEmail string, orderID int64) (*CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
	// FindRefund returns the newest refund for a payment intent, or nil when
	// none exists yet.
	FindRefund(ctx context.Context, paymentIntentID string) (*Refund, error)
	CreateRefund(ctx context.Context, paymentIntentID string) (*Refund, error)
}

// PaymentCompleted is the processor session state a refund requires.
const PaymentCompleted = "paid"

// MinorUnits converts a major-unit amount to rounded minor units (cents).
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// BuildLines expands order items into checkout lines: one line per item, one
// per extra with a positive quantity, plus a delivery line when the order is
// a delivery.
func BuildLines(items []domain.OrderItem, deliveryType string, deliveryFee float64) []Line {
	var lines []Line

	for _, item := range items {
		lines = append(lines, Line{
			Name:        item.Name,
			Description: item.SizeLabel,
			UnitAmount:  MinorUnits(item.BasePrice),
			Quantity:    item.Quantity,
		})

		for _, extra := range item.Extras {
			if extra.Quantity <= 0 {
				continue
			}
			description := item.Name
			if item.SizeLabel != "" {
				description = item.Name + " (" + item.SizeLabel + ")"
			}
			lines = append(lines, Line{
				Name:        extra.Name,
				Description: description,
				UnitAmount:  MinorUnits(extra.Price),
				Quantity:    extra.Quantity,
			})
		}
	}

	if deliveryType == "delivery" {
		lines = append(lines, Line{
			Name:        "Lieferung",
			Description: "für die Lieferung",
			UnitAmount:  MinorUnits(deliveryFee),
			Quantity:    1,
		})
	}

	return lines
}
