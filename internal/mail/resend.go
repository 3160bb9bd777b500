package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/zazianopizza/zaziano/internal/domain"
	"go.uber.org/zap"
)

type ResendMailer struct {
	client *resend.Client
	from   string
	logger *zap.SugaredLogger
}

type Config struct {
	APIKey string
	// From is the sender identity, e.g. "Zaziano Restaurant <info@zaziano.de>".
	From string
}

func NewResendMailer(cfg Config, logger *zap.SugaredLogger) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(cfg.APIKey),
		from:   cfg.From,
		logger: logger,
	}
}

func (m *ResendMailer) SendOrderConfirmation(ctx context.Context, order *domain.Order, orderID int64) (string, error) {
	if order.Customer.Email == "" {
		return "", ErrMissingEmail
	}

	html, err := renderConfirmation(order, orderID)
	if err != nil {
		return "", err
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{order.Customer.Email},
		Subject: fmt.Sprintf("Bestellbestätigung #%d - Zaziano Restaurant", orderID),
		Html:    html,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to send confirmation email: %w", err)
	}

	m.logger.Infow("confirmation email sent", "order_id", orderID, "email_id", sent.Id)

	return sent.Id, nil
}

func (m *ResendMailer) SendCancellation(ctx context.Context, order *domain.Order, orderID int64, refunded bool) (string, error) {
	if order.Customer.Email == "" {
		return "", ErrMissingEmail
	}

	html, err := renderCancellation(order, orderID, refunded)
	if err != nil {
		return "", err
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{order.Customer.Email},
		Subject: fmt.Sprintf("Stornierung Ihrer Bestellung #%d - Zaziano Restaurant", orderID),
		Html:    html,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to send cancellation email: %w", err)
	}

	m.logger.Infow("cancellation email sent", "order_id", orderID, "email_id", sent.Id, "refunded", refunded)

	return sent.Id, nil
}
