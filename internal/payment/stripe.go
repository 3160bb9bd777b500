package payment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

// paymentMethodTypes offered at checkout.
var paymentMethodTypes = []string{
	"card",
	"paypal",
	"sepa_debit",
	"klarna",
	"giropay",
	"eps",
	"p24",
	"ideal",
	"alipay",
	"link",
}

type StripeProvider struct {
	sc      *client.API
	baseURL string
	logger  *zap.SugaredLogger
}

type StripeConfig struct {
	SecretKey string
	// BaseURL is the public storefront origin the customer is redirected
	// back to after payment.
	BaseURL string
}

func NewStripeProvider(cfg StripeConfig, logger *zap.SugaredLogger) *StripeProvider {
	sc := &client.API{}
	sc.Init(cfg.SecretKey, nil)

	return &StripeProvider{
		sc:      sc,
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, lines []Line, customerEmail string, orderID int64) (*CheckoutSession, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(lines))
	for _, line := range lines {
		priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency: stripe.String(string(stripe.CurrencyEUR)),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(line.Name),
			},
			UnitAmount: stripe.Int64(line.UnitAmount),
		}
		if line.Description != "" {
			priceData.ProductData.Description = stripe.String(line.Description)
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: priceData,
			Quantity:  stripe.Int64(line.Quantity),
		})
	}

	orderIDStr := strconv.FormatInt(orderID, 10)

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice(paymentMethodTypes),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(p.baseURL + "/payment-success?order_id=" + orderIDStr + "&session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:          stripe.String(p.baseURL + "/payment-failed"),
	}
	params.Context = ctx
	params.AddMetadata("order_id", orderIDStr)
	if customerEmail != "" {
		params.CustomerEmail = stripe.String(customerEmail)
	}

	sess, err := p.sc.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &CheckoutSession{
		ID:            sess.ID,
		PaymentStatus: string(sess.PaymentStatus),
		CustomerEmail: customerEmail,
		Metadata:      sess.Metadata,
	}, nil
}

func (p *StripeProvider) GetSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("payment_intent")

	sess, err := p.sc.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve checkout session: %w", err)
	}

	result := &CheckoutSession{
		ID:            sess.ID,
		PaymentStatus: string(sess.PaymentStatus),
		Metadata:      sess.Metadata,
	}
	if sess.CustomerDetails != nil {
		result.CustomerEmail = sess.CustomerDetails.Email
	}
	if sess.PaymentIntent != nil {
		result.PaymentIntentID = sess.PaymentIntent.ID
	}

	return result, nil
}

func (p *StripeProvider) FindRefund(ctx context.Context, paymentIntentID string) (*Refund, error) {
	params := &stripe.RefundListParams{
		PaymentIntent: stripe.String(paymentIntentID),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(1)

	iter := p.sc.Refunds.List(params)
	for iter.Next() {
		refund := iter.Refund()
		return &Refund{
			ID:              refund.ID,
			PaymentIntentID: paymentIntentID,
			Status:          string(refund.Status),
		}, nil
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to list refunds: %w", err)
	}

	return nil, nil
}

func (p *StripeProvider) CreateRefund(ctx context.Context, paymentIntentID string) (*Refund, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
	}
	params.Context = ctx

	refund, err := p.sc.Refunds.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create refund: %w", err)
	}

	p.logger.Infow("refund created", "refund_id", refund.ID, "payment_intent_id", paymentIntentID)

	return &Refund{
		ID:              refund.ID,
		PaymentIntentID: paymentIntentID,
		Status:          string(refund.Status),
	}, nil
}
