package main

import (
	"errors"
	"net/http"

	"github.com/zazianopizza/zaziano/internal/domain"
	"github.com/zazianopizza/zaziano/internal/payment"
)

type CreateCheckoutSessionRequest struct {
	Items         []domain.OrderItem `json:"items" validate:"required,min=1"`
	CustomerEmail string             `json:"customerEmail" validate:"omitempty,email"`
	OrderID       int64              `json:"orderId" validate:"required"`
	DeliveryType  string             `json:"deliveryType"`
	DeliveryFee   *float64           `json:"deliveryFee"`
}

type CheckoutSessionResponse struct {
	PaymentStatus string            `json:"payment_status"`
	CustomerEmail string            `json:"customer_email"`
	Metadata      map[string]string `json:"metadata"`
}

// createCheckoutSessionHandler godoc
//
//	@Summary		Create checkout session
//	@Description	Builds the priced line items for an order and opens a payment session
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateCheckoutSessionRequest	true	"Checkout request"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/create-checkout-session [post]
func (app *application) createCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateCheckoutSessionRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	deliveryFee := 0.0
	if req.DeliveryFee != nil {
		deliveryFee = *req.DeliveryFee
	} else if req.DeliveryType == "delivery" {
		settings, err := app.settingsRepo.Get(r.Context())
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		deliveryFee = settings.DeliveryFee
	}

	lines := payment.BuildLines(req.Items, req.DeliveryType, deliveryFee)

	session, err := app.payments.CreateCheckoutSession(r.Context(), lines, req.CustomerEmail, req.OrderID)
	if err != nil {
		app.logger.Errorw("failed to create checkout session", "order_id", req.OrderID, "error", err)
		writeJsonError(w, http.StatusInternalServerError, "Zahlungssitzung konnte nicht erstellt werden")
		return
	}

	// best effort: the session already exists, a failed link is only logged
	app.orderService.AttachCheckoutSession(r.Context(), req.OrderID, session.ID)

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"id": session.ID}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCheckoutSessionHandler godoc
//
//	@Summary		Get checkout session status
//	@Description	Returns the payment status of a checkout session
//	@Tags			checkout
//	@Produce		json
//	@Param			session_id	query		string	true	"Session ID"
//	@Success		200			{object}	CheckoutSessionResponse
//	@Failure		400			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/checkout-session [get]
func (app *application) getCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		app.badRequestResponse(w, r, errors.New("session_id is required"))
		return
	}

	session, err := app.payments.GetSession(r.Context(), sessionID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := CheckoutSessionResponse{
		PaymentStatus: session.PaymentStatus,
		CustomerEmail: session.CustomerEmail,
		Metadata:      session.Metadata,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
