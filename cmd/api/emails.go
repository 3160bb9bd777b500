package main

import (
	"errors"
	"net/http"

	"github.com/zazianopizza/zaziano/internal/domain"
	"github.com/zazianopizza/zaziano/internal/mail"
)

type SendOrderEmailRequest struct {
	OrderData *domain.Order `json:"orderData" validate:"required"`
	OrderID   int64         `json:"orderId" validate:"required"`
}

type SendCancellationEmailRequest struct {
	OrderData *domain.Order `json:"orderData" validate:"required"`
	OrderID   int64         `json:"orderId" validate:"required"`
	Refunded  bool          `json:"refunded"`
}

// sendOrderEmailHandler godoc
//
//	@Summary		Send order confirmation email
//	@Description	Renders and sends the confirmation email for an order
//	@Tags			emails
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SendOrderEmailRequest	true	"Email request"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/send-order-email [post]
func (app *application) sendOrderEmailHandler(w http.ResponseWriter, r *http.Request) {
	var req SendOrderEmailRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil || req.OrderData.Customer.Email == "" {
		writeJsonError(w, http.StatusBadRequest, "Ungültige Bestelldaten oder E-Mail")
		return
	}

	messageID, err := app.mailer.SendOrderConfirmation(r.Context(), req.OrderData, req.OrderID)
	if err != nil {
		if errors.Is(err, mail.ErrMissingEmail) {
			writeJsonError(w, http.StatusBadRequest, "Ungültige Bestelldaten oder E-Mail")
			return
		}
		app.logger.Errorw("failed to send confirmation email", "order_id", req.OrderID, "error", err)
		writeJsonError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := map[string]any{
		"message": "E-Mail erfolgreich gesendet",
		"data":    map[string]string{"id": messageID},
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// sendCancellationEmailHandler godoc
//
//	@Summary		Send cancellation email
//	@Description	Renders and sends the cancellation email, with refund wording when applicable
//	@Tags			emails
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SendCancellationEmailRequest	true	"Email request"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/send-cancellation-email [post]
func (app *application) sendCancellationEmailHandler(w http.ResponseWriter, r *http.Request) {
	var req SendCancellationEmailRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil || req.OrderData.Customer.Email == "" {
		writeJsonError(w, http.StatusBadRequest, "Ungültige Bestelldaten oder E-Mail")
		return
	}

	messageID, err := app.mailer.SendCancellation(r.Context(), req.OrderData, req.OrderID, req.Refunded)
	if err != nil {
		if errors.Is(err, mail.ErrMissingEmail) {
			writeJsonError(w, http.StatusBadRequest, "Ungültige Bestelldaten oder E-Mail")
			return
		}
		app.logger.Errorw("failed to send cancellation email", "order_id", req.OrderID, "error", err)
		writeJsonError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := map[string]any{
		"message": "E-Mail erfolgreich gesendet",
		"data":    map[string]string{"id": messageID},
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
