package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/zazianopizza/zaziano/internal/domain"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type RefundOrderRequest struct {
	OrderID int64 `json:"orderId" validate:"required"`
}

// createOrderHandler godoc
//
//	@Summary		Create order
//	@Description	Stores a new customer order in pending state
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.Order	true	"Order payload"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/orders [post]
func (app *application) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := readJson(w, r, &order); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(&order); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.orderService.CreateOrder(r.Context(), &order); err != nil {
		app.logger.Errorw("failed to save order", "error", err)
		writeJsonError(w, http.StatusInternalServerError, "Anfrage konnte nicht gespeichert werden")
		return
	}

	response := map[string]any{
		"message": "Anfrage gespeichert",
		"order":   order,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listOrdersHandler godoc
//
//	@Summary		List orders
//	@Description	Returns all orders, newest first
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}		domain.Order
//	@Failure		500	{object}	map[string]string
//	@Security		BearerAuth
//	@Router			/orders [get]
func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := app.orderService.ListOrders(r.Context())
	if err != nil {
		app.logger.Errorw("failed to list orders", "error", err)
		writeJsonError(w, http.StatusInternalServerError, "Anfragen konnten nicht gelesen werden")
		return
	}

	if orders == nil {
		orders = []domain.Order{}
	}

	if err := app.jsonRespone(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateOrderStatusHandler godoc
//
//	@Summary		Update order status
//	@Description	Overwrites the status of one order
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order_id	path		int							true	"Order ID"
//	@Param			request		body		UpdateOrderStatusRequest	true	"Status update"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Security		BearerAuth
//	@Router			/orders/{order_id} [put]
func (app *application) updateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req UpdateOrderStatusRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orderService.UpdateStatus(r.Context(), orderID, domain.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrOrderNotFound):
			app.notFoundError(w, r, "Anfrage nicht gefunden")
		default:
			app.logger.Errorw("failed to update order status", "order_id", orderID, "error", err)
			writeJsonError(w, http.StatusInternalServerError, "Statusaktualisierung fehlgeschlagen")
		}
		return
	}

	response := map[string]any{
		"message": "Aktualisiert",
		"order":   order,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteOrderHandler godoc
//
//	@Summary		Delete order
//	@Description	Removes one order by id
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	path		int	true	"Order ID"
//	@Success		200			{object}	map[string]string
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Security		BearerAuth
//	@Router			/orders/{order_id} [delete]
func (app *application) deleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.orderService.DeleteOrder(r.Context(), orderID); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			app.notFoundError(w, r, "Anfrage nicht gefunden")
			return
		}
		app.logger.Errorw("failed to delete order", "order_id", orderID, "error", err)
		writeJsonError(w, http.StatusInternalServerError, "Änderungen konnten nicht gespeichert werden")
		return
	}

	response := map[string]string{"message": "Die Anfrage wurde erfolgreich gelöscht"}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// refundOrderHandler godoc
//
//	@Summary		Refund order
//	@Description	Refunds the completed payment behind an order and cancels it
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RefundOrderRequest	true	"Refund request"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		BearerAuth
//	@Router			/refund-order-by-id [post]
func (app *application) refundOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req RefundOrderRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orderService.Refund(r.Context(), req.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			app.notFoundError(w, r, "Anfrage nicht gefunden")
		case errors.Is(err, domain.ErrAlreadyRefunded):
			writeJsonError(w, http.StatusBadRequest, "Diese Bestellung wurde bereits erstattet")
		case errors.Is(err, domain.ErrMissingPaymentLink):
			writeJsonError(w, http.StatusBadRequest, "Keine Zahlungsinformationen für diese Bestellung gefunden")
		case errors.Is(err, domain.ErrPaymentNotCompleted):
			writeJsonError(w, http.StatusBadRequest, "Die Zahlung wurde nicht abgeschlossen")
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	response := map[string]any{
		"success": true,
		"message": "Die Rückerstattung wurde erfolgreich durchgeführt",
		"order":   order,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
