package domain

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrTaskNotFound    = errors.New("import task not found")

	ErrInvalidStatus       = errors.New("invalid order status")
	ErrAlreadyRefunded     = errors.New("order already refunded")
	ErrMissingPaymentLink  = errors.New("order has no checkout session attached")
	ErrPaymentNotCompleted = errors.New("payment is not completed")
)
