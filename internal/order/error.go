package order

import "errors"

var (
	// -- Validation & Input --
	ErrMissingCustomerField = errors.New("missing customer field")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrNoItems              = errors.New("order has no items")
	ErrInvalidQuantity      = errors.New("invalid item quantity")
	ErrTotalMismatch        = errors.New("order total does not match items")

	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")

	// -- Operation Failures --
	ErrCreateOrder = errors.New("failed to create order")
)
