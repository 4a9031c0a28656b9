package product

import "errors"

var (
	// -- Validation --
	ErrMissingID     = errors.New("product id is required")
	ErrEmptyName     = errors.New("product name cannot be empty")
	ErrNegativePrice = errors.New("product price cannot be negative")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
)
