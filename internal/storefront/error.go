package storefront

import "errors"

var (
	ErrAccessDenied    = errors.New("access denied")
	ErrProductNotFound = errors.New("product not found")
	ErrNotAdmin        = errors.New("admin session required")
)
