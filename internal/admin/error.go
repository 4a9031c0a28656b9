package admin

import "errors"

var (
	ErrNoDraft      = errors.New("no product is being edited")
	ErrUnknownField = errors.New("unknown product field")
	ErrFieldType    = errors.New("wrong value type for field")
	ErrImageIndex   = errors.New("image index out of range")
)
