package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrItemRequired        = errors.New("item is required")
	ErrBatchRequired       = errors.New("batch number is required")
	ErrQuantityRequired    = errors.New("quantity is required")
	ErrQuantityNotNumeric  = errors.New("quantity must be a number")
	ErrQuantityNotPositive = errors.New("quantity must be greater than zero")

	ErrItemIDRequired    = errors.New("item id is required")
	ErrNoSerialNumbers   = errors.New("at least one serial number is required")
	ErrEmptySerialNumber = errors.New("serial numbers cannot be blank")
	ErrSerialCountQty    = errors.New("serial count must match the intake quantity")
)
