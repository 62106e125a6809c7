package errors

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrProductNotFound = errors.New("product not found")
	ErrSoldOut         = errors.New("product sold out")
)
