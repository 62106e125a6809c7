package errors

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrOrderNotFound    = errors.New("order not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrSoldOut          = errors.New("product sold out")
	ErrNotOrderOwner    = errors.New("order belongs to another buyer")
	ErrAlreadyCancelled = errors.New("order already cancelled")
)
