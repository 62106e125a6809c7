package errors

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrNotPurchased   = errors.New("buyer has not purchased this product")
)
