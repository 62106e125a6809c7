package errors

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnknownPlan    = errors.New("unknown subscription plan")
	ErrUnknownChannel = errors.New("unknown payment channel")
	ErrUserNotFound   = errors.New("user not found")
)
