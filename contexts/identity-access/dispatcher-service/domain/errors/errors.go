package errors

import "errors"

var (
	ErrForbidden        = errors.New("operation not permitted for role")
	ErrUnknownOperation = errors.New("unknown operation")
	ErrInvalidArguments = errors.New("arguments do not match operation")
)
