package errors

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidRole    = errors.New("role must be seller or buyer")
	ErrUserExists     = errors.New("username already taken")
	ErrUserNotFound   = errors.New("user not found")
)
