package token

import "errors"

var (
	ErrMalformed        = errors.New("token is malformed")
	ErrExpired          = errors.New("token is expired")
	ErrSignatureInvalid = errors.New("token signature is invalid")
	ErrUnspecified      = errors.New("token is invalid")
)
