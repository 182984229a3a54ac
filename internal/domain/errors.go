package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInsufficientCredit = errors.New("insufficient credit")
	ErrUpstreamFailure    = errors.New("upstream failure")
)
