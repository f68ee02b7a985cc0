package model

import "errors"

var (
	ErrValidation      = errors.New("validation error")             // 400
	ErrUnauthorized    = errors.New("unauthorized user")            // 401
	ErrInvoiceNotFound = errors.New("invoice not found")            // 404
	ErrBadGateway      = errors.New("bad gateway")                  // 502
	ErrIntegrity       = errors.New("notification integrity error") // gateway failure code
)
