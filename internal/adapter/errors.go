package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrServerUnreachable indicates a transport-level failure before any
	// HTTP status was received (DNS, connect, timeout). The auth gate maps
	// it to its network-error state.
	ErrServerUnreachable = errors.New("server unreachable")
)
