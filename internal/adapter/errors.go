package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. Use
// [errors.Is] to match them.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// ErrNoSession is returned when an authenticated call is made before a
// session token is set.
var ErrNoSession = errors.New("no session token")
