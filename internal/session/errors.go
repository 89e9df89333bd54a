package session

import "errors"

var (
	// ErrAlreadyStarted is returned by Start on a running session.
	ErrAlreadyStarted = errors.New("session already started")
	// ErrNotStarted is returned when a session operation needs a user.
	ErrNotStarted = errors.New("session not started")
	// ErrNoToken is returned by Start without a session token.
	ErrNoToken = errors.New("no session token")
	// ErrTokenMismatch is returned when the token subject is not the
	// profile the API answers with.
	ErrTokenMismatch = errors.New("session token belongs to another user")
)
