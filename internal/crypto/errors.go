package crypto

import "errors"

var (
	// ErrInvalidKeyLength is returned when a key or secret is not 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")
	// ErrKeyGeneration is returned when the system random source fails.
	ErrKeyGeneration = errors.New("key generation failed")
)
