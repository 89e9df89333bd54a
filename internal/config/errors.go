package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates missing API address, socket URL or
	// request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty or in-memory DSN; the device
	// key cache must be durable.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRealtimeConfigs indicates a negative reconnect budget or a
	// non-positive reconnect interval.
	ErrInvalidRealtimeConfigs = errors.New("invalid realtime configuration")
	// ErrInvalidVaultConfigs indicates a weak iteration count or a disabled
	// unlock limiter.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidMediaConfigs indicates a non-positive attachment size limit.
	ErrInvalidMediaConfigs = errors.New("invalid media configuration")
)
