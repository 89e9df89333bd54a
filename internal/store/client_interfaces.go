package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Well-known Device Key Cache keys.
const (
	// MasterKey holds the unwrapped identity private key of the local user.
	MasterKey = "master_key"
	// sharedKeyPrefix prefixes per-partner shared secret entries.
	sharedKeyPrefix = "shared_key_"
)

// SharedKey returns the Device Key Cache key of the shared secret with partnerID.
func SharedKey(partnerID string) string {
	return sharedKeyPrefix + partnerID
}

// DeviceKeyCache is a durable per-profile key to bytes store. It is never
// synced anywhere. Get returns (nil, nil) when key is absent.
type DeviceKeyCache interface {
	Put(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Clear(ctx context.Context) error
}
