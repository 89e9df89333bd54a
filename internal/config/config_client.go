package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the REST endpoint address used by the client.
	HTTPAddress string
	// SocketURL is the duplex channel WebSocket URL.
	SocketURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// SessionToken authenticates both REST calls and the duplex channel.
	SessionToken string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the device key cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientRealtime contains duplex channel timing.
type ClientRealtime struct {
	ConnectDelay      time.Duration
	ReconnectAttempts int
	ReconnectInterval time.Duration
}

// ClientVault contains PIN vault settings.
type ClientVault struct {
	KDFIterations int
	UnlockRate    float64
	UnlockBurst   int
}

// ClientMedia contains attachment settings.
type ClientMedia struct {
	MaxSize int64
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains collaborator API addresses, timeouts and credentials.
	Adapter ClientAdapter
	// Storage contains device key cache settings.
	Storage ClientStorage
	// Realtime contains duplex channel settings.
	Realtime ClientRealtime
	// Vault contains PIN derivation and unlock throttling settings.
	Vault ClientVault
	// Media contains attachment limits.
	Media ClientMedia
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			SocketURL:      cfg.Adapter.SocketURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			SessionToken:   cfg.Adapter.SessionToken,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Realtime: ClientRealtime{
			ConnectDelay:      cfg.Realtime.ConnectDelay,
			ReconnectAttempts: cfg.Realtime.ReconnectAttempts,
			ReconnectInterval: cfg.Realtime.ReconnectInterval,
		},
		Vault: ClientVault{
			KDFIterations: cfg.Vault.KDFIterations,
			UnlockRate:    cfg.Vault.UnlockRate,
			UnlockBurst:   cfg.Vault.UnlockBurst,
		},
		Media: ClientMedia{MaxSize: cfg.Media.MaxSize},
	}
}
