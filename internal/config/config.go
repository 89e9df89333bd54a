// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-secure-chat client. It is populated by merging defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the collaborator API endpoints and session credentials.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the device key cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Realtime holds duplex channel timing settings.
	Realtime Realtime `envPrefix:"REALTIME_"`

	// Vault holds PIN key-derivation and unlock throttling settings.
	Vault Vault `envPrefix:"VAULT_"`

	// Media holds encrypted attachment limits.
	Media Media `envPrefix:"MEDIA_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds configuration of the collaborator identity and chat APIs.
type Adapter struct {
	// HTTPAddress is the base address of the REST API (e.g. "localhost:8080"
	// or "https://api.example.com").
	// Env: SECURE_CHAT_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// SocketURL is the WebSocket endpoint of the duplex channel
	// (e.g. "ws://localhost:8080/ws").
	// Env: SECURE_CHAT_ADAPTER_SOCKET_URL
	SocketURL string `env:"SOCKET_URL"`

	// RequestTimeout bounds every outbound REST request.
	// Env: SECURE_CHAT_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SessionToken is the session cookie value issued by the collaborator
	// at login. It is sent as a cookie and as a bearer token.
	// Env: SECURE_CHAT_ADAPTER_SESSION_TOKEN
	SessionToken string `env:"SESSION_TOKEN,unset"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the device key cache database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite device key cache.
type DB struct {
	// DSN is the SQLite file path of the current profile.
	// Env: SECURE_CHAT_STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Realtime holds timing settings of the duplex channel.
type Realtime struct {
	// ConnectDelay is the fixed delay between login and the first dial.
	// Env: SECURE_CHAT_REALTIME_CONNECT_DELAY
	ConnectDelay time.Duration `env:"CONNECT_DELAY"`

	// ReconnectAttempts is the reconnect budget after a failure.
	// Env: SECURE_CHAT_REALTIME_RECONNECT_ATTEMPTS
	ReconnectAttempts int `env:"RECONNECT_ATTEMPTS"`

	// ReconnectInterval is the fixed spacing between reconnect attempts.
	// Env: SECURE_CHAT_REALTIME_RECONNECT_INTERVAL
	ReconnectInterval time.Duration `env:"RECONNECT_INTERVAL"`
}

// Vault holds key-derivation and unlock settings.
type Vault struct {
	// KDFIterations is the PBKDF2 iteration count used for new vaults. Vaults
	// record their own count; this one only opens vaults that lack it.
	// Env: SECURE_CHAT_VAULT_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// UnlockRate is the sustained number of PIN attempts allowed per second.
	// Env: SECURE_CHAT_VAULT_UNLOCK_RATE
	UnlockRate float64 `env:"UNLOCK_RATE"`

	// UnlockBurst is the number of PIN attempts allowed back to back.
	// Env: SECURE_CHAT_VAULT_UNLOCK_BURST
	UnlockBurst int `env:"UNLOCK_BURST"`
}

// Media holds limits for encrypted attachments.
type Media struct {
	// MaxSize is the largest file, in bytes, accepted for upload.
	// Env: SECURE_CHAT_MEDIA_MAX_SIZE
	MaxSize int64 `env:"MAX_SIZE"`
}

// defaultConfig returns the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			SocketURL:      "ws://localhost:8080/ws",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{DB: DB{DSN: "secure-chat.db"}},
		Realtime: Realtime{
			ConnectDelay:      500 * time.Millisecond,
			ReconnectAttempts: 5,
			ReconnectInterval: time.Second,
		},
		Vault: Vault{
			KDFIterations: 310_000,
			UnlockRate:    0.2,
			UnlockBurst:   5,
		},
		Media: Media{MaxSize: 25 << 20},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
