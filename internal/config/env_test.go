// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(envPrefix+k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"ADAPTER_ADDRESS":         "localhost:8080",
		"ADAPTER_SOCKET_URL":      "ws://localhost:8080/ws",
		"ADAPTER_REQUEST_TIMEOUT": "30s",
		"ADAPTER_SESSION_TOKEN":   "session",

		"STORAGE_DB_DATABASE_URI": "/tmp/keys.db",

		"REALTIME_CONNECT_DELAY":      "250ms",
		"REALTIME_RECONNECT_ATTEMPTS": "3",
		"REALTIME_RECONNECT_INTERVAL": "2s",

		"VAULT_KDF_ITERATIONS": "400000",
		"VAULT_UNLOCK_RATE":    "0.5",
		"VAULT_UNLOCK_BURST":   "3",

		"MEDIA_MAX_SIZE": "1048576",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "ws://localhost:8080/ws", cfg.Adapter.SocketURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "session", cfg.Adapter.SessionToken)

	assert.Equal(t, "/tmp/keys.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 250*time.Millisecond, cfg.Realtime.ConnectDelay)
	assert.Equal(t, 3, cfg.Realtime.ReconnectAttempts)
	assert.Equal(t, 2*time.Second, cfg.Realtime.ReconnectInterval)

	assert.Equal(t, 400_000, cfg.Vault.KDFIterations)
	assert.InDelta(t, 0.5, cfg.Vault.UnlockRate, 1e-9)
	assert.Equal(t, 3, cfg.Vault.UnlockBurst)

	assert.Equal(t, int64(1<<20), cfg.Media.MaxSize)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"REALTIME_RECONNECT_INTERVAL": "not-a-duration"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{"REALTIME_RECONNECT_ATTEMPTS": "five"})

	require.Error(t, parseEnv(&StructuredConfig{}))
}

func TestParseEnv_UnsetsSessionToken(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_SESSION_TOKEN": "secret"})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "secret", cfg.Adapter.SessionToken)

	_, ok := os.LookupEnv(envPrefix + "ADAPTER_SESSION_TOKEN")
	assert.False(t, ok)
}

func TestParseEnv_IgnoresUnprefixed(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "localhost:9090")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.Adapter.HTTPAddress)
}
