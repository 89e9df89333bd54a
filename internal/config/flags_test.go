// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "api.example.com:443",
		"-ws", "wss://api.example.com/ws",
		"-token", "tok",
		"-d", "/tmp/keys.db",
		"-config", "/etc/chat.json",
		"-request-timeout", "20s",
		"-connect-delay", "1s",
		"-reconnect-attempts", "7",
		"-reconnect-interval", "3s",
		"-kdf-iterations", "500000",
		"-media-max-size", "4096",
	})
	require.NoError(t, err)

	assert.Equal(t, "api.example.com:443", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "wss://api.example.com/ws", cfg.Adapter.SocketURL)
	assert.Equal(t, "tok", cfg.Adapter.SessionToken)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/keys.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/chat.json", cfg.JSONFilePath)
	assert.Equal(t, time.Second, cfg.Realtime.ConnectDelay)
	assert.Equal(t, 7, cfg.Realtime.ReconnectAttempts)
	assert.Equal(t, 3*time.Second, cfg.Realtime.ReconnectInterval)
	assert.Equal(t, 500_000, cfg.Vault.KDFIterations)
	assert.Equal(t, int64(4096), cfg.Media.MaxSize)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-nope"}},
		{name: "bad duration", args: []string{"-reconnect-interval", "soon"}},
		{name: "bad int", args: []string{"-reconnect-attempts", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}
