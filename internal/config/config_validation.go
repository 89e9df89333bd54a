// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"strings"
)

// validate rejects values no source may set, such as negative durations or
// counts. Zero values are allowed here because the merged config may still
// be partial; the strict checks run on the [ClientConfig] view.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Adapter.RequestTimeout < 0 {
		errs = append(errs, ErrInvalidAdapterConfigs)
	}
	if cfg.Realtime.ConnectDelay < 0 || cfg.Realtime.ReconnectAttempts < 0 || cfg.Realtime.ReconnectInterval < 0 {
		errs = append(errs, ErrInvalidRealtimeConfigs)
	}
	if cfg.Vault.KDFIterations < 0 || cfg.Vault.UnlockRate < 0 || cfg.Vault.UnlockBurst < 0 {
		errs = append(errs, ErrInvalidVaultConfigs)
	}
	if cfg.Media.MaxSize < 0 {
		errs = append(errs, ErrInvalidMediaConfigs)
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.SocketURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Realtime.ReconnectAttempts < 0 || cfg.Realtime.ReconnectInterval <= 0 || cfg.Realtime.ConnectDelay < 0 {
		return ErrInvalidRealtimeConfigs
	}

	if cfg.Vault.KDFIterations < 100_000 || cfg.Vault.UnlockRate <= 0 || cfg.Vault.UnlockBurst <= 0 {
		return ErrInvalidVaultConfigs
	}

	if cfg.Media.MaxSize <= 0 {
		return ErrInvalidMediaConfigs
	}

	return nil
}
