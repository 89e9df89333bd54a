// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces every variable read by [parseEnv], so that
// ADAPTER_SESSION_TOKEN is looked up as SECURE_CHAT_ADAPTER_SESSION_TOKEN.
const envPrefix = "SECURE_CHAT_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library and the `env`/`envPrefix` tags of [StructuredConfig]. Variables
// tagged `unset` are removed from the process environment once read.
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
