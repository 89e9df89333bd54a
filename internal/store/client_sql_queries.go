// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	putDeviceKey = `
		INSERT INTO device_keys (
			key,
			value,
			updated_at
		) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at;`

	getDeviceKey = `
		SELECT value
		FROM device_keys
		WHERE key = ?;`

	clearDeviceKeys = `
		DELETE FROM device_keys;`
)
