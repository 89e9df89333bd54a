// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-secure-chat/models"
)

const appName = "GoSecureChat"

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Приложение", appName},
		{"Версия", valueOrNA(info.BuildVersion())},
		{"Дата сборки", valueOrNA(info.BuildDate())},
		{"Коммит", valueOrNA(info.BuildCommit())},
		{"Шифрование", "X25519 + XSalsa20-Poly1305"},
		{"Защита ключа", "PBKDF2-SHA256 + AES-256-GCM"},
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%-14s %s\n", row[0]+":", row[1])
	}

	return renderPage("О ПРОГРАММЕ", strings.TrimRight(b.String(), "\n"), "esc: назад")
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "N/A"
	}
	return v
}
