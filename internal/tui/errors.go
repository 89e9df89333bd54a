// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-secure-chat/internal/service"
)

// ErrUserQuit is returned when the user leaves the program.
var ErrUserQuit = errors.New("вышел из программы")

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}

// humanizeError renders service errors for the user.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrWrongPIN):
		return "Неверный PIN"
	case errors.Is(err, service.ErrTooManyAttempts):
		return "Слишком много попыток, подождите немного"
	case errors.Is(err, service.ErrInvalidPIN):
		return "PIN должен содержать не менее 4 символов"
	case errors.Is(err, service.ErrIdentityExists):
		return "Ключи уже созданы, войдите с PIN"
	case errors.Is(err, service.ErrLocked):
		return "Устройство заблокировано, введите PIN"
	case errors.Is(err, service.ErrSessionExpired):
		return "Сессия истекла, войдите заново"
	case errors.Is(err, service.ErrNotParticipant):
		return "Нет доступа к диалогу"
	case errors.Is(err, service.ErrMediaTooLarge):
		return "Файл слишком большой"
	case errors.Is(err, service.ErrInvalidPublicKey):
		return "У собеседника нет ключа шифрования"
	case errors.Is(err, service.ErrServerUnavailable):
		return "Сервер недоступен"
	}
	return humanizeServerUnavailableError(err)
}
