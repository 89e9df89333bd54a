// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-secure-chat/internal/adapter"
	"github.com/MKhiriev/go-secure-chat/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrNoSession):
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidPublicKey:
			return ErrInvalidPublicKey
		case app.MsgMediaTooLarge:
			return ErrMediaTooLarge
		case app.MsgInvalidDataProvided:
			return fmt.Errorf("%w: %s", ErrRejected, msg)
		}

	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return ErrMediaTooLarge

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrForbidden):
		return ErrNotParticipant

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgConversationNotFound {
			return ErrConversationNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgIdentityAlreadyExists {
			return ErrIdentityExists
		}

	case errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrInternalServerError):
		return ErrServerUnavailable
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
