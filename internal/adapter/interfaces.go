// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the collaborator identity and chat services.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-secure-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// IdentityAPI reads the current user's profile and publishes encryption keys.
type IdentityAPI interface {
	// Me returns the authenticated user, including the public key and the
	// PIN-wrapped vault when the user has set up encrypted messaging.
	Me(ctx context.Context) (models.CurrentUser, error)

	// PublishKeys stores the public key and vault of the current user.
	// Returns [ErrConflict] (wrapped) when keys already exist.
	PublishKeys(ctx context.Context, req models.PublishKeysRequest) error
}

// ChatAPI reads conversations and messages and stores opaque ciphertext.
type ChatAPI interface {
	// ListConversations returns one page of conversations, most recent first.
	ListConversations(ctx context.Context, cursor string, limit int) (models.ConversationPage, error)

	// GetConversation returns a single conversation with its participants.
	GetConversation(ctx context.Context, conversationID string) (models.Conversation, error)

	// ListMessages returns one page of messages, newest first. An empty
	// cursor requests the first page.
	ListMessages(ctx context.Context, conversationID, cursor string, limit int) (models.MessagePage, error)

	// SendMessage stores an encrypted message and returns it as persisted.
	SendMessage(ctx context.Context, req models.SendMessageRequest) (models.Message, error)

	// MarkRead marks the conversation as read by the current user.
	MarkRead(ctx context.Context, conversationID string) error

	// UploadMedia stores an encrypted blob and returns its URL.
	UploadMedia(ctx context.Context, ciphertext []byte) (models.MediaUpload, error)

	// FetchMedia downloads the encrypted blob at url.
	FetchMedia(ctx context.Context, url string) ([]byte, error)
}

// ServerAdapter is the full collaborator client used by a session.
type ServerAdapter interface {
	IdentityAPI
	ChatAPI

	// SetToken stores the session token attached to every subsequent request
	// as a cookie and as a bearer header.
	SetToken(token string)

	// Token returns the current session token, or an empty string.
	Token() string
}
