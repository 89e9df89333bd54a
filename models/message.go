// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MessageKind distinguishes text messages from encrypted media references.
type MessageKind string

const (
	// KindText carries an encrypted UTF-8 body in Content.
	KindText MessageKind = "text"
	// KindMedia carries an encrypted file referenced by Media.
	KindMedia MessageKind = "media"
)

// MediaRef points at an encrypted blob uploaded to the chat API. Nonce is the
// one used to encrypt the blob; the blob itself is opaque ciphertext.
type MediaRef struct {
	URL      string `json:"url"`
	Nonce    string `json:"nonce"`
	MimeType string `json:"mimeType"`
	Name     string `json:"name"`
	Size     int64  `json:"size"`
}

// Message is a direct message as stored by the chat API. Nonce and Content
// are base64; the server only ever sees ciphertext. ClientID echoes the id
// the sender issued the message with.
//
// Body, Broken and Pending are client-side fields and are never serialized.
type Message struct {
	ID             string      `json:"id"`
	ConversationID string      `json:"conversationId"`
	SenderID       string      `json:"senderId"`
	ClientID       string      `json:"clientId,omitempty"`
	Kind           MessageKind `json:"kind"`
	Nonce          string      `json:"nonce,omitempty"`
	Content        string      `json:"content,omitempty"`
	Media          *MediaRef   `json:"media,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	ReadAt         *time.Time  `json:"readAt,omitempty"`

	// Body is the decrypted text. Empty for media messages.
	Body string `json:"-"`
	// Broken is set when the payload failed authentication.
	Broken bool `json:"-"`
	// Pending marks an optimistic local send not yet confirmed by the server.
	Pending bool `json:"-"`
}

// MessagePage is one page of GET /conversations/{id}/messages, newest first.
type MessagePage struct {
	Data       []Message  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// SendMessageRequest is the body of POST /conversations/{id}/messages.
// ClientID lets the sender correlate the echo with its optimistic entry.
type SendMessageRequest struct {
	ConversationID string      `json:"-"`
	ClientID       string      `json:"clientId,omitempty"`
	Kind           MessageKind `json:"kind"`
	Nonce          string      `json:"nonce,omitempty"`
	Content        string      `json:"content,omitempty"`
	Media          *MediaRef   `json:"media,omitempty"`
}

// MediaUpload is the response of POST /media.
type MediaUpload struct {
	URL string `json:"url"`
}
