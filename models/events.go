// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// EventName identifies a duplex channel event.
type EventName string

// Events published by the collaborator on the duplex channel.
const (
	EventNewNotification EventName = "new_notification"
	EventNewMessage      EventName = "new_message"
	EventMessageRead     EventName = "message_read"
)

// RealtimeEvent is a single JSON frame received on the duplex channel. Data
// is left raw: the transport does not interpret payloads.
type RealtimeEvent struct {
	Event EventName       `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// MessageReadEvent is the payload of [EventMessageRead].
type MessageReadEvent struct {
	ConversationID string `json:"conversationId"`
	ReaderID       string `json:"readerId"`
}
