// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Participant is a member of a conversation as exposed by the chat API.
type Participant struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	PublicKey string `json:"publicKey"`
}

// Conversation is owned by the collaborator chat service. The messaging core
// only reads participant public keys from it.
type Conversation struct {
	ID                string        `json:"id"`
	Participants      []Participant `json:"participants"`
	LastInteractiveAt time.Time     `json:"lastInteractiveAt"`
	LastMessage       *Message      `json:"lastMessage,omitempty"`
}

// Partner returns the participant that is not selfID. The second return
// value is false when the conversation has no other participant.
func (c Conversation) Partner(selfID string) (Participant, bool) {
	for _, p := range c.Participants {
		if p.ID != selfID {
			return p, true
		}
	}
	return Participant{}, false
}

// Pagination is the cursor descriptor attached to every page returned by the
// chat API.
type Pagination struct {
	NextCursor string `json:"nextCursor"`
	HasMore    bool   `json:"hasMore"`
}

// ConversationPage is one page of GET /conversations.
type ConversationPage struct {
	Data       []Conversation `json:"data"`
	Pagination Pagination     `json:"pagination"`
}
