// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-secure-chat/internal/cache"
	"github.com/MKhiriev/go-secure-chat/internal/logger"
	"github.com/MKhiriev/go-secure-chat/internal/service"
	"github.com/MKhiriev/go-secure-chat/internal/utils"
)

// ViewRefresher refetches the conversation on screen whenever its cached
// view is invalidated. Other conversations are refetched when opened.
type ViewRefresher struct {
	messages *cache.Messages
	windows  *cache.Windows
	chat     service.ChatService
	logger   *logger.Logger
}

func NewViewRefresher(messages *cache.Messages, windows *cache.Windows, chat service.ChatService, logger *logger.Logger) *ViewRefresher {
	return &ViewRefresher{messages: messages, windows: windows, chat: chat, logger: logger}
}

func (r *ViewRefresher) Run(ctx context.Context) {
	updates, cancel := r.messages.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case u := <-updates:
			if u.Kind != cache.Invalidated || u.ConversationID != r.windows.Active() {
				continue
			}
			r.refresh(ctx, u.ConversationID)
		}
	}
}

func (r *ViewRefresher) refresh(ctx context.Context, conversationID string) {
	conv, err := r.chat.Conversation(ctx, conversationID)
	if err == nil {
		_, err = r.chat.LoadMessages(ctx, conv)
	}
	if err != nil && ctx.Err() == nil {
		userID, _ := utils.GetUserIDFromContext(ctx)
		r.logger.Error().Err(err).
			Str("func", "ViewRefresher.refresh").
			Str("user_id", userID).
			Str("conversation_id", conversationID).
			Msg("refetch of invalidated conversation failed")
	}
}
