package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/MKhiriev/go-secure-chat/internal/cache"
	"github.com/MKhiriev/go-secure-chat/internal/logger"
	"github.com/MKhiriev/go-secure-chat/internal/metrics"
	"github.com/MKhiriev/go-secure-chat/models"
)

const notificationBuffer = 32

type reconciler struct {
	selfID   string
	chat     ChatService
	crypto   MessageCryptoService
	messages *cache.Messages
	windows  *cache.Windows
	metrics  *metrics.Metrics
	logger   *logger.Logger

	notifications chan json.RawMessage
}

// NewReconciler returns a [Reconciler] that keeps messages and windows in
// step with the duplex channel. m may be nil.
func NewReconciler(selfID string, chat ChatService, crypto MessageCryptoService, messages *cache.Messages, windows *cache.Windows, m *metrics.Metrics, logger *logger.Logger) Reconciler {
	return &reconciler{
		selfID:        selfID,
		chat:          chat,
		crypto:        crypto,
		messages:      messages,
		windows:       windows,
		metrics:       m,
		logger:        logger,
		notifications: make(chan json.RawMessage, notificationBuffer),
	}
}

// HandleNewMessage merges a pushed message into its cached conversation.
// A message already present in any cached page is dropped. Conversations
// without a cached view are left alone, but a chat window is still opened
// for a partner the user is not looking at.
func (r *reconciler) HandleNewMessage(ctx context.Context, event models.RealtimeEvent) {
	log := logger.FromContext(ctx).With().
		Str("func", "reconciler.HandleNewMessage").
		Logger()

	var msg models.Message
	if err := json.Unmarshal(event.Data, &msg); err != nil || msg.ID == "" || msg.ConversationID == "" {
		log.Warn().Err(err).Msg("malformed new_message payload")
		return
	}

	if r.messages.Contains(msg.ConversationID, msg.ID) {
		r.metrics.DuplicateMessage()
		log.Debug().Str("message_id", msg.ID).Msg("duplicate message dropped")
		return
	}

	if r.messages.Has(msg.ConversationID) {
		conv, err := r.chat.Conversation(ctx, msg.ConversationID)
		if err != nil {
			log.Error().Err(err).Str("conversation_id", msg.ConversationID).Msg("conversation lookup failed")
			return
		}

		err = r.crypto.DecryptMessage(ctx, conv, &msg)
		if err != nil && !errors.Is(err, ErrLocked) {
			log.Error().Err(err).Str("message_id", msg.ID).Msg("decrypt failed")
			return
		}

		r.messages.Merge(msg)
	}

	if msg.SenderID != r.selfID && r.windows.Active() != msg.ConversationID {
		r.windows.Open(msg.SenderID, msg.ConversationID)
	}
}

// HandleMessageRead marks the conversation stale so that read receipts are
// refetched.
func (r *reconciler) HandleMessageRead(ctx context.Context, event models.RealtimeEvent) {
	var read models.MessageReadEvent
	if err := json.Unmarshal(event.Data, &read); err != nil || read.ConversationID == "" {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "reconciler.HandleMessageRead").
			Msg("malformed message_read payload")
		return
	}

	r.messages.Invalidate(read.ConversationID)
}

// HandleNotification forwards the payload. It is dropped when nobody drains
// the channel.
func (r *reconciler) HandleNotification(ctx context.Context, event models.RealtimeEvent) {
	select {
	case r.notifications <- event.Data:
	default:
		logger.FromContext(ctx).Warn().
			Str("func", "reconciler.HandleNotification").
			Msg("notification dropped")
	}
}

func (r *reconciler) Notifications() <-chan json.RawMessage {
	return r.notifications
}
