package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-secure-chat/internal/adapter"
	"github.com/MKhiriev/go-secure-chat/internal/cache"
	"github.com/MKhiriev/go-secure-chat/internal/logger"
	"github.com/MKhiriev/go-secure-chat/internal/utils"
	"github.com/MKhiriev/go-secure-chat/models"
)

// DefaultPageSize is the number of messages requested per page.
const DefaultPageSize = 30

type chatService struct {
	selfID   string
	api      adapter.ChatAPI
	crypto   MessageCryptoService
	messages *cache.Messages
	ids      *utils.UUIDGenerator
	pageSize int
	logger   *logger.Logger

	mu            sync.RWMutex
	conversations map[string]models.Conversation
}

// NewChatService returns a [ChatService] writing to messages.
func NewChatService(selfID string, api adapter.ChatAPI, crypto MessageCryptoService, messages *cache.Messages, logger *logger.Logger) ChatService {
	return &chatService{
		selfID:        selfID,
		api:           api,
		crypto:        crypto,
		messages:      messages,
		ids:           utils.NewUUIDGenerator(),
		pageSize:      DefaultPageSize,
		logger:        logger,
		conversations: make(map[string]models.Conversation),
	}
}

func (c *chatService) Conversations(ctx context.Context, cursor string) (models.ConversationPage, error) {
	page, err := c.api.ListConversations(ctx, cursor, c.pageSize)
	if err != nil {
		return models.ConversationPage{}, fmt.Errorf("list conversations: %w", mapAdapterError(err))
	}

	c.mu.Lock()
	for _, conv := range page.Data {
		c.conversations[conv.ID] = conv
	}
	c.mu.Unlock()

	for i := range page.Data {
		last := page.Data[i].LastMessage
		if last == nil {
			continue
		}
		if err := c.crypto.DecryptMessage(ctx, page.Data[i], last); err != nil && !errors.Is(err, ErrLocked) {
			return models.ConversationPage{}, err
		}
	}

	return page, nil
}

func (c *chatService) Conversation(ctx context.Context, conversationID string) (models.Conversation, error) {
	c.mu.RLock()
	conv, ok := c.conversations[conversationID]
	c.mu.RUnlock()
	if ok {
		return conv, nil
	}

	conv, err := c.api.GetConversation(ctx, conversationID)
	if err != nil {
		return models.Conversation{}, fmt.Errorf("get conversation: %w", mapAdapterError(err))
	}

	c.mu.Lock()
	c.conversations[conv.ID] = conv
	c.mu.Unlock()

	return conv, nil
}

func (c *chatService) LoadMessages(ctx context.Context, conversation models.Conversation) ([]models.Message, error) {
	page, err := c.api.ListMessages(ctx, conversation.ID, "", c.pageSize)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", mapAdapterError(err))
	}
	if err := c.decryptPage(ctx, conversation, &page); err != nil {
		return nil, err
	}

	c.messages.Set(conversation.ID, page)

	return c.messages.Flatten(conversation.ID), nil
}

func (c *chatService) LoadOlder(ctx context.Context, conversation models.Conversation) (bool, error) {
	cursor, ok := c.messages.NextCursor(conversation.ID)
	if !ok {
		return false, nil
	}

	page, err := c.api.ListMessages(ctx, conversation.ID, cursor, c.pageSize)
	if err != nil {
		return false, fmt.Errorf("list older messages: %w", mapAdapterError(err))
	}
	if err := c.decryptPage(ctx, conversation, &page); err != nil {
		return false, err
	}

	return c.messages.AppendPage(conversation.ID, page), nil
}

func (c *chatService) SendText(ctx context.Context, conversation models.Conversation, text string) (models.Message, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(text) == "" {
		return models.Message{}, ErrEmptyMessage
	}

	nonce, content, err := c.crypto.EncryptText(ctx, conversation, text)
	if err != nil {
		return models.Message{}, fmt.Errorf("encrypt message: %w", err)
	}

	tempID := c.ids.Generate()
	c.messages.AddOptimistic(models.Message{
		ID:             tempID,
		ConversationID: conversation.ID,
		SenderID:       c.selfID,
		Kind:           models.KindText,
		Nonce:          nonce,
		Content:        content,
		CreatedAt:      time.Now().UTC(),
		Body:           text,
	})

	sent, err := c.api.SendMessage(ctx, models.SendMessageRequest{
		ConversationID: conversation.ID,
		ClientID:       tempID,
		Kind:           models.KindText,
		Nonce:          nonce,
		Content:        content,
	})
	if err != nil {
		c.messages.Fail(conversation.ID, tempID)
		log.Error().Err(err).
			Str("func", "chatService.SendText").
			Str("conversation_id", conversation.ID).
			Msg("send failed")
		return models.Message{}, fmt.Errorf("send message: %w", mapAdapterError(err))
	}

	sent.Body = text
	c.messages.Confirm(conversation.ID, tempID, sent)

	return sent, nil
}

func (c *chatService) MarkRead(ctx context.Context, conversationID string) error {
	if err := c.api.MarkRead(ctx, conversationID); err != nil {
		return fmt.Errorf("mark read: %w", mapAdapterError(err))
	}
	return nil
}

// decryptPage decrypts every text message of page in place. Locked messages
// are kept as ciphertext.
func (c *chatService) decryptPage(ctx context.Context, conversation models.Conversation, page *models.MessagePage) error {
	for i := range page.Data {
		err := c.crypto.DecryptMessage(ctx, conversation, &page.Data[i])
		if err != nil && !errors.Is(err, ErrLocked) {
			return fmt.Errorf("decrypt message %s: %w", page.Data[i].ID, err)
		}
	}
	return nil
}
