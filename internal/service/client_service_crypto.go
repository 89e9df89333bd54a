package service

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/MKhiriev/go-secure-chat/internal/crypto"
	"github.com/MKhiriev/go-secure-chat/internal/logger"
	"github.com/MKhiriev/go-secure-chat/internal/metrics"
	"github.com/MKhiriev/go-secure-chat/models"
)

type messageCryptoService struct {
	selfID   string
	keys     KeyService
	keychain crypto.KeyChainService
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

// NewMessageCryptoService returns a [MessageCryptoService] for the user
// selfID. m may be nil.
func NewMessageCryptoService(selfID string, keys KeyService, keychain crypto.KeyChainService, m *metrics.Metrics, logger *logger.Logger) MessageCryptoService {
	return &messageCryptoService{
		selfID:   selfID,
		keys:     keys,
		keychain: keychain,
		metrics:  m,
		logger:   logger,
	}
}

func (s *messageCryptoService) EncryptText(ctx context.Context, conversation models.Conversation, text string) (string, string, error) {
	nonce, ciphertext, err := s.EncryptBytes(ctx, conversation, []byte(text))
	if err != nil {
		return "", "", err
	}

	return base64.StdEncoding.EncodeToString(nonce), base64.StdEncoding.EncodeToString(ciphertext), nil
}

func (s *messageCryptoService) DecryptMessage(ctx context.Context, conversation models.Conversation, msg *models.Message) error {
	if msg.Kind == models.KindMedia {
		return nil
	}

	nonce, errNonce := base64.StdEncoding.DecodeString(msg.Nonce)
	ciphertext, errContent := base64.StdEncoding.DecodeString(msg.Content)
	if errNonce != nil || errContent != nil {
		s.markBroken(ctx, msg)
		return nil
	}

	plaintext, err := s.DecryptBytes(ctx, conversation, nonce, ciphertext)
	switch {
	case errors.Is(err, ErrDecryptFailed), errors.Is(err, ErrInvalidPublicKey), errors.Is(err, ErrNoPartner):
		s.markBroken(ctx, msg)
		return nil
	case err != nil:
		return err
	}

	msg.Body = string(plaintext)
	msg.Broken = false
	s.metrics.Decrypted(metrics.ResultOK)

	return nil
}

func (s *messageCryptoService) EncryptBytes(ctx context.Context, conversation models.Conversation, data []byte) ([]byte, []byte, error) {
	secret, err := s.secretFor(ctx, conversation)
	if err != nil {
		return nil, nil, err
	}
	defer crypto.Wipe(secret)

	return s.keychain.Encrypt(data, secret)
}

func (s *messageCryptoService) DecryptBytes(ctx context.Context, conversation models.Conversation, nonce, ciphertext []byte) ([]byte, error) {
	secret, err := s.secretFor(ctx, conversation)
	if err != nil {
		if errors.Is(err, ErrLocked) {
			s.metrics.Decrypted(metrics.ResultLocked)
		}
		return nil, err
	}
	defer crypto.Wipe(secret)

	plaintext := s.keychain.Decrypt(nonce, ciphertext, secret)
	if plaintext == nil {
		return nil, ErrDecryptFailed
	}

	return plaintext, nil
}

func (s *messageCryptoService) secretFor(ctx context.Context, conversation models.Conversation) ([]byte, error) {
	partner, ok := conversation.Partner(s.selfID)
	if !ok {
		return nil, ErrNoPartner
	}

	return s.keys.SharedSecret(ctx, partner)
}

func (s *messageCryptoService) markBroken(ctx context.Context, msg *models.Message) {
	msg.Body = ""
	msg.Broken = true
	s.metrics.Decrypted(metrics.ResultBroken)

	logger.FromContext(ctx).Warn().
		Str("func", "messageCryptoService.DecryptMessage").
		Str("conversation_id", msg.ConversationID).
		Str("message_id", msg.ID).
		Msg("message failed to decrypt")
}
