package service

import (
	"context"
	"encoding/json"
	"io"

	"github.com/MKhiriev/go-secure-chat/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=mock/client_service_mock.go -package=mock

// KeyService owns the device secret and the per-partner shared secrets of
// the session. Secrets are cached in memory and mirrored in the Device Key
// Cache.
type KeyService interface {
	// MasterKey returns the unwrapped identity private key, or [ErrLocked]
	// when this device holds none.
	MasterKey(ctx context.Context) ([]byte, error)

	// SetMasterKey stores the identity private key on this device.
	SetMasterKey(ctx context.Context, privateKey []byte) error

	// SharedSecret returns the pairwise secret with partner, deriving and
	// caching it on first use. A partner public key that differs from the
	// one a cached secret was derived from triggers re-derivation.
	SharedSecret(ctx context.Context, partner models.Participant) ([]byte, error)

	// Forget wipes every in-memory secret and clears the Device Key Cache.
	Forget(ctx context.Context) error
}

// UnlockService drives the unlock gate: Checking, Locked or Ready.
type UnlockService interface {
	// Check decides between Locked and Ready for user.
	Check(ctx context.Context, user models.CurrentUser) (UnlockState, error)

	// Unlock opens the vault with pin. It returns [ErrWrongPIN] on failure
	// and [ErrTooManyAttempts] when throttled.
	Unlock(ctx context.Context, pin string) error

	// SetupIdentity creates and publishes the identity of a user that has
	// none, protected by pin.
	SetupIdentity(ctx context.Context, pin string) (models.Identity, error)

	// Lock forgets every secret on this device and returns to Checking.
	Lock(ctx context.Context) error

	// NeedsSetup reports whether the checked user has no identity yet.
	NeedsSetup() bool

	// State returns the current gate state.
	State() UnlockState

	// Changes delivers every state transition. The channel is never closed.
	Changes() <-chan UnlockState
}

// MessageCryptoService encrypts and decrypts payloads of a conversation with
// the pairwise secret of its partner.
type MessageCryptoService interface {
	// EncryptText returns the base64 nonce and ciphertext of text.
	EncryptText(ctx context.Context, conversation models.Conversation, text string) (nonce, content string, err error)

	// DecryptMessage fills msg.Body, or sets msg.Broken when the payload
	// fails authentication. It returns [ErrLocked] while the device is
	// locked, leaving msg untouched.
	DecryptMessage(ctx context.Context, conversation models.Conversation, msg *models.Message) error

	// EncryptBytes seals a media payload.
	EncryptBytes(ctx context.Context, conversation models.Conversation, data []byte) (nonce, ciphertext []byte, err error)

	// DecryptBytes opens a media payload. It returns [ErrDecryptFailed] on
	// authentication failure.
	DecryptBytes(ctx context.Context, conversation models.Conversation, nonce, ciphertext []byte) ([]byte, error)
}

// ChatService loads, caches and sends messages.
type ChatService interface {
	// Conversations returns one page of conversations and remembers them.
	Conversations(ctx context.Context, cursor string) (models.ConversationPage, error)

	// Conversation returns a remembered conversation or fetches it.
	Conversation(ctx context.Context, conversationID string) (models.Conversation, error)

	// LoadMessages fetches and decrypts the first page of conversation and
	// replaces its cached view.
	LoadMessages(ctx context.Context, conversation models.Conversation) ([]models.Message, error)

	// LoadOlder appends the next page. It reports false when there is none.
	LoadOlder(ctx context.Context, conversation models.Conversation) (bool, error)

	// SendText sends text with an optimistic cache entry.
	SendText(ctx context.Context, conversation models.Conversation, text string) (models.Message, error)

	// MarkRead marks conversationID as read.
	MarkRead(ctx context.Context, conversationID string) error
}

// MediaService uploads and materialises encrypted attachments.
type MediaService interface {
	// SendMedia encrypts the whole of r, uploads it and sends a media
	// message referencing it.
	SendMedia(ctx context.Context, conversation models.Conversation, name, mimeType string, r io.Reader) (models.Message, error)

	// Item returns a lazily loaded attachment of msg.
	Item(conversation models.Conversation, msg models.Message) (*MediaItem, error)
}

// Reconciler applies duplex channel events to the caches.
type Reconciler interface {
	HandleNewMessage(ctx context.Context, event models.RealtimeEvent)
	HandleMessageRead(ctx context.Context, event models.RealtimeEvent)
	HandleNotification(ctx context.Context, event models.RealtimeEvent)

	// Notifications delivers new_notification payloads untouched.
	Notifications() <-chan json.RawMessage
}
