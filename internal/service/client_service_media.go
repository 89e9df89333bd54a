package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-secure-chat/internal/adapter"
	"github.com/MKhiriev/go-secure-chat/internal/cache"
	"github.com/MKhiriev/go-secure-chat/internal/logger"
	"github.com/MKhiriev/go-secure-chat/internal/media"
	"github.com/MKhiriev/go-secure-chat/internal/utils"
	"github.com/MKhiriev/go-secure-chat/models"
)

type mediaService struct {
	api      adapter.ChatAPI
	crypto   MessageCryptoService
	registry *media.Registry
	messages *cache.Messages
	maxSize  int64
	ids      *utils.UUIDGenerator
	logger   *logger.Logger
}

// NewMediaService returns a [MediaService]. Attachments larger than maxSize
// bytes are rejected before encryption.
func NewMediaService(api adapter.ChatAPI, crypto MessageCryptoService, registry *media.Registry, messages *cache.Messages, maxSize int64, logger *logger.Logger) MediaService {
	return &mediaService{
		api:      api,
		crypto:   crypto,
		registry: registry,
		messages: messages,
		maxSize:  maxSize,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

func (s *mediaService) SendMedia(ctx context.Context, conversation models.Conversation, name, mimeType string, r io.Reader) (models.Message, error) {
	log := logger.FromContext(ctx)

	data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return models.Message{}, fmt.Errorf("read media: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return models.Message{}, ErrMediaTooLarge
	}

	nonce, ciphertext, err := s.crypto.EncryptBytes(ctx, conversation, data)
	if err != nil {
		return models.Message{}, fmt.Errorf("encrypt media: %w", err)
	}

	upload, err := s.api.UploadMedia(ctx, ciphertext)
	if err != nil {
		return models.Message{}, fmt.Errorf("upload media: %w", mapAdapterError(err))
	}

	ref := &models.MediaRef{
		URL:      upload.URL,
		Nonce:    base64.StdEncoding.EncodeToString(nonce),
		MimeType: mimeType,
		Name:     name,
		Size:     int64(len(data)),
	}

	sent, err := s.api.SendMessage(ctx, models.SendMessageRequest{
		ConversationID: conversation.ID,
		ClientID:       s.ids.Generate(),
		Kind:           models.KindMedia,
		Media:          ref,
	})
	if err != nil {
		return models.Message{}, fmt.Errorf("send media message: %w", mapAdapterError(err))
	}

	s.messages.Merge(sent)

	log.Debug().
		Str("func", "mediaService.SendMedia").
		Str("conversation_id", conversation.ID).
		Int64("size", ref.Size).
		Msg("media sent")

	return sent, nil
}

func (s *mediaService) Item(conversation models.Conversation, msg models.Message) (*MediaItem, error) {
	if msg.Kind != models.KindMedia || msg.Media == nil {
		return nil, ErrNotMedia
	}

	return &MediaItem{
		svc:          s,
		conversation: conversation,
		ref:          *msg.Media,
		state:        MediaLoading,
	}, nil
}

// MediaState is the lifecycle state of a [MediaItem].
type MediaState int

const (
	// MediaLoading is the state until the attachment was fetched and decrypted.
	MediaLoading MediaState = iota
	// MediaReady means the decrypted object is registered.
	MediaReady
	// MediaFailed means fetching or decrypting failed. See [FailureReason].
	MediaFailed
)

func (s MediaState) String() string {
	switch s {
	case MediaLoading:
		return "loading"
	case MediaReady:
		return "ready"
	case MediaFailed:
		return "failed"
	default:
		return fmt.Sprintf("MediaState(%d)", int(s))
	}
}

// FailureReason tells why a [MediaItem] failed.
type FailureReason int

const (
	FailureNone FailureReason = iota
	// FailureFetch is a download error. Retrying may help.
	FailureFetch
	// FailureDecrypt is an authentication failure of the blob.
	FailureDecrypt
	// FailureLocked means the device was locked while loading.
	FailureLocked
)

func (r FailureReason) String() string {
	switch r {
	case FailureNone:
		return "none"
	case FailureFetch:
		return "fetch"
	case FailureDecrypt:
		return "decrypt"
	case FailureLocked:
		return "locked"
	default:
		return fmt.Sprintf("FailureReason(%d)", int(r))
	}
}

// MediaSnapshot is a consistent view of a [MediaItem].
type MediaSnapshot struct {
	State  MediaState
	Object media.Object
	Reason FailureReason
	Err    error
}

// MediaItem is a single attachment that is fetched and decrypted on demand.
// The decrypted bytes live in the media registry until [MediaItem.Release].
// The lock is never held across the download, so observers see
// [MediaLoading] while a fetch is in flight.
type MediaItem struct {
	svc          *mediaService
	conversation models.Conversation
	ref          models.MediaRef

	mu     sync.Mutex
	gen    uint64 // bumped by every Load and Release; stale loads are discarded
	state  MediaState
	object media.Object
	reason FailureReason
	err    error
}

// Load fetches and decrypts the attachment. It is a no-op for a ready item.
// A load overtaken by [MediaItem.Release] or by another Load returns
// [ErrMediaDiscarded] and registers nothing.
func (m *MediaItem) Load(ctx context.Context) error {
	m.mu.Lock()
	if m.state == MediaReady {
		m.mu.Unlock()
		return nil
	}
	m.gen++
	gen := m.gen
	m.state = MediaLoading
	m.reason = FailureNone
	m.err = nil
	m.mu.Unlock()

	plaintext, reason, err := m.fetch(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen {
		clear(plaintext)
		return ErrMediaDiscarded
	}
	if err != nil {
		return m.fail(ctx, reason, err)
	}

	m.object = m.svc.registry.Create(plaintext, m.ref.Name, m.ref.MimeType)
	m.state = MediaReady

	return nil
}

// fetch downloads and decrypts the blob without touching the item state.
func (m *MediaItem) fetch(ctx context.Context) ([]byte, FailureReason, error) {
	blob, err := m.svc.api.FetchMedia(ctx, m.ref.URL)
	if err != nil {
		return nil, FailureFetch, fmt.Errorf("fetch media: %w", mapAdapterError(err))
	}

	nonce, err := base64.StdEncoding.DecodeString(m.ref.Nonce)
	if err != nil {
		return nil, FailureDecrypt, ErrDecryptFailed
	}

	plaintext, err := m.svc.crypto.DecryptBytes(ctx, m.conversation, nonce, blob)
	switch {
	case errors.Is(err, ErrLocked):
		return nil, FailureLocked, err
	case err != nil:
		return nil, FailureDecrypt, err
	}
	return plaintext, FailureNone, nil
}

// Retry loads a failed item again. It is a no-op in any other state.
func (m *MediaItem) Retry(ctx context.Context) error {
	m.mu.Lock()
	failed := m.state == MediaFailed
	m.mu.Unlock()

	if !failed {
		return nil
	}
	return m.Load(ctx)
}

// Release revokes the decrypted object and discards a load in flight. The
// item must be loaded again before use.
func (m *MediaItem) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gen++
	if m.state == MediaReady {
		m.svc.registry.Revoke(m.object.Handle)
	}
	m.object = media.Object{}
	m.state = MediaLoading
}

// Snapshot returns the current state of the item.
func (m *MediaItem) Snapshot() MediaSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return MediaSnapshot{State: m.state, Object: m.object, Reason: m.reason, Err: m.err}
}

// Ref returns the attachment reference.
func (m *MediaItem) Ref() models.MediaRef {
	return m.ref
}

// fail must be called with m.mu held.
func (m *MediaItem) fail(ctx context.Context, reason FailureReason, err error) error {
	m.state = MediaFailed
	m.reason = reason
	m.err = err

	logger.FromContext(ctx).Warn().Err(err).
		Str("func", "MediaItem.Load").
		Str("reason", reason.String()).
		Msg("media failed to load")

	return err
}
