package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-secure-chat/internal/crypto"
	"github.com/MKhiriev/go-secure-chat/internal/logger"
	"github.com/MKhiriev/go-secure-chat/internal/store"
	"github.com/MKhiriev/go-secure-chat/models"
)

// sharedEntry is a shared secret together with the partner public key it was
// derived from. It is persisted as publicKey || secret.
type sharedEntry struct {
	publicKey []byte
	secret    []byte
}

type keyService struct {
	keys     store.DeviceKeyCache
	keychain crypto.KeyChainService
	logger   *logger.Logger

	mu     sync.Mutex
	master []byte
	shared map[string]sharedEntry
}

// NewKeyService returns a [KeyService] over the Device Key Cache keys.
func NewKeyService(keys store.DeviceKeyCache, keychain crypto.KeyChainService, logger *logger.Logger) KeyService {
	return &keyService{
		keys:     keys,
		keychain: keychain,
		logger:   logger,
		shared:   make(map[string]sharedEntry),
	}
}

func (k *keyService) MasterKey(ctx context.Context) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	master, err := k.masterLocked(ctx)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(master), nil
}

func (k *keyService) SetMasterKey(ctx context.Context, privateKey []byte) error {
	if len(privateKey) != crypto.KeySize {
		return crypto.ErrInvalidKeyLength
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.keys.Put(ctx, store.MasterKey, privateKey); err != nil {
		return fmt.Errorf("store master key: %w", err)
	}
	crypto.Wipe(k.master)
	k.master = bytes.Clone(privateKey)

	return nil
}

func (k *keyService) SharedSecret(ctx context.Context, partner models.Participant) ([]byte, error) {
	log := logger.FromContext(ctx)

	publicKey, err := base64.StdEncoding.DecodeString(partner.PublicKey)
	if err != nil || len(publicKey) != crypto.KeySize {
		return nil, ErrInvalidPublicKey
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if e, ok := k.shared[partner.ID]; ok && bytes.Equal(e.publicKey, publicKey) {
		return bytes.Clone(e.secret), nil
	}

	stored, err := k.keys.Get(ctx, store.SharedKey(partner.ID))
	if err != nil {
		return nil, fmt.Errorf("load shared secret: %w", err)
	}
	if len(stored) == 2*crypto.KeySize {
		if bytes.Equal(stored[:crypto.KeySize], publicKey) {
			k.remember(partner.ID, publicKey, stored[crypto.KeySize:])
			return bytes.Clone(stored[crypto.KeySize:]), nil
		}
		log.Warn().
			Str("func", "keyService.SharedSecret").
			Str("partner_id", partner.ID).
			Msg("partner public key changed, re-deriving shared secret")
	}

	master, err := k.masterLocked(ctx)
	if err != nil {
		return nil, err
	}

	secret, err := k.keychain.DeriveSharedSecret(master, publicKey)
	if err != nil {
		return nil, fmt.Errorf("derive shared secret: %w", err)
	}

	entry := append(bytes.Clone(publicKey), secret...)
	defer crypto.Wipe(entry)
	if err := k.keys.Put(ctx, store.SharedKey(partner.ID), entry); err != nil {
		return nil, fmt.Errorf("store shared secret: %w", err)
	}
	k.remember(partner.ID, publicKey, secret)

	return secret, nil
}

func (k *keyService) Forget(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	crypto.Wipe(k.master)
	k.master = nil
	for id, e := range k.shared {
		crypto.Wipe(e.secret)
		delete(k.shared, id)
	}

	if err := k.keys.Clear(ctx); err != nil {
		return fmt.Errorf("clear device keys: %w", err)
	}
	return nil
}

// masterLocked must be called with k.mu held.
func (k *keyService) masterLocked(ctx context.Context) ([]byte, error) {
	if k.master != nil {
		return k.master, nil
	}

	master, err := k.keys.Get(ctx, store.MasterKey)
	if err != nil {
		return nil, fmt.Errorf("load master key: %w", err)
	}
	if len(master) != crypto.KeySize {
		return nil, ErrLocked
	}

	k.master = master
	return master, nil
}

// remember must be called with k.mu held.
func (k *keyService) remember(partnerID string, publicKey, secret []byte) {
	if old, ok := k.shared[partnerID]; ok {
		crypto.Wipe(old.secret)
	}
	k.shared[partnerID] = sharedEntry{
		publicKey: bytes.Clone(publicKey),
		secret:    bytes.Clone(secret),
	}
}
