package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-secure-chat/internal/adapter"
	"github.com/MKhiriev/go-secure-chat/internal/config"
	"github.com/MKhiriev/go-secure-chat/internal/crypto"
	"github.com/MKhiriev/go-secure-chat/internal/logger"
	"github.com/MKhiriev/go-secure-chat/internal/metrics"
	"github.com/MKhiriev/go-secure-chat/models"
)

// UnlockState is the state of the unlock gate.
type UnlockState int

const (
	// UnlockChecking is the state before the device keys were inspected.
	UnlockChecking UnlockState = iota
	// UnlockLocked means the user has a vault but this device holds no key.
	UnlockLocked
	// UnlockReady means messages can be decrypted, or there is nothing to
	// decrypt yet.
	UnlockReady
)

func (s UnlockState) String() string {
	switch s {
	case UnlockChecking:
		return "checking"
	case UnlockLocked:
		return "locked"
	case UnlockReady:
		return "ready"
	default:
		return fmt.Sprintf("UnlockState(%d)", int(s))
	}
}

const minPINLength = 4

type unlockService struct {
	identity adapter.IdentityAPI
	keys     KeyService
	keychain crypto.KeyChainService
	limiter  *rate.Limiter
	metrics  *metrics.Metrics
	logger   *logger.Logger

	mu      sync.Mutex
	state   UnlockState
	user    models.CurrentUser
	checked bool
	changes chan UnlockState
}

// NewUnlockService returns an [UnlockService]. PIN attempts are limited to
// cfg.UnlockRate per second with bursts of cfg.UnlockBurst.
func NewUnlockService(identity adapter.IdentityAPI, keys KeyService, keychain crypto.KeyChainService, cfg config.ClientVault, m *metrics.Metrics, logger *logger.Logger) UnlockService {
	return &unlockService{
		identity: identity,
		keys:     keys,
		keychain: keychain,
		limiter:  rate.NewLimiter(rate.Limit(cfg.UnlockRate), cfg.UnlockBurst),
		metrics:  m,
		logger:   logger,
		state:    UnlockChecking,
		changes:  make(chan UnlockState, 8),
	}
}

func (u *unlockService) Check(ctx context.Context, user models.CurrentUser) (UnlockState, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.user = user
	u.checked = true

	if !user.HasVault() {
		u.setState(UnlockReady)
		return UnlockReady, nil
	}

	master, err := u.keys.MasterKey(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrLocked):
		u.setState(UnlockLocked)
		return u.state, nil
	default:
		return u.state, fmt.Errorf("check device keys: %w", err)
	}
	defer crypto.Wipe(master)

	if !u.ownsKey(master, user) {
		logger.FromContext(ctx).Warn().
			Str("func", "unlockService.Check").
			Str("user_id", user.ID).
			Msg("device key belongs to another identity, discarding it")
		if err := u.keys.Forget(ctx); err != nil {
			return u.state, fmt.Errorf("discard foreign device key: %w", err)
		}
		u.setState(UnlockLocked)
		return u.state, nil
	}

	u.setState(UnlockReady)
	return u.state, nil
}

// ownsKey reports whether privateKey matches the published key of user. A
// user without a published key accepts any key.
func (u *unlockService) ownsKey(privateKey []byte, user models.CurrentUser) bool {
	if user.PublicKey == "" {
		return true
	}
	pub, err := u.keychain.PublicKey(privateKey)
	if err != nil {
		return false
	}
	return base64.StdEncoding.EncodeToString(pub) == user.PublicKey
}

func (u *unlockService) Unlock(ctx context.Context, pin string) error {
	log := logger.FromContext(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()

	switch u.state {
	case UnlockReady:
		return nil
	case UnlockChecking:
		return ErrNotChecked
	}

	if !u.limiter.Allow() {
		u.metrics.UnlockAttempt(metrics.UnlockThrottled)
		log.Warn().Str("func", "unlockService.Unlock").Msg("unlock attempt throttled")
		return ErrTooManyAttempts
	}

	privateKey := u.keychain.RestoreVault(*u.user.Vault, pin)
	if privateKey == nil {
		u.metrics.UnlockAttempt(metrics.UnlockWrongPIN)
		log.Info().Str("func", "unlockService.Unlock").Msg("vault did not open")
		return ErrWrongPIN
	}
	defer crypto.Wipe(privateKey)

	if err := u.keys.SetMasterKey(ctx, privateKey); err != nil {
		return fmt.Errorf("unlock: %w", err)
	}

	u.metrics.UnlockAttempt(metrics.UnlockSuccess)
	u.setState(UnlockReady)

	return nil
}

func (u *unlockService) SetupIdentity(ctx context.Context, pin string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.checked {
		return models.Identity{}, ErrNotChecked
	}
	if u.user.HasVault() || u.user.PublicKey != "" {
		return models.Identity{}, ErrIdentityExists
	}
	if len(pin) < minPINLength {
		return models.Identity{}, ErrInvalidPIN
	}

	keyPair, err := u.keychain.CreateIdentity()
	if err != nil {
		return models.Identity{}, fmt.Errorf("create identity: %w", err)
	}
	defer crypto.Wipe(keyPair.PrivateKey)

	vault, err := u.keychain.CreateVault(keyPair.PrivateKey, pin)
	if err != nil {
		return models.Identity{}, fmt.Errorf("create vault: %w", err)
	}

	publicKey := base64.StdEncoding.EncodeToString(keyPair.PublicKey)
	err = u.identity.PublishKeys(ctx, models.PublishKeysRequest{PublicKey: publicKey, Vault: vault})
	if errors.Is(err, adapter.ErrConflict) {
		return models.Identity{}, ErrIdentityExists
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("publish keys: %w", mapAdapterError(err))
	}

	if err := u.keys.SetMasterKey(ctx, keyPair.PrivateKey); err != nil {
		return models.Identity{}, fmt.Errorf("setup identity: %w", err)
	}

	u.user.PublicKey = publicKey
	u.user.Vault = &vault
	u.setState(UnlockReady)

	log.Info().
		Str("func", "unlockService.SetupIdentity").
		Str("user_id", u.user.ID).
		Msg("identity published")

	return models.Identity{UserID: u.user.ID, PublicKey: publicKey}, nil
}

func (u *unlockService) Lock(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.keys.Forget(ctx); err != nil {
		return err
	}
	u.setState(UnlockChecking)

	return nil
}

func (u *unlockService) NeedsSetup() bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.checked && !u.user.HasVault() && u.user.PublicKey == ""
}

func (u *unlockService) State() UnlockState {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.state
}

func (u *unlockService) Changes() <-chan UnlockState {
	return u.changes
}

// setState must be called with u.mu held. Transitions are dropped for a
// listener that falls behind.
func (u *unlockService) setState(s UnlockState) {
	if u.state == s {
		return
	}
	u.state = s

	select {
	case u.changes <- s:
	default:
	}
}
