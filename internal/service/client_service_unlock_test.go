package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-secure-chat/internal/adapter"
	"github.com/MKhiriev/go-secure-chat/internal/config"
	"github.com/MKhiriev/go-secure-chat/internal/logger"
	"github.com/MKhiriev/go-secure-chat/internal/mock"
	"github.com/MKhiriev/go-secure-chat/internal/store"
	"github.com/MKhiriev/go-secure-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testVault = models.KeyVault{Salt: "c2FsdA==", Nonce: "bm9uY2U=", Ciphertext: "Y2lwaGVy"}

func newTestUnlockSvc(t *testing.T, ctrl *gomock.Controller, burst int) (*unlockService, *mock.MockIdentityAPI, *mock.MockKeyChainService, store.DeviceKeyCache) {
	t.Helper()
	mockIdentity := mock.NewMockIdentityAPI(ctrl)
	mockKeyChain := mock.NewMockKeyChainService(ctrl)
	deviceKeys := store.NewMemoryDeviceKeyCache()

	keys := NewKeyService(deviceKeys, mockKeyChain, logger.Nop())
	cfg := config.ClientVault{KDFIterations: testKDFIterations, UnlockRate: 0.0001, UnlockBurst: burst}

	svc := NewUnlockService(mockIdentity, keys, mockKeyChain, cfg, nil, logger.Nop()).(*unlockService)

	return svc, mockIdentity, mockKeyChain, deviceKeys
}

func vaultUser() models.CurrentUser {
	v := testVault
	return models.CurrentUser{ID: "alice", Username: "alice", PublicKey: "cHVi", Vault: &v}
}

// ── Check ────────────────────────────────────────────────────────────────────

func TestUnlockService_Check_NoVaultIsReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestUnlockSvc(t, ctrl, 5)

	state, err := svc.Check(context.Background(), models.CurrentUser{ID: "alice"})
	require.NoError(t, err)
	assert.Equal(t, UnlockReady, state)
	assert.True(t, svc.NeedsSetup())
}

func TestUnlockService_Check_VaultWithoutDeviceKeyIsLocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestUnlockSvc(t, ctrl, 5)

	state, err := svc.Check(context.Background(), vaultUser())
	require.NoError(t, err)
	assert.Equal(t, UnlockLocked, state)
	assert.False(t, svc.NeedsSetup())
	assert.Equal(t, UnlockLocked, <-svc.Changes())
}

func TestUnlockService_Check_VaultWithDeviceKeyIsReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockKeyChain, deviceKeys := newTestUnlockSvc(t, ctrl, 5)
	require.NoError(t, deviceKeys.Put(context.Background(), store.MasterKey, filled(1)))
	mockKeyChain.EXPECT().PublicKey(filled(1)).Return([]byte("pub"), nil)

	state, err := svc.Check(context.Background(), vaultUser())
	require.NoError(t, err)
	assert.Equal(t, UnlockReady, state)
}

func TestUnlockService_Check_ForeignDeviceKeyIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockKeyChain, deviceKeys := newTestUnlockSvc(t, ctrl, 5)
	ctx := context.Background()
	require.NoError(t, deviceKeys.Put(ctx, store.MasterKey, filled(7)))
	mockKeyChain.EXPECT().PublicKey(filled(7)).Return([]byte("someone else"), nil)

	state, err := svc.Check(ctx, vaultUser())
	require.NoError(t, err)
	assert.Equal(t, UnlockLocked, state)

	stored, err := deviceKeys.Get(ctx, store.MasterKey)
	require.NoError(t, err)
	assert.Nil(t, stored)

	_, err = svc.keys.MasterKey(ctx)
	assert.ErrorIs(t, err, ErrLocked)

	// the vault still opens the real key
	mockKeyChain.EXPECT().RestoreVault(testVault, "123456").Return(filled(1))
	require.NoError(t, svc.Unlock(ctx, "123456"))
	assert.Equal(t, UnlockReady, svc.State())
}

func TestUnlockService_Check_NoPublishedKeySkipsOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, deviceKeys := newTestUnlockSvc(t, ctrl, 5)
	require.NoError(t, deviceKeys.Put(context.Background(), store.MasterKey, filled(1)))

	user := vaultUser()
	user.PublicKey = ""

	state, err := svc.Check(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, UnlockReady, state)
}

// ── Unlock ───────────────────────────────────────────────────────────────────

func TestUnlockService_Unlock_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockKeyChain, deviceKeys := newTestUnlockSvc(t, ctrl, 5)
	ctx := context.Background()

	_, err := svc.Check(ctx, vaultUser())
	require.NoError(t, err)

	mockKeyChain.EXPECT().RestoreVault(testVault, "123456").Return(filled(1))

	require.NoError(t, svc.Unlock(ctx, "123456"))
	assert.Equal(t, UnlockReady, svc.State())

	stored, err := deviceKeys.Get(ctx, store.MasterKey)
	require.NoError(t, err)
	assert.Equal(t, filled(1), stored)

	assert.Equal(t, UnlockLocked, <-svc.Changes())
	assert.Equal(t, UnlockReady, <-svc.Changes())

	// already unlocked
	require.NoError(t, svc.Unlock(ctx, "anything"))
}

func TestUnlockService_Unlock_WrongPIN(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockKeyChain, _ := newTestUnlockSvc(t, ctrl, 5)
	ctx := context.Background()

	_, err := svc.Check(ctx, vaultUser())
	require.NoError(t, err)

	mockKeyChain.EXPECT().RestoreVault(testVault, "000000").Return(nil)

	err = svc.Unlock(ctx, "000000")
	assert.ErrorIs(t, err, ErrWrongPIN)
	assert.Equal(t, UnlockLocked, svc.State())
}

func TestUnlockService_Unlock_Throttled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockKeyChain, _ := newTestUnlockSvc(t, ctrl, 2)
	ctx := context.Background()

	_, err := svc.Check(ctx, vaultUser())
	require.NoError(t, err)

	mockKeyChain.EXPECT().RestoreVault(testVault, gomock.Any()).Return(nil).Times(2)

	for i := range 2 {
		assert.ErrorIs(t, svc.Unlock(ctx, fmt.Sprintf("%06d", i)), ErrWrongPIN)
	}
	// the vault is not even tried once the burst is used up
	assert.ErrorIs(t, svc.Unlock(ctx, "123456"), ErrTooManyAttempts)
}

func TestUnlockService_Unlock_BeforeCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestUnlockSvc(t, ctrl, 5)

	assert.ErrorIs(t, svc.Unlock(context.Background(), "123456"), ErrNotChecked)
}

// ── SetupIdentity ────────────────────────────────────────────────────────────

func TestUnlockService_SetupIdentity_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIdentity, mockKeyChain, deviceKeys := newTestUnlockSvc(t, ctrl, 5)
	ctx := context.Background()

	_, err := svc.Check(ctx, models.CurrentUser{ID: "alice"})
	require.NoError(t, err)

	pair := models.KeyPair{PublicKey: filled(7), PrivateKey: filled(8)}

	gomock.InOrder(
		mockKeyChain.EXPECT().CreateIdentity().Return(pair, nil),
		mockKeyChain.EXPECT().CreateVault(filled(8), "123456").Return(testVault, nil),
		mockIdentity.EXPECT().PublishKeys(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req models.PublishKeysRequest) error {
				assert.Equal(t, "BwcHBwcHBwcHBwcHBwcHBwcHBwcHBwcHBwcHBwcHBwc=", req.PublicKey)
				assert.Equal(t, testVault, req.Vault)
				return nil
			},
		),
	)

	identity, err := svc.SetupIdentity(ctx, "123456")
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.UserID)
	assert.Equal(t, UnlockReady, svc.State())
	assert.False(t, svc.NeedsSetup())

	stored, err := deviceKeys.Get(ctx, store.MasterKey)
	require.NoError(t, err)
	assert.Equal(t, filled(8), stored)

	// keys are never rotated
	_, err = svc.SetupIdentity(ctx, "123456")
	assert.ErrorIs(t, err, ErrIdentityExists)
}

func TestUnlockService_SetupIdentity_Errors(t *testing.T) {
	pair := models.KeyPair{PublicKey: filled(7), PrivateKey: filled(8)}

	tests := []struct {
		name    string
		user    models.CurrentUser
		pin     string
		setup   func(*mock.MockIdentityAPI, *mock.MockKeyChainService)
		wantErr error
	}{
		{
			name:    "existing vault",
			user:    vaultUser(),
			pin:     "123456",
			setup:   func(*mock.MockIdentityAPI, *mock.MockKeyChainService) {},
			wantErr: ErrIdentityExists,
		},
		{
			name:    "short pin",
			user:    models.CurrentUser{ID: "alice"},
			pin:     "12",
			setup:   func(*mock.MockIdentityAPI, *mock.MockKeyChainService) {},
			wantErr: ErrInvalidPIN,
		},
		{
			name: "server already has keys",
			user: models.CurrentUser{ID: "alice"},
			pin:  "123456",
			setup: func(api *mock.MockIdentityAPI, kc *mock.MockKeyChainService) {
				kc.EXPECT().CreateIdentity().Return(pair, nil)
				kc.EXPECT().CreateVault(gomock.Any(), "123456").Return(testVault, nil)
				api.EXPECT().PublishKeys(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: identity already exists", adapter.ErrConflict))
			},
			wantErr: ErrIdentityExists,
		},
		{
			name: "session expired",
			user: models.CurrentUser{ID: "alice"},
			pin:  "123456",
			setup: func(api *mock.MockIdentityAPI, kc *mock.MockKeyChainService) {
				kc.EXPECT().CreateIdentity().Return(pair, nil)
				kc.EXPECT().CreateVault(gomock.Any(), "123456").Return(testVault, nil)
				api.EXPECT().PublishKeys(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: session expired", adapter.ErrUnauthorized))
			},
			wantErr: ErrSessionExpired,
		},
		{
			name: "entropy failure",
			user: models.CurrentUser{ID: "alice"},
			pin:  "123456",
			setup: func(_ *mock.MockIdentityAPI, kc *mock.MockKeyChainService) {
				kc.EXPECT().CreateIdentity().Return(models.KeyPair{}, errors.New("entropy exhausted"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockIdentity, mockKeyChain, _ := newTestUnlockSvc(t, ctrl, 5)
			ctx := context.Background()
			_, err := svc.Check(ctx, tt.user)
			require.NoError(t, err)
			tt.setup(mockIdentity, mockKeyChain)

			_, err = svc.SetupIdentity(ctx, tt.pin)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// ── Lock ─────────────────────────────────────────────────────────────────────

func TestUnlockService_Lock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, deviceKeys := newTestUnlockSvc(t, ctrl, 5)
	ctx := context.Background()
	require.NoError(t, deviceKeys.Put(ctx, store.MasterKey, filled(1)))

	_, err := svc.Check(ctx, vaultUser())
	require.NoError(t, err)
	require.Equal(t, UnlockReady, svc.State())

	require.NoError(t, svc.Lock(ctx))
	assert.Equal(t, UnlockChecking, svc.State())

	stored, err := deviceKeys.Get(ctx, store.MasterKey)
	require.NoError(t, err)
	assert.Nil(t, stored)

	state, err := svc.Check(ctx, vaultUser())
	require.NoError(t, err)
	assert.Equal(t, UnlockLocked, state)
}

func TestUnlockState_String(t *testing.T) {
	assert.Equal(t, "checking", UnlockChecking.String())
	assert.Equal(t, "locked", UnlockLocked.String())
	assert.Equal(t, "ready", UnlockReady.String())
	assert.Equal(t, "UnlockState(9)", UnlockState(9).String())
}
