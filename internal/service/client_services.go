package service

import (
	"github.com/MKhiriev/go-secure-chat/internal/adapter"
	"github.com/MKhiriev/go-secure-chat/internal/cache"
	"github.com/MKhiriev/go-secure-chat/internal/config"
	"github.com/MKhiriev/go-secure-chat/internal/crypto"
	"github.com/MKhiriev/go-secure-chat/internal/logger"
	"github.com/MKhiriev/go-secure-chat/internal/media"
	"github.com/MKhiriev/go-secure-chat/internal/metrics"
	"github.com/MKhiriev/go-secure-chat/internal/store"
)

// ClientServices are the services of one signed-in user.
type ClientServices struct {
	KeyChain   crypto.KeyChainService
	Keys       KeyService
	Unlock     UnlockService
	Crypto     MessageCryptoService
	Chat       ChatService
	Media      MediaService
	Reconciler Reconciler
}

// Caches are the in-memory views the services write to.
type Caches struct {
	Messages *cache.Messages
	Windows  *cache.Windows
	Media    *media.Registry
}

// NewClientServices wires the services for the user selfID.
func NewClientServices(
	selfID string,
	cfg *config.ClientConfig,
	keys store.DeviceKeyCache,
	serverAdapter adapter.ServerAdapter,
	caches Caches,
	m *metrics.Metrics,
	logger *logger.Logger,
) *ClientServices {
	keychain := crypto.NewKeyChainService(cfg.Vault.KDFIterations)

	keySvc := NewKeyService(keys, keychain, logger)
	cryptoSvc := NewMessageCryptoService(selfID, keySvc, keychain, m, logger)
	chatSvc := NewChatService(selfID, serverAdapter, cryptoSvc, caches.Messages, logger)

	return &ClientServices{
		KeyChain:   keychain,
		Keys:       keySvc,
		Unlock:     NewUnlockService(serverAdapter, keySvc, keychain, cfg.Vault, m, logger),
		Crypto:     cryptoSvc,
		Chat:       chatSvc,
		Media:      NewMediaService(serverAdapter, cryptoSvc, caches.Media, caches.Messages, cfg.Media.MaxSize, logger),
		Reconciler: NewReconciler(selfID, chatSvc, cryptoSvc, caches.Messages, caches.Windows, m, logger),
	}
}
