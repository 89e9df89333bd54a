package crypto

import "github.com/MKhiriev/go-secure-chat/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService holds all client-side cryptography of the messaging core.
// It knows nothing about the network, storage or users.
//
// Flow:
//
//	KeyPair  = CreateIdentity()                          (registration)
//	Vault    = CreateVault(KeyPair.PrivateKey, pin)      (registration)
//	Private  = RestoreVault(Vault, pin)                  (new device / unlock)
//	Secret   = DeriveSharedSecret(Private, partnerPub)   (per partner)
//	N, C     = Encrypt(plaintext, Secret)                (send)
//	Plain    = Decrypt(N, C, Secret)                     (receive)
type KeyChainService interface {
	// CreateIdentity generates a fresh X25519 key pair.
	CreateIdentity() (models.KeyPair, error)

	// PublicKey returns the X25519 public key of privateKey.
	PublicKey(privateKey []byte) ([]byte, error)

	// Fingerprint renders a short BLAKE3 digest of publicKey for
	// out-of-band verification.
	Fingerprint(publicKey []byte) string

	// CreateVault wraps privateKey under a key derived from pin.
	CreateVault(privateKey []byte, pin string) (models.KeyVault, error)

	// RestoreVault unwraps a vault. It returns nil for a wrong pin or a
	// malformed or tampered vault and never panics.
	RestoreVault(vault models.KeyVault, pin string) []byte

	// DeriveSharedSecret computes the pairwise secret between myPrivateKey
	// and theirPublicKey. Both sides obtain the same value.
	DeriveSharedSecret(myPrivateKey, theirPublicKey []byte) ([]byte, error)

	// Encrypt seals plaintext under secret with a fresh random nonce.
	Encrypt(plaintext, secret []byte) (nonce, ciphertext []byte, err error)

	// Decrypt opens ciphertext. It returns nil on any authentication
	// failure, including a wrong key or wrong lengths.
	Decrypt(nonce, ciphertext, secret []byte) []byte
}
