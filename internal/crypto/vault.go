package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-secure-chat/models"
)

// CreateVault implements [KeyChainService]. The private key is sealed with
// AES-256-GCM under PBKDF2-HMAC-SHA256(pin, salt). Salt and nonce are fresh
// for every call; the derived key is wiped before returning.
func (k *keyChainService) CreateVault(privateKey []byte, pin string) (models.KeyVault, error) {
	if len(privateKey) != KeySize {
		return models.KeyVault{}, ErrInvalidKeyLength
	}

	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return models.KeyVault{}, fmt.Errorf("generate salt: %w", err)
	}

	key := k.deriveVaultKey(pin, salt, k.kdfIterations)
	defer Wipe(key)

	gcm, err := newGCM(key)
	if err != nil {
		return models.KeyVault{}, err
	}

	nonce := make([]byte, VaultNonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.KeyVault{}, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, privateKey, nil)

	return models.KeyVault{
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		Iterations: k.kdfIterations,
	}, nil
}

// RestoreVault implements [KeyChainService]. The key is derived with the
// iteration count stored in the vault, falling back to the configured one
// for vaults that carry none. Every failure collapses to nil.
func (k *keyChainService) RestoreVault(vault models.KeyVault, pin string) []byte {
	salt, err := base64.StdEncoding.DecodeString(vault.Salt)
	if err != nil || len(salt) < SaltSize {
		return nil
	}
	nonce, err := base64.StdEncoding.DecodeString(vault.Nonce)
	if err != nil || len(nonce) != VaultNonceSize {
		return nil
	}
	ciphertext, err := base64.StdEncoding.DecodeString(vault.Ciphertext)
	if err != nil || len(ciphertext) == 0 {
		return nil
	}

	iterations := vault.Iterations
	if iterations <= 0 {
		iterations = k.kdfIterations
	}
	if iterations > MaxKDFIterations {
		return nil
	}

	key := k.deriveVaultKey(pin, salt, iterations)
	defer Wipe(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil
	}

	// an authentication failure here almost always means a wrong pin
	privateKey, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil
	}

	return privateKey
}

func (k *keyChainService) deriveVaultKey(pin string, salt []byte, iterations int) []byte {
	return pbkdf2.Key([]byte(pin), salt, iterations, KeySize, sha256.New)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
