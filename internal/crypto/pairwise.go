package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/box"
	"golang.org/x/crypto/nacl/secretbox"
)

// DeriveSharedSecret implements [KeyChainService] using X25519 followed by
// HSalsa20 (NaCl box precomputation).
func (k *keyChainService) DeriveSharedSecret(myPrivateKey, theirPublicKey []byte) ([]byte, error) {
	if len(myPrivateKey) != KeySize || len(theirPublicKey) != KeySize {
		return nil, ErrInvalidKeyLength
	}

	var priv, pub, shared [KeySize]byte
	copy(priv[:], myPrivateKey)
	copy(pub[:], theirPublicKey)
	defer Wipe(priv[:])

	box.Precompute(&shared, &pub, &priv)

	secret := make([]byte, KeySize)
	copy(secret, shared[:])
	Wipe(shared[:])

	return secret, nil
}

// Encrypt implements [KeyChainService] with XSalsa20-Poly1305.
func (k *keyChainService) Encrypt(plaintext, secret []byte) ([]byte, []byte, error) {
	if len(secret) != KeySize {
		return nil, nil, ErrInvalidKeyLength
	}

	var nonce [NonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	var key [KeySize]byte
	copy(key[:], secret)
	defer Wipe(key[:])

	ciphertext := secretbox.Seal(nil, plaintext, &nonce, &key)
	return nonce[:], ciphertext, nil
}

// Decrypt implements [KeyChainService]. An empty plaintext opens to an
// empty, non-nil slice so callers can tell it apart from a failure.
func (k *keyChainService) Decrypt(nonce, ciphertext, secret []byte) []byte {
	if len(nonce) != NonceSize || len(secret) != KeySize || len(ciphertext) < secretbox.Overhead {
		return nil
	}

	var n [NonceSize]byte
	var key [KeySize]byte
	copy(n[:], nonce)
	copy(key[:], secret)
	defer Wipe(key[:])

	plaintext, ok := secretbox.Open(make([]byte, 0, len(ciphertext)-secretbox.Overhead), ciphertext, &n, &key)
	if !ok {
		return nil
	}
	return plaintext
}
