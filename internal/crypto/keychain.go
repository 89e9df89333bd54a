// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// Sizes used across the package.
const (
	// KeySize is the length of X25519 keys, shared secrets and the vault key.
	KeySize = 32
	// NonceSize is the XSalsa20-Poly1305 nonce length.
	NonceSize = 24
	// SaltSize is the PBKDF2 salt length of a vault.
	SaltSize = 16
	// VaultNonceSize is the AES-GCM nonce length of a vault.
	VaultNonceSize = 12

	// DefaultKDFIterations is the PBKDF2-HMAC-SHA256 iteration count used
	// when none is configured.
	DefaultKDFIterations = 310_000
	// MaxKDFIterations bounds the iteration count a stored vault may ask for.
	MaxKDFIterations = 10_000_000
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// PBKDF2 tuning parameter. Kept in the struct so tests can lower it.
	kdfIterations int
}

// NewKeyChainService constructs a [KeyChainService]. A non-positive
// kdfIterations falls back to [DefaultKDFIterations]. New vaults record the
// count, so changing it later does not lock out existing vaults.
func NewKeyChainService(kdfIterations int) KeyChainService {
	if kdfIterations <= 0 {
		kdfIterations = DefaultKDFIterations
	}
	return &keyChainService{kdfIterations: kdfIterations}
}

// Wipe overwrites b with zeros.
func Wipe(b []byte) {
	clear(b)
}
