// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// KeyPair is a long-term X25519 identity key pair. PrivateKey never leaves
// the device in plaintext: it is either held in the device key cache or
// wrapped inside a [KeyVault].
type KeyPair struct {
	PublicKey  []byte
	PrivateKey []byte
}

// Identity is the public half of a user's cryptographic identity. It is
// published through the identity API and is immutable once created.
type Identity struct {
	UserID    string `json:"userId"`
	PublicKey string `json:"publicKey"`
}

// KeyVault is the user's private key encrypted under a key derived from the
// PIN. All fields are standard base64. The server stores the vault as an
// opaque value and can never open it. Iterations records the PBKDF2 work
// factor the vault was sealed with; zero means the client default.
type KeyVault struct {
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
	Iterations int    `json:"iterations,omitempty"`
}

// IsZero reports whether the vault carries no data.
func (v *KeyVault) IsZero() bool {
	return v == nil || (v.Salt == "" && v.Nonce == "" && v.Ciphertext == "")
}

// CurrentUser is the profile returned by GET /users/me. PublicKey and Vault
// are empty until the user has set up encrypted messaging.
type CurrentUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	PublicKey string    `json:"publicKey,omitempty"`
	Vault     *KeyVault `json:"vault,omitempty"`
}

// HasVault reports whether the user has a PIN-wrapped private key on the
// server.
func (u CurrentUser) HasVault() bool {
	return !u.Vault.IsZero()
}

// PublishKeysRequest is the body of PUT /users/me/keys.
type PublishKeysRequest struct {
	PublicKey string   `json:"publicKey"`
	Vault     KeyVault `json:"vault"`
}
