package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"

	"github.com/MKhiriev/go-secure-chat/models"
)

// fingerprintBytes is how much of the BLAKE3 digest is shown to users.
const fingerprintBytes = 16

// CreateIdentity implements [KeyChainService].
func (k *keyChainService) CreateIdentity() (models.KeyPair, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("%w: %w", ErrKeyGeneration, err)
	}

	return models.KeyPair{
		PublicKey:  pub[:],
		PrivateKey: priv[:],
	}, nil
}

// PublicKey implements [KeyChainService].
func (k *keyChainService) PublicKey(privateKey []byte) ([]byte, error) {
	if len(privateKey) != KeySize {
		return nil, ErrInvalidKeyLength
	}
	pub, err := curve25519.X25519(privateKey, curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("derive public key: %w", err)
	}
	return pub, nil
}

// Fingerprint implements [KeyChainService]. The digest is rendered as
// upper-case hex in groups of four, e.g. "3F2A 91C0 ...".
func (k *keyChainService) Fingerprint(publicKey []byte) string {
	sum := blake3.Sum256(publicKey)
	encoded := strings.ToUpper(hex.EncodeToString(sum[:fingerprintBytes]))

	groups := make([]string, 0, len(encoded)/4)
	for i := 0; i < len(encoded); i += 4 {
		groups = append(groups, encoded[i:i+4])
	}
	return strings.Join(groups, " ")
}
