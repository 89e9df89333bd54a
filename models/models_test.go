package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversation_Partner(t *testing.T) {
	conv := Conversation{Participants: []Participant{{ID: "alice"}, {ID: "bob"}}}

	p, ok := conv.Partner("alice")
	assert.True(t, ok)
	assert.Equal(t, "bob", p.ID)

	p, ok = conv.Partner("bob")
	assert.True(t, ok)
	assert.Equal(t, "alice", p.ID)

	_, ok = Conversation{Participants: []Participant{{ID: "alice"}}}.Partner("alice")
	assert.False(t, ok)
}

func TestAppBuildInfo_String(t *testing.T) {
	assert.Equal(t, "v1.2.0 (abc123, 2026-10-01)", NewAppBuildInfo("v1.2.0", "2026-10-01", "abc123").String())
	assert.Equal(t, "N/A (N/A, N/A)", AppBuildInfo{}.String())
}

func TestCurrentUser_HasVault(t *testing.T) {
	assert.False(t, CurrentUser{}.HasVault())
	assert.False(t, CurrentUser{Vault: &KeyVault{}}.HasVault())
	assert.True(t, CurrentUser{Vault: &KeyVault{Salt: "s", Nonce: "n", Ciphertext: "c"}}.HasVault())
}
