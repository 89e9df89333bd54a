package tui

import (
	"encoding/json"

	"github.com/MKhiriev/go-secure-chat/internal/cache"
	"github.com/MKhiriev/go-secure-chat/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names.
const (
	pageUnlock = "unlock"
	pageList   = "list"
	pageChat   = "chat"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type unlockDoneMsg struct {
	identity *models.Identity
	err      error
}

type conversationsLoadedMsg struct {
	page   models.ConversationPage
	cursor string
	err    error
}

type openConversationMsg struct {
	conv models.Conversation
}

type messagesLoadedMsg struct {
	conversationID string
	err            error
}

type olderLoadedMsg struct {
	more bool
	err  error
}

type sentMsg struct {
	err error
}

type mediaSavedMsg struct {
	path string
	err  error
}

type cacheUpdateMsg cache.Update

type notificationMsg json.RawMessage

type logoutMsg struct{}

type statusTickMsg struct{}

type copiedMsg struct {
	fingerprint string
	err         error
}

type clearStatusMsg struct{}
