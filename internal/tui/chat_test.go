package tui

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-secure-chat/internal/cache"
	"github.com/MKhiriev/go-secure-chat/internal/crypto"
	"github.com/MKhiriev/go-secure-chat/internal/media"
	"github.com/MKhiriev/go-secure-chat/internal/service"
	"github.com/MKhiriev/go-secure-chat/internal/service/mock"
	"github.com/MKhiriev/go-secure-chat/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type chatFixture struct {
	model  *ChatModel
	chat   *mock.MockChatService
	media  *mock.MockMediaService
	caches service.Caches
	conv   models.Conversation
}

func newChatFixture(t *testing.T) chatFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	chat := mock.NewMockChatService(ctrl)
	mediaSvc := mock.NewMockMediaService(ctrl)

	caches := service.Caches{
		Messages: cache.NewMessages(),
		Windows:  cache.NewWindows(0),
		Media:    media.NewRegistry(nil),
	}
	services := &service.ClientServices{
		KeyChain: crypto.NewKeyChainService(1000),
		Chat:     chat,
		Media:    mediaSvc,
	}

	conv := models.Conversation{
		ID: "c1",
		Participants: []models.Participant{
			{ID: "alice", Username: "alice"},
			{ID: "bob", Username: "bob", PublicKey: base64.StdEncoding.EncodeToString(make([]byte, 32))},
		},
	}

	return chatFixture{
		model:  NewChatModel(context.Background(), services, caches, "alice"),
		chat:   chat,
		media:  mediaSvc,
		caches: caches,
		conv:   conv,
	}
}

func TestChatModel_OpenFocusesWindow(t *testing.T) {
	f := newChatFixture(t)

	_, cmd := f.model.Update(openConversationMsg{conv: f.conv})
	require.NotNil(t, cmd)

	assert.Equal(t, "c1", f.caches.Windows.Active())
	require.Len(t, f.caches.Windows.List(), 1)
	assert.Equal(t, "bob", f.caches.Windows.List()[0].PartnerID)
	assert.NotEmpty(t, f.model.fingerprint)
	assert.Contains(t, f.model.View(), f.model.fingerprint)

	cmd = f.model.leave()
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageList}, cmd())
	assert.Empty(t, f.caches.Windows.Active())
	assert.True(t, f.caches.Windows.List()[0].Minimized)
}

func TestChatModel_CacheUpdateRefreshesView(t *testing.T) {
	f := newChatFixture(t)
	_, _ = f.model.Update(openConversationMsg{conv: f.conv})

	f.caches.Messages.Set("c1", models.MessagePage{Data: []models.Message{
		{ID: "m2", SenderID: "bob", Body: "второе", CreatedAt: time.Now()},
		{ID: "m1", SenderID: "alice", Body: "первое", CreatedAt: time.Now().Add(-time.Minute)},
	}})

	_, cmd := f.model.Update(cacheUpdateMsg{ConversationID: "c1", Kind: cache.Updated})
	assert.NotNil(t, cmd)
	require.Len(t, f.model.messages, 2)

	view := f.model.View()
	assert.Less(t, strings.Index(view, "первое"), strings.Index(view, "второе"))
}

func TestChatModel_SubmitSendsText(t *testing.T) {
	f := newChatFixture(t)
	_, _ = f.model.Update(openConversationMsg{conv: f.conv})

	f.chat.EXPECT().SendText(gomock.Any(), f.conv, "привет").Return(models.Message{ID: "m1"}, nil)

	_, _ = f.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("привет")})
	_, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, sentMsg{}, cmd())
	assert.Empty(t, f.model.input.Value())
}

func TestChatModel_SaveWithoutMedia(t *testing.T) {
	f := newChatFixture(t)
	_, _ = f.model.Update(openConversationMsg{conv: f.conv})

	_, _ = f.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(saveCommand)})
	_, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "в диалоге нет вложений", f.model.err)
}

func TestRenderMessage(t *testing.T) {
	partner := models.Participant{ID: "bob", Username: "Боб"}
	now := time.Now()

	tests := []struct {
		name string
		msg  models.Message
		want string
	}{
		{name: "partner text", msg: models.Message{SenderID: "bob", Body: "привет", CreatedAt: now}, want: "Боб: привет"},
		{name: "own pending", msg: models.Message{SenderID: "alice", Body: "ок", Pending: true, CreatedAt: now}, want: "(отправка...)"},
		{name: "own read", msg: models.Message{SenderID: "alice", Body: "ок", ReadAt: &now, CreatedAt: now}, want: "✓✓"},
		{name: "broken", msg: models.Message{SenderID: "bob", Content: "x", Broken: true, CreatedAt: now}, want: "не удалось расшифровать"},
		{name: "locked", msg: models.Message{SenderID: "bob", Content: "x", CreatedAt: now}, want: "заблокировано"},
		{
			name: "media",
			msg:  models.Message{SenderID: "bob", Kind: models.KindMedia, Media: &models.MediaRef{Name: "a.txt", MimeType: "text/plain", Size: 3}, CreatedAt: now},
			want: "[вложение] a.txt (text/plain, 3 байт)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, renderMessage(tt.msg, "alice", partner), tt.want)
		})
	}
}

func TestLatestMedia(t *testing.T) {
	_, ok := latestMedia([]models.Message{{ID: "m1", Body: "text"}})
	assert.False(t, ok)

	msgs := []models.Message{
		{ID: "m3", Body: "text"},
		{ID: "m2", Kind: models.KindMedia, Media: &models.MediaRef{Name: "new"}},
		{ID: "m1", Kind: models.KindMedia, Media: &models.MediaRef{Name: "old"}},
	}
	got, ok := latestMedia(msgs)
	require.True(t, ok)
	assert.Equal(t, "m2", got.ID)
}
