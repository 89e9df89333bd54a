package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-secure-chat/internal/service"
	"github.com/MKhiriev/go-secure-chat/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const previewWidth = 40

// ConversationListModel lists the conversations of the user.
type ConversationListModel struct {
	ctx    context.Context
	chat   service.ChatService
	selfID string

	items      []models.Conversation
	idx        int
	nextCursor string
	hasMore    bool

	loading bool
	err     string
}

func NewConversationListModel(ctx context.Context, chat service.ChatService, selfID string) *ConversationListModel {
	return &ConversationListModel{ctx: ctx, chat: chat, selfID: selfID}
}

func (m *ConversationListModel) Init() tea.Cmd {
	m.loading = true
	return m.load("")
}

func (m *ConversationListModel) load(cursor string) tea.Cmd {
	return func() tea.Msg {
		page, err := m.chat.Conversations(m.ctx, cursor)
		return conversationsLoadedMsg{page: page, cursor: cursor, err: err}
	}
}

func (m *ConversationListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case conversationsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = humanizeError(msg.err)
			return m, nil
		}
		m.err = ""
		if msg.cursor == "" {
			m.items = nil
			m.idx = 0
		}
		m.items = append(m.items, msg.page.Data...)
		m.nextCursor = msg.page.Pagination.NextCursor
		m.hasMore = msg.page.Pagination.HasMore
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			if len(m.items) == 0 {
				return m, nil
			}
			conv := m.items[m.idx]
			return m, func() tea.Msg {
				return NavigateTo{Page: pageChat, Payload: openConversationMsg{conv: conv}}
			}
		case key.Matches(msg, keys.reload):
			m.loading = true
			return m, m.load("")
		case key.Matches(msg, keys.more):
			if m.hasMore && !m.loading {
				m.loading = true
				return m, m.load(m.nextCursor)
			}
		case key.Matches(msg, keys.logout):
			return m, func() tea.Msg { return logoutMsg{} }
		}
	}

	return m, nil
}

func (m *ConversationListModel) View() string {
	var b strings.Builder

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n\n")
	}
	if m.loading {
		b.WriteString("Загрузка...\n")
	}
	if len(m.items) == 0 && !m.loading {
		b.WriteString("Диалогов пока нет\n")
	}

	for i, conv := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-16s │ %s\n", cursor, fitText(partnerName(conv, m.selfID), 16), preview(conv.LastMessage, m.selfID)))
	}
	if m.hasMore {
		b.WriteString("\nm: загрузить ещё")
	}

	return renderPage("ДИАЛОГИ", strings.TrimRight(b.String(), "\n"), "enter: открыть │ ↑/↓: навигация │ r: обновить │ ctrl+l: выйти и забыть ключи │ v: версия")
}

func partnerName(conv models.Conversation, selfID string) string {
	p, ok := conv.Partner(selfID)
	if !ok {
		return "(только вы)"
	}
	if p.Username != "" {
		return p.Username
	}
	return p.ID
}

// preview renders one line for the last message of a conversation.
func preview(msg *models.Message, selfID string) string {
	if msg == nil {
		return "нет сообщений"
	}

	var text string
	switch {
	case msg.Kind == models.KindMedia && msg.Media != nil:
		text = "[вложение] " + msg.Media.Name
	case msg.Broken:
		text = "[не удалось расшифровать]"
	case msg.Body == "" && msg.Content != "":
		text = "[заблокировано]"
	default:
		text = strings.ReplaceAll(msg.Body, "\n", " ")
	}

	if msg.SenderID == selfID {
		text = "вы: " + text
	}
	return fitText(text, previewWidth)
}
