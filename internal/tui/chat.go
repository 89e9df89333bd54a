package tui

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-secure-chat/internal/cache"
	"github.com/MKhiriev/go-secure-chat/internal/media"
	"github.com/MKhiriev/go-secure-chat/internal/service"
	"github.com/MKhiriev/go-secure-chat/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fileCommand = "/file "
	saveCommand = "/save"
	statusTTL   = 3 * time.Second
)

// ChatModel shows one conversation and sends messages to it.
type ChatModel struct {
	ctx      context.Context
	services *service.ClientServices
	caches   service.Caches
	selfID   string

	conv        models.Conversation
	partner     models.Participant
	fingerprint string
	messages    []models.Message
	hasOlder    bool

	updates     <-chan cache.Update
	unsubscribe func()

	input  textinput.Model
	status string
	err    string
}

func NewChatModel(ctx context.Context, services *service.ClientServices, caches service.Caches, selfID string) *ChatModel {
	in := textinput.New()
	in.Placeholder = "Сообщение, /file <путь> или /save"
	in.CharLimit = 4096
	in.Focus()

	return &ChatModel{
		ctx:      ctx,
		services: services,
		caches:   caches,
		selfID:   selfID,
		input:    in,
	}
}

func (m *ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openConversationMsg:
		return m, m.open(msg.conv)

	case messagesLoadedMsg:
		if msg.conversationID != m.conv.ID {
			return m, nil
		}
		if msg.err != nil {
			m.err = humanizeError(msg.err)
			return m, nil
		}
		m.err = ""
		m.refresh()
		return m, nil

	case olderLoadedMsg:
		m.refresh()
		if msg.err != nil {
			m.err = humanizeError(msg.err)
			return m, nil
		}
		if !msg.more {
			return m, m.flash("более ранних сообщений нет")
		}
		return m, nil

	case cacheUpdateMsg:
		if msg.ConversationID == m.conv.ID {
			m.refresh()
			if msg.Kind == cache.Invalidated {
				m.status = "собеседник прочитал сообщения"
			}
		}
		return m, waitForUpdate(m.updates)

	case sentMsg:
		if msg.err != nil {
			m.err = humanizeError(msg.err)
		}
		m.refresh()
		return m, nil

	case mediaSavedMsg:
		if msg.err != nil {
			m.err = humanizeError(msg.err)
			return m, nil
		}
		return m, m.flash("файл сохранён: "+msg.path)

	case copiedMsg:
		if msg.err != nil {
			m.err = "не удалось скопировать отпечаток: " + msg.err.Error()
			return m, nil
		}
		return m, m.flash("отпечаток скопирован")

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, m.leave()
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		case key.Matches(msg, keys.older):
			return m, m.loadOlder()
		case key.Matches(msg, keys.fingerprint):
			return m, copyFingerprint(m.fingerprint)
		case key.Matches(msg, keys.tab):
			return m, m.nextWindow()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChatModel) open(conv models.Conversation) tea.Cmd {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}

	m.conv = conv
	m.partner, _ = conv.Partner(m.selfID)
	m.fingerprint = ""
	if pub, err := base64.StdEncoding.DecodeString(m.partner.PublicKey); err == nil && len(pub) > 0 {
		m.fingerprint = m.services.KeyChain.Fingerprint(pub)
	}
	m.messages = nil
	m.err = ""
	m.status = ""
	m.input.Reset()

	m.caches.Windows.Open(m.partner.ID, conv.ID)
	m.caches.Windows.Focus(conv.ID)
	m.updates, m.unsubscribe = m.caches.Messages.Subscribe()

	ctx, chat := m.ctx, m.services.Chat
	return tea.Batch(
		func() tea.Msg {
			_, err := chat.LoadMessages(ctx, conv)
			return messagesLoadedMsg{conversationID: conv.ID, err: err}
		},
		func() tea.Msg {
			// read receipts are best effort
			_ = chat.MarkRead(ctx, conv.ID)
			return nil
		},
		waitForUpdate(m.updates),
	)
}

func (m *ChatModel) leave() tea.Cmd {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.caches.Windows.Focus("")
	m.caches.Windows.Minimize(m.partner.ID)

	return func() tea.Msg { return NavigateTo{Page: pageList} }
}

func (m *ChatModel) submit() tea.Cmd {
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		return nil
	}
	m.input.Reset()
	m.err = ""

	ctx, conv := m.ctx, m.conv

	switch {
	case strings.HasPrefix(text, fileCommand):
		path := strings.TrimSpace(strings.TrimPrefix(text, fileCommand))
		mediaSvc := m.services.Media
		return func() tea.Msg {
			return sentMsg{err: sendFile(ctx, mediaSvc, conv, path)}
		}

	case strings.TrimSpace(text) == saveCommand:
		latest, ok := latestMedia(m.messages)
		if !ok {
			m.err = "в диалоге нет вложений"
			return nil
		}
		mediaSvc, registry := m.services.Media, m.caches.Media
		return func() tea.Msg {
			path, err := saveMedia(ctx, mediaSvc, registry, conv, latest)
			return mediaSavedMsg{path: path, err: err}
		}
	}

	chat := m.services.Chat
	return func() tea.Msg {
		_, err := chat.SendText(ctx, conv, text)
		return sentMsg{err: err}
	}
}

func (m *ChatModel) loadOlder() tea.Cmd {
	ctx, conv, chat := m.ctx, m.conv, m.services.Chat
	return func() tea.Msg {
		more, err := chat.LoadOlder(ctx, conv)
		return olderLoadedMsg{more: more, err: err}
	}
}

// nextWindow switches to the chat window after the current one.
func (m *ChatModel) nextWindow() tea.Cmd {
	windows := m.caches.Windows.List()
	if len(windows) < 2 {
		return nil
	}

	i := slices.IndexFunc(windows, func(w cache.Window) bool { return w.ConversationID == m.conv.ID })
	next := windows[(i+1)%len(windows)]

	ctx, chat := m.ctx, m.services.Chat
	return func() tea.Msg {
		conv, err := chat.Conversation(ctx, next.ConversationID)
		if err != nil {
			return sentMsg{err: err}
		}
		return openConversationMsg{conv: conv}
	}
}

func (m *ChatModel) refresh() {
	m.messages = m.caches.Messages.Flatten(m.conv.ID)
	_, m.hasOlder = m.caches.Messages.NextCursor(m.conv.ID)
}

func (m *ChatModel) flash(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *ChatModel) View() string {
	var b strings.Builder

	b.WriteString(renderWindows(m.caches.Windows.List(), m.conv.ID))
	b.WriteString("\n")
	if m.fingerprint != "" {
		b.WriteString(helpStyle.Render("отпечаток ключа: " + m.fingerprint))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.hasOlder {
		b.WriteString(helpStyle.Render("ctrl+o: более ранние сообщения"))
		b.WriteString("\n")
	}
	b.WriteString(renderMessages(m.messages, m.selfID, m.partner))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.status))
	}
	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err))
	}

	title := "ДИАЛОГ С " + strings.ToUpper(partnerName(m.conv, m.selfID))
	return renderPage(title, b.String(), "enter: отправить │ esc: назад │ tab: следующее окно │ ctrl+f: копировать отпечаток")
}

// renderMessages lists messages oldest first.
func renderMessages(messages []models.Message, selfID string, partner models.Participant) string {
	if len(messages) == 0 {
		return helpStyle.Render("сообщений нет")
	}

	lines := make([]string, 0, len(messages))
	for _, msg := range slices.Backward(messages) {
		lines = append(lines, renderMessage(msg, selfID, partner))
	}
	return strings.Join(lines, "\n")
}

func renderMessage(msg models.Message, selfID string, partner models.Participant) string {
	author := partner.Username
	if author == "" {
		author = msg.SenderID
	}
	if msg.SenderID == selfID {
		author = "вы"
	}

	var body string
	switch {
	case msg.Kind == models.KindMedia && msg.Media != nil:
		body = fmt.Sprintf("[вложение] %s (%s, %d байт)", msg.Media.Name, msg.Media.MimeType, msg.Media.Size)
	case msg.Broken:
		body = brokenStyle.Render("[сообщение не удалось расшифровать]")
	case msg.Body == "" && msg.Content != "":
		body = brokenStyle.Render("[заблокировано, введите PIN]")
	default:
		body = msg.Body
	}

	line := fmt.Sprintf("%s %s: %s", msg.CreatedAt.Local().Format("15:04"), author, body)
	switch {
	case msg.Pending:
		line += helpStyle.Render(" (отправка...)")
	case msg.SenderID == selfID && msg.ReadAt != nil:
		line += helpStyle.Render(" ✓✓")
	}
	if msg.SenderID == selfID {
		return ownStyle.Render(line)
	}
	return line
}

func renderWindows(windows []cache.Window, activeID string) string {
	if len(windows) == 0 {
		return ""
	}

	cells := make([]string, 0, len(windows))
	for _, w := range windows {
		label := w.PartnerID
		if w.Minimized {
			label += " _"
		}
		if w.ConversationID == activeID {
			cells = append(cells, activeWindowStyle.Render(label))
			continue
		}
		cells = append(cells, windowStyle.Render(label))
	}
	return strings.Join(cells, "")
}

func waitForUpdate(ch <-chan cache.Update) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return nil
		}
		return cacheUpdateMsg(u)
	}
}

func copyFingerprint(fingerprint string) tea.Cmd {
	if fingerprint == "" {
		return nil
	}
	return func() tea.Msg {
		return copiedMsg{fingerprint: fingerprint, err: clipboard.WriteAll(fingerprint)}
	}
}

func latestMedia(messages []models.Message) (models.Message, bool) {
	for _, msg := range messages {
		if msg.Kind == models.KindMedia && msg.Media != nil {
			return msg, true
		}
	}
	return models.Message{}, false
}

func sendFile(ctx context.Context, mediaSvc service.MediaService, conv models.Conversation, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	_, err = mediaSvc.SendMedia(ctx, conv, filepath.Base(path), mimeType, f)
	return err
}

// saveMedia decrypts msg's attachment and writes it to the working directory
// under its original base name.
func saveMedia(ctx context.Context, mediaSvc service.MediaService, registry *media.Registry, conv models.Conversation, msg models.Message) (string, error) {
	item, err := mediaSvc.Item(conv, msg)
	if err != nil {
		return "", err
	}
	defer item.Release()

	if err = item.Load(ctx); err != nil {
		return "", err
	}

	snap := item.Snapshot()
	path := filepath.Base(snap.Object.Name)
	if path == "." || path == string(filepath.Separator) {
		path = "attachment"
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err = registry.WriteTo(snap.Object.Handle, f); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
