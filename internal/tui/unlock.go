package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-secure-chat/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// UnlockModel asks for the PIN. A user without an identity chooses a PIN
// and confirms it instead.
type UnlockModel struct {
	ctx    context.Context
	unlock service.UnlockService

	setup   bool
	confirm bool
	first   string
	input   textinput.Model

	busy bool
	err  string
}

func NewUnlockModel(ctx context.Context, unlock service.UnlockService) *UnlockModel {
	in := textinput.New()
	in.Placeholder = "PIN"
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	in.CharLimit = 32
	in.Focus()

	return &UnlockModel{
		ctx:    ctx,
		unlock: unlock,
		setup:  unlock.NeedsSetup(),
		input:  in,
	}
}

func (m *UnlockModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case unlockDoneMsg:
		m.busy = false
		m.input.Reset()
		if msg.err != nil {
			m.err = humanizeError(msg.err)
			m.confirm = false
			m.first = ""
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageList} }

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		if key.Matches(msg, keys.enter) {
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *UnlockModel) submit() (tea.Model, tea.Cmd) {
	pin := strings.TrimSpace(m.input.Value())
	if pin == "" {
		return m, nil
	}
	m.err = ""

	if !m.setup {
		m.busy = true
		return m, func() tea.Msg {
			return unlockDoneMsg{err: m.unlock.Unlock(m.ctx, pin)}
		}
	}

	if !m.confirm {
		m.first = pin
		m.confirm = true
		m.input.Reset()
		return m, nil
	}

	if pin != m.first {
		m.err = "PIN не совпадает"
		m.confirm = false
		m.first = ""
		m.input.Reset()
		return m, nil
	}

	m.busy = true
	return m, func() tea.Msg {
		identity, err := m.unlock.SetupIdentity(m.ctx, pin)
		if err != nil {
			return unlockDoneMsg{err: err}
		}
		return unlockDoneMsg{identity: &identity}
	}
}

func (m *UnlockModel) View() string {
	var b strings.Builder

	switch {
	case m.setup && !m.confirm:
		b.WriteString("Придумайте PIN для защиты ключа шифрования.\n")
		b.WriteString("Без PIN восстановить переписку невозможно.\n\n")
	case m.setup:
		b.WriteString("Повторите PIN.\n\n")
	default:
		b.WriteString("Введите PIN, чтобы расшифровать сообщения на этом устройстве.\n\n")
	}

	b.WriteString(m.input.View())

	if m.busy {
		b.WriteString("\n\nПроверка...")
	}
	if m.err != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.err))
	}

	title := "РАЗБЛОКИРОВКА"
	if m.setup {
		title = "НОВЫЙ КЛЮЧ ШИФРОВАНИЯ"
	}
	return renderPage(title, b.String(), "enter: подтвердить")
}
