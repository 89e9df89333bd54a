package tui

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secure-chat/internal/realtime"
	"github.com/MKhiriev/go-secure-chat/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusInterval = time.Second

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and logout
// 3) handles NavigateTo messages
// 4) shows the connection state and pending notifications
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	notifications <-chan json.RawMessage
	connState     func() realtime.State
	state         realtime.State
	unread        int

	quitByUser bool
	logout     bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage. notifications and
// connState may be nil.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, notifications <-chan json.RawMessage, connState func() realtime.State) RootModel {
	return RootModel{
		pages:         pages,
		current:       pages[startPage],
		buildInfo:     buildInfo,
		notifications: notifications,
		connState:     connState,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForNotification(r.notifications), statusTick()}
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case k.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(k, keys.version) && r.isListPage():
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(k, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch m := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[m.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if m.Payload != nil {
			return r, func() tea.Msg { return m.Payload }
		}
		return r, r.current.Init()

	case logoutMsg:
		r.logout = true
		return r, tea.Quit

	case notificationMsg:
		r.unread++
		return r, waitForNotification(r.notifications)

	case statusTickMsg:
		if r.connState != nil {
			r.state = r.connState()
		}
		return r, statusTick()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("TUI", "", "")
	}
	return r.current.View() + "\n" + helpStyle.Render(r.statusLine())
}

func (r RootModel) statusLine() string {
	return fmt.Sprintf("  соединение: %s │ уведомлений: %d", r.state, r.unread)
}

func (r RootModel) isListPage() bool {
	_, ok := r.current.(*ConversationListModel)
	return ok
}

func waitForNotification(ch <-chan json.RawMessage) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		payload, ok := <-ch
		if !ok {
			return nil
		}
		return notificationMsg(payload)
	}
}

func statusTick() tea.Cmd {
	return tea.Tick(statusInterval, func(time.Time) tea.Msg { return statusTickMsg{} })
}
