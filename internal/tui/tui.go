package tui

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-secure-chat/internal/logger"
	"github.com/MKhiriev/go-secure-chat/internal/realtime"
	"github.com/MKhiriev/go-secure-chat/internal/service"
	"github.com/MKhiriev/go-secure-chat/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Session is the part of a started chat session the TUI works with.
type Session interface {
	Services() *service.ClientServices
	Caches() service.Caches
	User() models.CurrentUser
	ConnectionState() realtime.State
	Notifications() <-chan json.RawMessage
}

type TUI struct {
	session   Session
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(session Session, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{session: session, buildInfo: buildInfo, logger: logger}
}

// Run shows the chat until the user quits. logout reports whether the user
// asked to sign out rather than just leave.
func (t *TUI) Run(ctx context.Context, state service.UnlockState) (logout bool, err error) {
	services := t.session.Services()
	user := t.session.User()

	root := NewRootModel(
		t.pages(ctx, services, user),
		startPage(state, services.Unlock),
		t.buildInfo,
		t.session.Notifications(),
		t.session.ConnectionState,
	)

	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Debug().Str("user_id", user.ID).Msg("user left the chat")
		return false, ErrUserQuit
	}
	return result.logout, nil
}

func (t *TUI) pages(ctx context.Context, services *service.ClientServices, user models.CurrentUser) map[string]tea.Model {
	return map[string]tea.Model{
		pageUnlock: NewUnlockModel(ctx, services.Unlock),
		pageList:   NewConversationListModel(ctx, services.Chat, user.ID),
		pageChat:   NewChatModel(ctx, services, t.session.Caches(), user.ID),
	}
}

func startPage(state service.UnlockState, unlock service.UnlockService) string {
	if state == service.UnlockLocked || unlock.NeedsSetup() {
		return pageUnlock
	}
	return pageList
}
