package cache

import (
	"slices"
	"sync"
)

// DefaultMaxWindows is how many chat windows may be open at once.
const DefaultMaxWindows = 3

// Window is a transient chat window opened for a conversation partner.
type Window struct {
	PartnerID      string
	ConversationID string
	Minimized      bool
}

// Windows tracks the open chat windows and the conversation the user is
// currently looking at.
type Windows struct {
	mu      sync.Mutex
	max     int
	windows []Window // oldest first
	active  string
}

// NewWindows returns a manager that keeps at most max windows open; opening
// one more closes the oldest. A non-positive max uses [DefaultMaxWindows].
func NewWindows(max int) *Windows {
	if max <= 0 {
		max = DefaultMaxWindows
	}
	return &Windows{max: max}
}

// Open opens a window for partnerID, or un-minimizes the existing one.
func (w *Windows) Open(partnerID, conversationID string) Window {
	w.mu.Lock()
	defer w.mu.Unlock()

	if i := w.index(partnerID); i >= 0 {
		w.windows[i].Minimized = false
		if conversationID != "" {
			w.windows[i].ConversationID = conversationID
		}
		return w.windows[i]
	}

	win := Window{PartnerID: partnerID, ConversationID: conversationID}
	w.windows = append(w.windows, win)
	if len(w.windows) > w.max {
		w.windows = slices.Delete(w.windows, 0, len(w.windows)-w.max)
	}
	return win
}

// Minimize collapses the window of partnerID. It reports false when no such
// window is open.
func (w *Windows) Minimize(partnerID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.index(partnerID)
	if i < 0 {
		return false
	}
	w.windows[i].Minimized = true
	return true
}

// Close removes the window of partnerID.
func (w *Windows) Close(partnerID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.index(partnerID)
	if i < 0 {
		return false
	}
	w.windows = slices.Delete(w.windows, i, i+1)
	return true
}

// Focus records conversationID as the conversation on screen. An empty id
// means none.
func (w *Windows) Focus(conversationID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.active = conversationID
}

// Active returns the conversation on screen, if any.
func (w *Windows) Active() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.active
}

// List returns the open windows, oldest first.
func (w *Windows) List() []Window {
	w.mu.Lock()
	defer w.mu.Unlock()

	return slices.Clone(w.windows)
}

// Reset closes every window and clears the active conversation.
func (w *Windows) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.windows = nil
	w.active = ""
}

func (w *Windows) index(partnerID string) int {
	return slices.IndexFunc(w.windows, func(win Window) bool {
		return win.PartnerID == partnerID
	})
}
