package cache

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-secure-chat/models"
)

// UpdateKind tells subscribers what happened to a conversation view.
type UpdateKind int

const (
	// Updated means the messages of the view changed.
	Updated UpdateKind = iota
	// Invalidated means the view was dropped and must be refetched.
	Invalidated
)

// Update is delivered to subscribers after every change.
type Update struct {
	ConversationID string
	Kind           UpdateKind
}

// subscriberBuffer bounds each subscriber channel; slow subscribers miss
// updates rather than block writers.
const subscriberBuffer = 64

type conversationView struct {
	// pages are newest first; pages[0] is the most recent page.
	pages []models.MessagePage
}

// Messages is the per-conversation paginated message cache.
type Messages struct {
	mu    sync.Mutex
	views map[string]*conversationView
	stale map[string]bool

	subMu  sync.Mutex
	nextID int
	subs   map[int]chan Update
}

// NewMessages returns an empty cache.
func NewMessages() *Messages {
	return &Messages{
		views: make(map[string]*conversationView),
		stale: make(map[string]bool),
		subs:  make(map[int]chan Update),
	}
}

// Set replaces the view of conversationID with a freshly fetched first page.
func (c *Messages) Set(conversationID string, page models.MessagePage) {
	c.mu.Lock()
	c.views[conversationID] = &conversationView{pages: []models.MessagePage{clonePage(page)}}
	delete(c.stale, conversationID)
	c.mu.Unlock()

	c.notify(conversationID, Updated)
}

// AppendPage adds an older page to the end of the view. Messages already
// cached are skipped. It reports false when the conversation has no view.
func (c *Messages) AppendPage(conversationID string, page models.MessagePage) bool {
	c.mu.Lock()
	view, ok := c.views[conversationID]
	if !ok {
		c.mu.Unlock()
		return false
	}

	older := models.MessagePage{Pagination: page.Pagination}
	for _, msg := range page.Data {
		if !view.contains(msg.ID) {
			older.Data = append(older.Data, msg)
		}
	}
	view.pages = append(view.pages, older)
	c.mu.Unlock()

	c.notify(conversationID, Updated)
	return true
}

// Merge inserts a pushed message into the first page of its conversation,
// keeping CreatedAt descending. It never creates a page boundary. A message
// echoing a pending send (ClientID set) replaces the pending entry.
//
// Merge reports false, leaving the pages untouched, when the message is
// already cached or the conversation has no view. A message older than the
// newest entry of the older cached pages cannot be placed in the first page;
// the view is invalidated instead and Merge reports false.
func (c *Messages) Merge(msg models.Message) bool {
	msg.Pending = false

	c.mu.Lock()
	view, ok := c.views[msg.ConversationID]
	if !ok || view.contains(msg.ID) {
		c.mu.Unlock()
		return false
	}
	if !view.fitsFirstPage(msg) {
		c.invalidateLocked(msg.ConversationID)
		c.mu.Unlock()

		c.notify(msg.ConversationID, Invalidated)
		return false
	}
	if msg.ClientID != "" {
		view.removePending(msg.ClientID)
	}
	view.insertFirstPage(msg)
	c.mu.Unlock()

	c.notify(msg.ConversationID, Updated)
	return true
}

// AddOptimistic inserts a pending local message. msg.ID must be the client
// id the send was issued with. A view is created when none exists.
func (c *Messages) AddOptimistic(msg models.Message) {
	msg.Pending = true

	c.mu.Lock()
	view, ok := c.views[msg.ConversationID]
	if !ok {
		view = &conversationView{pages: []models.MessagePage{{}}}
		c.views[msg.ConversationID] = view
	}
	if !view.contains(msg.ID) {
		view.insertFirstPage(msg)
	}
	c.mu.Unlock()

	c.notify(msg.ConversationID, Updated)
}

// Confirm swaps the pending entry tempID for the persisted message. When the
// persisted message already arrived through the duplex channel the pending
// entry is simply removed.
func (c *Messages) Confirm(conversationID, tempID string, msg models.Message) {
	msg.Pending = false

	c.mu.Lock()
	view, ok := c.views[conversationID]
	if !ok {
		c.mu.Unlock()
		return
	}

	view.remove(tempID)
	if !view.contains(msg.ID) {
		if !view.fitsFirstPage(msg) {
			c.invalidateLocked(conversationID)
			c.mu.Unlock()

			c.notify(conversationID, Invalidated)
			return
		}
		view.insertFirstPage(msg)
	}
	c.mu.Unlock()

	c.notify(conversationID, Updated)
}

// Fail removes the pending entry tempID and returns it so the caller can
// offer a retry.
func (c *Messages) Fail(conversationID, tempID string) (models.Message, bool) {
	c.mu.Lock()
	view, ok := c.views[conversationID]
	if !ok {
		c.mu.Unlock()
		return models.Message{}, false
	}
	msg, removed := view.remove(tempID)
	c.mu.Unlock()

	if removed {
		c.notify(conversationID, Updated)
	}
	return msg, removed
}

// Contains reports whether messageID is present in any cached page of
// conversationID.
func (c *Messages) Contains(conversationID, messageID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	view, ok := c.views[conversationID]
	return ok && view.contains(messageID)
}

// Has reports whether conversationID has a cached view.
func (c *Messages) Has(conversationID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.views[conversationID]
	return ok
}

// Invalidate drops every page of conversationID and marks it stale so the
// next reader refetches.
func (c *Messages) Invalidate(conversationID string) {
	c.mu.Lock()
	c.invalidateLocked(conversationID)
	c.mu.Unlock()

	c.notify(conversationID, Invalidated)
}

func (c *Messages) invalidateLocked(conversationID string) {
	delete(c.views, conversationID)
	c.stale[conversationID] = true
}

// Stale reports whether conversationID was invalidated and not yet reloaded.
func (c *Messages) Stale(conversationID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stale[conversationID]
}

// NextCursor returns the cursor of the page after the last cached one. The
// second value is false when there is no view or no older page.
func (c *Messages) NextCursor(conversationID string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	view, ok := c.views[conversationID]
	if !ok || len(view.pages) == 0 {
		return "", false
	}
	last := view.pages[len(view.pages)-1].Pagination
	return last.NextCursor, last.HasMore
}

// Flatten returns a copy of every cached message of conversationID, newest
// first.
func (c *Messages) Flatten(conversationID string) []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	view, ok := c.views[conversationID]
	if !ok {
		return nil
	}

	var out []models.Message
	for _, page := range view.pages {
		out = append(out, page.Data...)
	}
	return out
}

// Clear drops every view. Subscribers are kept.
func (c *Messages) Clear() {
	c.mu.Lock()
	clear(c.views)
	clear(c.stale)
	c.mu.Unlock()
}

// Subscribe returns a channel of updates and a function that cancels the
// subscription and closes the channel.
func (c *Messages) Subscribe() (<-chan Update, func()) {
	ch := make(chan Update, subscriberBuffer)

	c.subMu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = ch
	c.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.subMu.Lock()
			delete(c.subs, id)
			c.subMu.Unlock()
			close(ch)
		})
	}
}

func (c *Messages) notify(conversationID string, kind UpdateKind) {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	for _, ch := range c.subs {
		select {
		case ch <- Update{ConversationID: conversationID, Kind: kind}:
		default:
		}
	}
}

func (v *conversationView) contains(messageID string) bool {
	for _, page := range v.pages {
		for _, msg := range page.Data {
			if msg.ID == messageID {
				return true
			}
		}
	}
	return false
}

// fitsFirstPage reports whether msg can go into the first page without
// breaking the order against the older cached pages.
func (v *conversationView) fitsFirstPage(msg models.Message) bool {
	for _, page := range v.pages[min(1, len(v.pages)):] {
		if len(page.Data) > 0 {
			return !msg.CreatedAt.Before(page.Data[0].CreatedAt)
		}
	}
	return true
}

// removePending drops the pending entry with id clientID, if any.
func (v *conversationView) removePending(clientID string) {
	for p := range v.pages {
		data := v.pages[p].Data
		for i, msg := range data {
			if msg.ID == clientID && msg.Pending {
				v.pages[p].Data = slices.Delete(data, i, i+1)
				return
			}
		}
	}
}

// insertFirstPage places msg before the first strictly older message of the
// first page.
func (v *conversationView) insertFirstPage(msg models.Message) {
	if len(v.pages) == 0 {
		v.pages = []models.MessagePage{{}}
	}
	first := &v.pages[0]

	i := slices.IndexFunc(first.Data, func(m models.Message) bool {
		return m.CreatedAt.Before(msg.CreatedAt)
	})
	if i < 0 {
		i = len(first.Data)
	}
	first.Data = slices.Insert(first.Data, i, msg)
}

func (v *conversationView) remove(messageID string) (models.Message, bool) {
	for p := range v.pages {
		data := v.pages[p].Data
		for i, msg := range data {
			if msg.ID == messageID {
				v.pages[p].Data = slices.Delete(data, i, i+1)
				return msg, true
			}
		}
	}
	return models.Message{}, false
}

func clonePage(page models.MessagePage) models.MessagePage {
	page.Data = slices.Clone(page.Data)
	return page
}
