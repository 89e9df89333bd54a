package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secure-chat/internal/config"
	"github.com/MKhiriev/go-secure-chat/internal/logger"
	"github.com/MKhiriev/go-secure-chat/models"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

var errDialRefused = errors.New("connection refused")

type fakeConn struct {
	frames    chan []byte
	closed    chan struct{}
	closeOnce sync.Once
}

func newFakeConn(frames ...string) *fakeConn {
	c := &fakeConn{frames: make(chan []byte, len(frames)), closed: make(chan struct{})}
	for _, f := range frames {
		c.frames <- []byte(f)
	}
	close(c.frames)
	return c
}

// ReadMessage returns queued frames and then reports a dropped connection.
func (c *fakeConn) ReadMessage() (int, []byte, error) {
	select {
	case f, ok := <-c.frames:
		if ok {
			return websocket.TextMessage, f, nil
		}
		return 0, nil, errors.New("connection reset by peer")
	case <-c.closed:
		return 0, nil, errors.New("use of closed connection")
	}
}

func (c *fakeConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

// scriptedDialer answers each dial from script; once the script is spent it
// refuses every dial.
type scriptedDialer struct {
	mu     sync.Mutex
	script []func() (Conn, error)
	dials  []time.Time
	header http.Header
}

func (d *scriptedDialer) Dial(_ context.Context, _ string, header http.Header) (Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.dials = append(d.dials, time.Now())
	d.header = header
	if len(d.script) == 0 {
		return nil, errDialRefused
	}
	next := d.script[0]
	d.script = d.script[1:]
	return next()
}

func (d *scriptedDialer) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.dials)
}

func (d *scriptedDialer) times() []time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]time.Time(nil), d.dials...)
}

func refuse() (Conn, error) { return nil, errDialRefused }

func testRealtimeConfig() config.ClientRealtime {
	return config.ClientRealtime{
		ConnectDelay:      5 * time.Millisecond,
		ReconnectAttempts: 5,
		ReconnectInterval: 20 * time.Millisecond,
	}
}

func newTestConnection(d Dialer) *Connection {
	return NewConnection(testRealtimeConfig(), "ws://chat.invalid/ws", d, logger.Nop(), nil)
}

// ── reconnect budget ──────────────────────────────────────────────────────────

func TestConnection_StopsAfterFiveFailedReconnects(t *testing.T) {
	d := &scriptedDialer{}
	c := newTestConnection(d)

	require.NoError(t, c.Connect(context.Background(), Credentials{UserID: "u1", Token: "tok"}))

	// one initial dial plus five reconnect attempts
	require.Eventually(t, func() bool {
		return d.count() == 6 && c.State() == StateOffline
	}, 2*time.Second, 5*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 6, d.count(), "no attempts after the budget is spent")

	times := d.times()
	for i := 1; i < len(times); i++ {
		assert.GreaterOrEqual(t, times[i].Sub(times[i-1]), testRealtimeConfig().ReconnectInterval)
	}

	assert.NotPanics(t, c.Disconnect)
	assert.NotPanics(t, c.Disconnect)
}

func TestConnection_SuccessResetsBudget(t *testing.T) {
	d := &scriptedDialer{script: []func() (Conn, error){
		refuse,
		refuse,
		func() (Conn, error) { return newFakeConn(), nil }, // connects, then drops
	}}
	c := newTestConnection(d)

	require.NoError(t, c.Connect(context.Background(), Credentials{Token: "tok"}))

	// 2 failures + 1 success, then a fresh budget of 5 after the drop
	require.Eventually(t, func() bool {
		return d.count() == 8 && c.State() == StateOffline
	}, 3*time.Second, 5*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 8, d.count())
	c.Disconnect()
}

func TestConnection_ConnectAfterExhaustionStartsOver(t *testing.T) {
	d := &scriptedDialer{}
	cfg := testRealtimeConfig()
	cfg.ReconnectAttempts = 1
	c := NewConnection(cfg, "ws://chat.invalid/ws", d, logger.Nop(), nil)

	require.NoError(t, c.Connect(context.Background(), Credentials{}))
	require.Eventually(t, func() bool { return d.count() == 2 && c.State() == StateOffline }, time.Second, 5*time.Millisecond)

	require.NoError(t, c.Connect(context.Background(), Credentials{}))
	require.Eventually(t, func() bool { return d.count() == 4 }, time.Second, 5*time.Millisecond)
	c.Disconnect()
}

// ── lifecycle ─────────────────────────────────────────────────────────────────

func TestConnection_ConnectIsIdempotentWhileRunning(t *testing.T) {
	d := &scriptedDialer{script: []func() (Conn, error){
		func() (Conn, error) {
			c := &fakeConn{frames: make(chan []byte), closed: make(chan struct{})}
			return c, nil
		},
	}}
	c := newTestConnection(d)

	require.NoError(t, c.Connect(context.Background(), Credentials{}))
	require.NoError(t, c.Connect(context.Background(), Credentials{}))

	require.Eventually(t, func() bool { return c.State() == StateOnline }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, d.count())

	c.Disconnect()
	assert.Equal(t, StateOffline, c.State())
}

func TestConnection_DisconnectDuringDelay(t *testing.T) {
	d := &scriptedDialer{}
	cfg := testRealtimeConfig()
	cfg.ConnectDelay = time.Hour
	c := NewConnection(cfg, "ws://chat.invalid/ws", d, logger.Nop(), nil)

	require.NoError(t, c.Connect(context.Background(), Credentials{}))
	c.Disconnect()

	assert.Equal(t, 0, d.count())
	assert.Equal(t, StateOffline, c.State())
}

func TestConnection_NoURL(t *testing.T) {
	c := NewConnection(testRealtimeConfig(), "", &scriptedDialer{}, logger.Nop(), nil)
	assert.ErrorIs(t, c.Connect(context.Background(), Credentials{}), ErrNoURL)
}

func TestConnection_SendsSessionHeaders(t *testing.T) {
	d := &scriptedDialer{}
	cfg := testRealtimeConfig()
	cfg.ReconnectAttempts = 0
	c := NewConnection(cfg, "ws://chat.invalid/ws", d, logger.Nop(), nil)

	require.NoError(t, c.Connect(context.Background(), Credentials{Token: "tok"}))
	require.Eventually(t, func() bool { return d.count() == 1 }, time.Second, 5*time.Millisecond)
	c.Disconnect()

	d.mu.Lock()
	defer d.mu.Unlock()
	assert.Equal(t, "Bearer tok", d.header.Get("Authorization"))
	assert.Contains(t, d.header.Get("Cookie"), "session=tok")
}

// ── dispatch ──────────────────────────────────────────────────────────────────

func TestConnection_DispatchSkipsMalformedAndSurvivesPanics(t *testing.T) {
	d := &scriptedDialer{script: []func() (Conn, error){
		func() (Conn, error) {
			return newFakeConn(
				`not json`,
				`{"event":"new_notification","data":{}}`,
				`{"event":"new_message","data":{"id":"m1"}}`,
			), nil
		},
	}}
	cfg := testRealtimeConfig()
	cfg.ReconnectAttempts = 0
	c := NewConnection(cfg, "ws://chat.invalid/ws", d, logger.Nop(), nil)

	var (
		mu  sync.Mutex
		got []string
	)
	c.On(models.EventNewNotification, func(context.Context, models.RealtimeEvent) {
		panic("handler bug")
	})
	c.On(models.EventNewMessage, func(_ context.Context, ev models.RealtimeEvent) {
		var msg models.Message
		require.NoError(t, json.Unmarshal(ev.Data, &msg))
		mu.Lock()
		got = append(got, msg.ID)
		mu.Unlock()
	})

	require.NoError(t, c.Connect(context.Background(), Credentials{}))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, time.Second, 5*time.Millisecond)
	c.Disconnect()

	assert.Equal(t, []string{"m1"}, got)
}

func TestConnection_StateChanges(t *testing.T) {
	d := &scriptedDialer{}
	cfg := testRealtimeConfig()
	cfg.ReconnectAttempts = 0
	c := NewConnection(cfg, "ws://chat.invalid/ws", d, logger.Nop(), nil)

	states := make(chan State, 8)
	c.OnStateChange(func(s State) { states <- s })

	require.NoError(t, c.Connect(context.Background(), Credentials{}))
	assert.Equal(t, StateConnecting, <-states)
	assert.Equal(t, StateOffline, <-states)
	c.Disconnect()
}

// ── gorilla/websocket end to end ──────────────────────────────────────────────

func TestConnection_WebSocketServer(t *testing.T) {
	upgrader := websocket.Upgrader{}
	release := make(chan struct{})

	r := chi.NewRouter()
	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		cookie, err := r.Cookie("session")
		if assert.NoError(t, err) {
			assert.Equal(t, "tok", cookie.Value)
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if !assert.NoError(t, err) {
			return
		}
		defer conn.Close()

		_ = conn.WriteJSON(models.RealtimeEvent{
			Event: models.EventMessageRead,
			Data:  json.RawMessage(`{"conversationId":"conv-1","readerId":"bob"}`),
		})
		<-release
	})
	srv := httptest.NewServer(r)
	defer srv.Close()
	defer close(release)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	c := NewConnection(testRealtimeConfig(), url, nil, logger.Nop(), nil)

	events := make(chan models.MessageReadEvent, 1)
	c.On(models.EventMessageRead, func(_ context.Context, ev models.RealtimeEvent) {
		var payload models.MessageReadEvent
		_ = json.Unmarshal(ev.Data, &payload)
		events <- payload
	})

	require.NoError(t, c.Connect(context.Background(), Credentials{UserID: "alice", Token: "tok"}))

	select {
	case ev := <-events:
		assert.Equal(t, "conv-1", ev.ConversationID)
		assert.Equal(t, "bob", ev.ReaderID)
	case <-time.After(2 * time.Second):
		t.Fatal("no message_read event received")
	}
	assert.Equal(t, StateOnline, c.State())

	c.Disconnect()
	assert.Equal(t, StateOffline, c.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "offline", StateOffline.String())
	assert.Equal(t, "connecting", StateConnecting.String())
	assert.Equal(t, "online", StateOnline.String())
	assert.Equal(t, "unknown", State(9).String())
}
