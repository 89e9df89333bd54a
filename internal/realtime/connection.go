// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package realtime owns the duplex channel of an authenticated session:
// delayed connect, bounded reconnection and delivery of decoded events to
// handlers.
package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-secure-chat/internal/adapter"
	"github.com/MKhiriev/go-secure-chat/internal/config"
	"github.com/MKhiriev/go-secure-chat/internal/logger"
	"github.com/MKhiriev/go-secure-chat/internal/metrics"
	"github.com/MKhiriev/go-secure-chat/models"
)

// Handler receives one decoded event. Handlers run on the read goroutine and
// must not block for long.
type Handler func(ctx context.Context, event models.RealtimeEvent)

// Credentials authenticate a dial.
type Credentials struct {
	UserID string
	Token  string
}

// Connection is the duplex channel lifecycle of one session. Connect and
// Disconnect may be called from any goroutine.
type Connection struct {
	url               string
	connectDelay      time.Duration
	reconnectAttempts int
	reconnectInterval time.Duration

	dialer  Dialer
	logger  *logger.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
	done    chan struct{}

	state atomic.Int32

	handlersMu    sync.RWMutex
	handlers      map[models.EventName][]Handler
	stateHandlers []func(State)
}

// NewConnection builds a Connection from cfg. dialer and m may be nil; a nil
// dialer uses gorilla/websocket.
func NewConnection(cfg config.ClientRealtime, socketURL string, dialer Dialer, log *logger.Logger, m *metrics.Metrics) *Connection {
	if dialer == nil {
		dialer = NewWebSocketDialer()
	}
	return &Connection{
		url:               socketURL,
		connectDelay:      cfg.ConnectDelay,
		reconnectAttempts: cfg.ReconnectAttempts,
		reconnectInterval: cfg.ReconnectInterval,
		dialer:            dialer,
		logger:            log,
		metrics:           m,
		handlers:          make(map[models.EventName][]Handler),
	}
}

// On subscribes handler to event.
func (c *Connection) On(event models.EventName, handler Handler) {
	c.handlersMu.Lock()
	defer c.handlersMu.Unlock()

	c.handlers[event] = append(c.handlers[event], handler)
}

// OnStateChange subscribes fn to state transitions.
func (c *Connection) OnStateChange(fn func(State)) {
	c.handlersMu.Lock()
	defer c.handlersMu.Unlock()

	c.stateHandlers = append(c.stateHandlers, fn)
}

// State returns the current lifecycle state.
func (c *Connection) State() State {
	return State(c.state.Load())
}

// Connect starts the connection in the background: it waits the connect
// delay, dials, and keeps reconnecting within the configured budget. A
// second call while running is a no-op; a call after the budget was spent
// starts over. Failures are never returned: once the budget is spent the
// connection goes offline silently.
func (c *Connection) Connect(ctx context.Context, creds Credentials) error {
	if c.url == "" {
		return ErrNoURL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		select {
		case <-c.done:
			c.cancel()
			c.wg.Wait()
		default:
			return nil
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.running = true
	c.done = make(chan struct{})
	c.setState(StateConnecting)

	c.wg.Add(1)
	go c.supervise(ctx, creds, c.done)

	c.logger.Info().
		Str("func", "Connection.Connect").
		Str("user_id", creds.UserID).
		Dur("connect_delay", c.connectDelay).
		Msg("realtime connection scheduled")

	return nil
}

// Disconnect stops the connection and waits for every goroutine to exit.
// It is safe to call more than once. It must not be called from a Handler.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}
	c.cancel()
	c.wg.Wait()

	c.running = false
	c.cancel = nil

	c.setState(StateOffline)
	c.logger.Info().Str("func", "Connection.Disconnect").Msg("realtime connection stopped")
}

func (c *Connection) supervise(ctx context.Context, creds Credentials, done chan struct{}) {
	defer c.wg.Done()
	defer close(done)
	defer c.setState(StateOffline)

	if !sleep(ctx, c.connectDelay) {
		return
	}

	header := adapter.SessionHeaders(creds.Token)
	failures := 0

	for {
		conn, err := c.dialer.Dial(ctx, c.url, header)
		if err == nil {
			failures = 0
			c.setState(StateOnline)
			c.logger.Info().Str("func", "Connection.supervise").Msg("realtime connected")

			c.serve(ctx, conn)
			if ctx.Err() != nil {
				return
			}
			c.logger.Info().Str("func", "Connection.supervise").Msg("realtime connection dropped")
		} else {
			if ctx.Err() != nil {
				return
			}
			c.logger.Debug().Err(err).Str("func", "Connection.supervise").Int("failures", failures).Msg("realtime dial failed")
		}

		if failures >= c.reconnectAttempts {
			c.logger.Warn().
				Str("func", "Connection.supervise").
				Int("attempts", failures).
				Msg("realtime reconnect budget exhausted, staying offline")
			return
		}

		failures++
		c.metrics.ReconnectAttempt()
		c.setState(StateConnecting)

		if !sleep(ctx, c.reconnectInterval) {
			return
		}
	}
}

// serve runs the read goroutine for conn and returns once it has exited.
func (c *Connection) serve(ctx context.Context, conn Conn) {
	done := make(chan struct{})

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer close(done)
		c.readLoop(ctx, conn)
	}()

	select {
	case <-ctx.Done():
		conn.Close()
		<-done
	case <-done:
		conn.Close()
	}
}

func (c *Connection) readLoop(ctx context.Context, conn Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				c.logger.Debug().Err(err).Str("func", "Connection.readLoop").Msg("read failed")
			}
			return
		}

		var event models.RealtimeEvent
		if err := json.Unmarshal(data, &event); err != nil {
			c.logger.Warn().Err(err).Str("func", "Connection.readLoop").Msg("malformed realtime frame")
			continue
		}

		c.metrics.RealtimeEvent(string(event.Event))
		c.dispatch(ctx, event)
	}
}

func (c *Connection) dispatch(ctx context.Context, event models.RealtimeEvent) {
	c.handlersMu.RLock()
	handlers := append([]Handler(nil), c.handlers[event.Event]...)
	c.handlersMu.RUnlock()

	for _, h := range handlers {
		c.safeCall(ctx, event, h)
	}
}

func (c *Connection) safeCall(ctx context.Context, event models.RealtimeEvent, h Handler) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().
				Str("func", "Connection.dispatch").
				Str("event", string(event.Event)).
				Interface("panic", r).
				Msg("realtime handler panicked")
		}
	}()
	h(ctx, event)
}

func (c *Connection) setState(s State) {
	if State(c.state.Swap(int32(s))) == s {
		return
	}
	c.metrics.ConnectionState(float64(s))

	c.handlersMu.RLock()
	fns := append([]func(State){}, c.stateHandlers...)
	c.handlersMu.RUnlock()

	for _, fn := range fns {
		fn(s)
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
