// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session scopes everything that belongs to one signed-in user: the
// services, the in-memory caches, the duplex channel and the background
// workers. Start and Close are the only operations that change the scope.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-secure-chat/internal/adapter"
	"github.com/MKhiriev/go-secure-chat/internal/cache"
	"github.com/MKhiriev/go-secure-chat/internal/config"
	"github.com/MKhiriev/go-secure-chat/internal/logger"
	"github.com/MKhiriev/go-secure-chat/internal/media"
	"github.com/MKhiriev/go-secure-chat/internal/metrics"
	"github.com/MKhiriev/go-secure-chat/internal/realtime"
	"github.com/MKhiriev/go-secure-chat/internal/service"
	"github.com/MKhiriev/go-secure-chat/internal/store"
	"github.com/MKhiriev/go-secure-chat/internal/utils"
	"github.com/MKhiriev/go-secure-chat/internal/workers"
	"github.com/MKhiriev/go-secure-chat/models"
)

const notificationBuffer = 32

// Session is the scope of one signed-in user. The zero value is not usable;
// use [New].
type Session struct {
	cfg     *config.ClientConfig
	adapter adapter.ServerAdapter
	keys    store.DeviceKeyCache
	dialer  realtime.Dialer
	metrics *metrics.Metrics
	logger  *logger.Logger

	mu       sync.Mutex
	user     models.CurrentUser
	services *service.ClientServices
	caches   service.Caches
	conn     *realtime.Connection
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	notifications chan json.RawMessage
}

// New returns a session that is not started. dialer and m may be nil.
func New(cfg *config.ClientConfig, serverAdapter adapter.ServerAdapter, keys store.DeviceKeyCache, dialer realtime.Dialer, m *metrics.Metrics, logger *logger.Logger) *Session {
	return &Session{
		cfg:           cfg,
		adapter:       serverAdapter,
		keys:          keys,
		dialer:        dialer,
		metrics:       m,
		logger:        logger,
		notifications: make(chan json.RawMessage, notificationBuffer),
	}
}

// Start signs in with token: it loads the profile, checks the unlock gate,
// schedules the duplex channel and starts the background workers. The
// returned state tells the caller whether a PIN is needed.
func (s *Session) Start(ctx context.Context, token string) (service.UnlockState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.services != nil {
		return service.UnlockChecking, ErrAlreadyStarted
	}
	if token == "" {
		return service.UnlockChecking, ErrNoToken
	}

	s.adapter.SetToken(token)
	user, err := s.adapter.Me(ctx)
	if err != nil {
		s.adapter.SetToken("")
		return service.UnlockChecking, fmt.Errorf("load profile: %w", err)
	}

	if subject, err := utils.ParseUserIDFromJWT(token); err == nil && subject != user.ID {
		s.adapter.SetToken("")
		return service.UnlockChecking, ErrTokenMismatch
	}

	caches := service.Caches{
		Messages: cache.NewMessages(),
		Windows:  cache.NewWindows(cache.DefaultMaxWindows),
		Media:    media.NewRegistry(s.metrics),
	}
	services := service.NewClientServices(user.ID, s.cfg, s.keys, s.adapter, caches, s.metrics, s.logger)

	state, err := services.Unlock.Check(ctx, user)
	if err != nil {
		s.adapter.SetToken("")
		return service.UnlockChecking, fmt.Errorf("check unlock state: %w", err)
	}

	runCtx := utils.WithUserID(s.logger.WithContext(context.WithoutCancel(ctx)), user.ID)
	runCtx, cancel := context.WithCancel(runCtx)

	conn := realtime.NewConnection(s.cfg.Realtime, s.cfg.Adapter.SocketURL, s.dialer, s.logger, s.metrics)
	conn.On(models.EventNewMessage, services.Reconciler.HandleNewMessage)
	conn.On(models.EventMessageRead, services.Reconciler.HandleMessageRead)
	conn.On(models.EventNewNotification, services.Reconciler.HandleNotification)

	err = conn.Connect(runCtx, realtime.Credentials{UserID: user.ID, Token: token})
	if err != nil && !errors.Is(err, realtime.ErrNoURL) {
		cancel()
		s.adapter.SetToken("")
		return service.UnlockChecking, fmt.Errorf("connect realtime: %w", err)
	}
	if errors.Is(err, realtime.ErrNoURL) {
		s.logger.Warn().Str("func", "Session.Start").Msg("no socket url configured, running without realtime updates")
	}

	background := workers.New(
		workers.NewViewRefresher(caches.Messages, caches.Windows, services.Chat, s.logger),
		workers.NewNotificationForwarder(services.Reconciler.Notifications(), s.forward),
	)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		background.Run(runCtx)
	}()

	s.user = user
	s.services = services
	s.caches = caches
	s.conn = conn
	s.cancel = cancel

	s.logger.Info().
		Str("func", "Session.Start").
		Str("user_id", user.ID).
		Str("unlock_state", state.String()).
		Msg("session started")

	return state, nil
}

// Close stops the duplex channel and the workers and drops every cached
// message and media object. Device keys are kept. It is safe to call on a
// session that is not started.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.services == nil {
		return
	}

	s.conn.Disconnect()
	s.cancel()
	s.wg.Wait()

	s.caches.Media.RevokeAll()
	s.caches.Messages.Clear()
	s.caches.Windows.Reset()
	s.adapter.SetToken("")

	s.logger.Info().Str("func", "Session.Close").Str("user_id", s.user.ID).Msg("session closed")

	s.services = nil
	s.conn = nil
	s.cancel = nil
	s.user = models.CurrentUser{}
}

// Logout forgets the device keys and closes the session.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	services := s.services
	s.mu.Unlock()

	if services == nil {
		return ErrNotStarted
	}
	if err := services.Unlock.Lock(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.Close()
	return nil
}

// Services returns the services of the signed-in user, or nil.
func (s *Session) Services() *service.ClientServices {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.services
}

// Caches returns the caches of the signed-in user.
func (s *Session) Caches() service.Caches {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.caches
}

// User returns the profile the session was started with.
func (s *Session) User() models.CurrentUser {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.user
}

// ConnectionState reports the duplex channel state.
func (s *Session) ConnectionState() realtime.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return realtime.StateOffline
	}
	return s.conn.State()
}

// Notifications delivers new_notification payloads of every session. The
// channel outlives Close.
func (s *Session) Notifications() <-chan json.RawMessage {
	return s.notifications
}

func (s *Session) forward(payload json.RawMessage) {
	select {
	case s.notifications <- payload:
	default:
	}
}
