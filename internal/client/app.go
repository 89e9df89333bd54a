package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-chat/internal/adapter"
	"github.com/MKhiriev/go-secure-chat/internal/config"
	"github.com/MKhiriev/go-secure-chat/internal/logger"
	"github.com/MKhiriev/go-secure-chat/internal/metrics"
	"github.com/MKhiriev/go-secure-chat/internal/realtime"
	"github.com/MKhiriev/go-secure-chat/internal/session"
	"github.com/MKhiriev/go-secure-chat/internal/store"
	"github.com/MKhiriev/go-secure-chat/internal/tui"
	"github.com/MKhiriev/go-secure-chat/models"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	session  *session.Session
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp opens the device key cache and wires the session and the terminal
// UI over it.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	logger.Info().Str("func", "NewApp").Stringer("build", buildInfo).Msg("starting client")

	m := metrics.New(prometheus.NewRegistry())
	sess := session.New(cfg, serverAdapter, storages.DeviceKeys, realtime.NewWebSocketDialer(), m, logger)

	return &App{
		cfg:      cfg,
		storages: storages,
		session:  sess,
		ui:       tui.New(sess, buildInfo, logger),
		logger:   logger,
	}, nil
}

// Run starts the session and shows the chat until the user leaves. Signing
// out forgets the device keys; quitting keeps them.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := a.storages.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close storages: %w", closeErr))
		}
	}()

	state, err := a.session.Start(ctx, a.cfg.Adapter.SessionToken)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	logout, err := a.ui.Run(ctx, state)
	if err != nil {
		a.session.Close()
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}

	if logout {
		a.logger.Info().Str("func", "App.Run").Msg("signing out")
		return a.session.Logout(ctx)
	}

	a.session.Close()
	return nil
}
