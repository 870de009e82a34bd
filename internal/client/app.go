// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"

	"github.com/joms1025/company-management-app/internal/adapter"
	"github.com/joms1025/company-management-app/internal/config"
	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/internal/session"
	"github.com/joms1025/company-management-app/internal/store"
	"github.com/joms1025/company-management-app/internal/tui"
	"github.com/joms1025/company-management-app/internal/workers"
	"github.com/joms1025/company-management-app/models"
)

// App assembles the terminal client: the backend adapter, the session
// reconciler, the local cache, the background jobs and the TUI. Run wires
// them together and blocks until the user quits.
type App struct {
	backend    adapter.BackendClient
	reconciler *session.Reconciler
	storages   *store.ClientStorages
	ui         *tui.TUI
	jobs       *workers.Workers
	log        *logger.Logger

	unsubscribePersist func()
}

func NewApp(backend adapter.BackendClient, reconciler *session.Reconciler, storages *store.ClientStorages, ui *tui.TUI, cfg config.Workers, log *logger.Logger) (*App, error) {
	if backend == nil || reconciler == nil || storages == nil || ui == nil {
		return nil, errors.New("client app: missing dependency")
	}

	poller := workers.NewChatPoller(backend, storages.Messages, func() *models.User {
		return reconciler.State().User
	}, cfg.ChatPollInterval, log)
	refresher := workers.NewSessionRefresher(backend, storages.Sessions, cfg.SessionRefreshLeeway, log)

	return &App{
		backend:    backend,
		reconciler: reconciler,
		storages:   storages,
		ui:         ui,
		jobs:       workers.NewWorkers(poller, refresher),
		log:        log,
	}, nil
}

// Run restores the persisted session, starts the background jobs and hands
// control to the TUI. A deliberate quit is not an error.
func (a *App) Run() error {
	ctx := context.Background()

	// Persist session changes as the adapter reports them, so the next
	// cold start resumes where this one left off. Registered before the
	// restore so the initial event is also observed.
	a.unsubscribePersist = a.backend.Subscribe(a.persistSession(ctx))

	a.restoreSession(ctx)

	a.jobs.Run()
	defer a.teardown()
	defer a.jobs.Stop()

	if err := a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.log.Info().Str("func", "*App.Run").Msg("client closed by user")
			return nil
		}
		return err
	}
	return nil
}

// restoreSession seeds the adapter with whatever the cache holds. A missing
// or unreadable cached session degrades to a signed-out start.
func (a *App) restoreSession(ctx context.Context) {
	cached, err := a.storages.Sessions.LoadSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			a.log.Warn().Err(err).Str("func", "*App.restoreSession").Msg("reading cached session failed")
		}
		a.backend.RestoreSession(nil)
		return
	}
	a.backend.RestoreSession(&cached)
}

func (a *App) persistSession(ctx context.Context) func(adapter.AuthEvent) {
	return func(event adapter.AuthEvent) {
		switch event.Kind {
		case adapter.EventSignedIn, adapter.EventTokenRefreshed:
			if event.Session == nil {
				return
			}
			if err := a.storages.Sessions.SaveSession(ctx, *event.Session); err != nil {
				a.log.Warn().Err(err).Str("func", "*App.persistSession").Msg("persisting session failed")
			}
		case adapter.EventSignedOut:
			if err := a.storages.Sessions.ClearSession(ctx); err != nil {
				a.log.Warn().Err(err).Str("func", "*App.persistSession").Msg("clearing cached session failed")
			}
		}
	}
}

func (a *App) teardown() {
	if a.unsubscribePersist != nil {
		a.unsubscribePersist()
	}
	a.reconciler.Close()
	if err := a.storages.Close(); err != nil {
		a.log.Warn().Err(err).Str("func", "*App.teardown").Msg("closing local cache failed")
	}
}
