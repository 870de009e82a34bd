// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/joms1025/company-management-app/internal/adapter"
	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/internal/store"
)

// SessionRefresher rotates the session before the access token expires. A
// successful rotation surfaces as a token-refreshed lifecycle event from the
// backend client; the refreshed session is also persisted for the next cold
// start.
type SessionRefresher struct {
	backend  adapter.BackendClient
	sessions store.SessionCache

	// leeway is how long before expiry the rotation is attempted.
	leeway   time.Duration
	interval time.Duration
	logger   *logger.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewSessionRefresher(backend adapter.BackendClient, sessions store.SessionCache, leeway time.Duration, log *logger.Logger) *SessionRefresher {
	interval := leeway / 4
	if interval < time.Second {
		interval = time.Second
	}

	return &SessionRefresher{
		backend:  backend,
		sessions: sessions,
		leeway:   leeway,
		interval: interval,
		logger:   log,
	}
}

// Run implements [Worker].
func (s *SessionRefresher) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.refreshOnce(ctx)
			}
		}
	}()
}

// Stop implements [Worker].
func (s *SessionRefresher) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *SessionRefresher) refreshOnce(ctx context.Context) {
	session := s.backend.CurrentSession()
	if session == nil {
		return
	}
	if time.Until(session.ExpiresAt) > s.leeway {
		return
	}

	resp, err := s.backend.RefreshSession(ctx)
	if err != nil {
		s.logger.Warn().
			Str("func", "*SessionRefresher.refreshOnce").
			Err(err).
			Msg("session refresh failed")
		return
	}

	if err = s.sessions.SaveSession(ctx, *resp.Session); err != nil {
		s.logger.Warn().
			Str("func", "*SessionRefresher.refreshOnce").
			Err(err).
			Msg("persisting refreshed session failed")
	}

	s.logger.Debug().
		Str("func", "*SessionRefresher.refreshOnce").
		Time("expires_at", resp.Session.ExpiresAt).
		Msg("session rotated")
}
