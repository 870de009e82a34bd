// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/joms1025/company-management-app/internal/adapter"
	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/internal/store"
	"github.com/joms1025/company-management-app/models"
)

// UserProvider reports the currently signed-in user, or nil. The poller uses
// it to decide which department chat to keep fresh.
type UserProvider func() *models.User

// ChatPoller periodically pulls new department messages from the backend
// into the local cache, giving the chat screen realtime-ish updates and an
// offline history. It polls only while somebody is signed in.
type ChatPoller struct {
	backend  adapter.BackendClient
	cache    store.MessageCache
	current  UserProvider
	interval time.Duration
	logger   *logger.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewChatPoller(backend adapter.BackendClient, cache store.MessageCache, current UserProvider, interval time.Duration, log *logger.Logger) *ChatPoller {
	return &ChatPoller{
		backend:  backend,
		cache:    cache,
		current:  current,
		interval: interval,
		logger:   log,
	}
}

// Run implements [Worker].
func (p *ChatPoller) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.pollOnce(ctx)
			}
		}
	}()
}

// Stop implements [Worker].
func (p *ChatPoller) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
}

// pollOnce fetches messages newer than the latest cached timestamp for the
// signed-in user's department. Failures are logged and retried on the next
// tick; the poller never gives up.
func (p *ChatPoller) pollOnce(ctx context.Context) {
	user := p.current()
	if user == nil {
		return
	}
	department := user.Department

	latest, err := p.cache.LatestTimestamp(ctx, department)
	if err != nil {
		p.logger.Warn().
			Str("func", "*ChatPoller.pollOnce").
			Err(err).
			Msg("reading poll cursor failed")
		return
	}

	after := ""
	if !latest.IsZero() {
		after = latest.Format(time.RFC3339)
	}

	messages, err := p.backend.ListMessages(ctx, department, after, 0)
	if err != nil {
		p.logger.Warn().
			Str("func", "*ChatPoller.pollOnce").
			Str("department", string(department)).
			Err(err).
			Msg("message poll failed")
		return
	}
	if len(messages) == 0 {
		return
	}

	if err = p.cache.SaveMessages(ctx, messages...); err != nil {
		p.logger.Warn().
			Str("func", "*ChatPoller.pollOnce").
			Err(err).
			Msg("caching polled messages failed")
		return
	}

	p.logger.Debug().
		Str("func", "*ChatPoller.pollOnce").
		Str("department", string(department)).
		Int("count", len(messages)).
		Msg("cached new messages")
}
