// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the mapping from a remote authentication session to a
// locally usable user. The Reconciler listens to the backend's session
// lifecycle events, hydrates the matching profile row, and publishes a
// consistent {user, loading, fatal error} triple to subscribers.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/joms1025/company-management-app/internal/adapter"
	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/models"
)

// State is the reconciler's published view. User is nil when nobody is
// signed in or the last derivation failed. FatalError is non-empty only for
// the unrecoverable missing-schema condition; while it is set User is
// guaranteed nil.
type State struct {
	User       *models.User
	Loading    bool
	FatalError string
}

// Reconciler maintains the session-to-user mapping. It is the single writer
// of its State; everything else only reads snapshots. Construct with
// NewReconciler and release with Close.
type Reconciler struct {
	backend adapter.BackendClient
	logger  *logger.Logger

	mu    sync.Mutex
	state State

	// subject identifies the session the in-flight profile lookup was
	// issued for. A lookup whose subject no longer matches at completion
	// time is stale and its result is discarded.
	subject string

	subscribers map[int]chan State
	nextSubID   int
	closed      bool

	unsubscribe func()
}

// NewReconciler builds a Reconciler and subscribes it to the backend's
// lifecycle event stream. The subscription stays alive until Close.
func NewReconciler(backend adapter.BackendClient, log *logger.Logger) *Reconciler {
	r := &Reconciler{
		backend:     backend,
		logger:      log,
		subscribers: make(map[int]chan State),
	}
	r.unsubscribe = backend.Subscribe(r.handleEvent)
	return r
}

// State returns a snapshot of the current triple.
func (r *Reconciler) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Subscribe registers a state listener. The channel holds the latest
// snapshot only: an unread value is replaced when a newer one is published.
// The returned func removes the subscription and closes the channel.
func (r *Reconciler) Subscribe() (<-chan State, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextSubID
	r.nextSubID++
	ch := make(chan State, 1)
	r.subscribers[id] = ch

	return ch, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if sub, ok := r.subscribers[id]; ok {
			delete(r.subscribers, id)
			close(sub)
		}
	}
}

// Close tears the reconciler down: the backend subscription is removed and
// all subscriber channels are closed. The reconciler must not be used after
// Close.
func (r *Reconciler) Close() {
	if r.unsubscribe != nil {
		r.unsubscribe()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	for id, ch := range r.subscribers {
		delete(r.subscribers, id)
		close(ch)
	}
}

// handleEvent is the single entry point for lifecycle events. The backend
// dispatches events strictly one at a time, so handlers never overlap.
//
// Every event sets loading for its duration; the deferred clear runs even
// when the profile lookup panics. A password-recovery event is informational
// and must leave the current user untouched. Unknown kinds clear loading and
// do nothing else.
func (r *Reconciler) handleEvent(event adapter.AuthEvent) {
	r.logger.Debug().
		Str("func", "*Reconciler.handleEvent").
		Str("kind", string(event.Kind)).
		Bool("has_session", event.Session != nil).
		Msg("lifecycle event received")

	r.setLoading(true)
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error().
				Str("func", "*Reconciler.handleEvent").
				Interface("panic", rec).
				Msg("event handler recovered")
		}
		r.setLoading(false)
	}()

	subject := r.recordSession(event.Session)

	switch event.Kind {
	case adapter.EventPasswordRecovery:
		return
	case adapter.EventInitial, adapter.EventSignedIn, adapter.EventSignedOut,
		adapter.EventUserUpdated, adapter.EventTokenRefreshed:
	default:
		return
	}

	if r.State().FatalError != "" {
		r.clearUser()
		return
	}

	if subject == "" {
		r.clearUser()
		return
	}

	user, fatal := r.deriveUser(context.Background(), event.Session)
	if fatal != "" {
		r.setFatal(fatal)
		return
	}
	r.replaceUser(subject, user)
}

// deriveUser resolves a session to a user in one of three modes: hydrated
// from the profile row, synthesised from the session email when the row is
// absent, or nil. A non-empty second return reports the missing-schema
// condition. Lookup errors and panics degrade to a nil user; the event
// subscription must survive them.
func (r *Reconciler) deriveUser(ctx context.Context, session *models.Session) (user *models.User, fatal string) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error().
				Str("func", "*Reconciler.deriveUser").
				Interface("panic", rec).
				Msg("profile lookup recovered")
			user, fatal = nil, ""
		}
	}()

	profile, err := r.backend.FindProfileByID(ctx, session.Subject)
	switch {
	case err == nil:
		email := session.Email
		if email == "" {
			email = profile.Email
		}
		return &models.User{
			ID:         session.Subject,
			Name:       profile.Name,
			Email:      email,
			Role:       profile.Role,
			Department: profile.Department,
		}, ""

	case errors.Is(err, adapter.ErrSchemaMissing):
		return nil, MsgSchemaMissing

	case errors.Is(err, adapter.ErrProfileNotFound):
		if session.Email == "" {
			return nil, ""
		}
		return &models.User{
			ID:         session.Subject,
			Name:       emailLocalPart(session.Email),
			Email:      session.Email,
			Role:       models.RoleUser,
			Department: models.DefaultDepartment,
		}, ""

	default:
		r.logger.Warn().
			Str("func", "*Reconciler.deriveUser").
			Err(err).
			Msg("profile lookup failed")
		return nil, ""
	}
}

// recordSession notes which session the next lookup belongs to and returns
// its subject ("" when signed out).
func (r *Reconciler) recordSession(session *models.Session) string {
	subject := ""
	if session != nil {
		subject = session.Subject
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.subject = subject
	return subject
}

// clearUser unconditionally drops the current user. Unlike [replaceUser] it
// bypasses the stale-lookup guard, so it works regardless of which session
// is current.
func (r *Reconciler) clearUser() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.User = nil
	r.publishLocked()
}

// replaceUser installs user as the current one, unless forSubject identifies
// a session that is no longer the latest (a stale lookup result).
func (r *Reconciler) replaceUser(forSubject string, user *models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if forSubject != r.subject {
		r.logger.Debug().
			Str("func", "*Reconciler.replaceUser").
			Str("lookup_subject", forSubject).
			Str("current_subject", r.subject).
			Msg("discarding stale profile lookup")
		return
	}

	r.state.User = user
	r.publishLocked()
}

func (r *Reconciler) setLoading(loading bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Loading = loading
	r.publishLocked()
}

// setFatal enters the fatal missing-schema state: the user is forced nil
// and stays nil until the next login or registration attempt clears the
// flag.
func (r *Reconciler) setFatal(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.FatalError = message
	r.state.User = nil
	r.publishLocked()
}

func (r *Reconciler) clearFatal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.FatalError = ""
	r.publishLocked()
}

func (r *Reconciler) snapshotLocked() State {
	snapshot := r.state
	if r.state.User != nil {
		user := *r.state.User
		snapshot.User = &user
	}
	return snapshot
}

// publishLocked pushes the latest snapshot to every subscriber. Channels
// hold one value; an unread older snapshot is dropped in favour of the new
// one so a slow reader only ever misses intermediate states.
func (r *Reconciler) publishLocked() {
	if r.closed {
		return
	}

	snapshot := r.snapshotLocked()
	for _, ch := range r.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- snapshot
	}
}
