package adapter

import (
	"sync"

	"github.com/joms1025/company-management-app/models"
)

// EventKind names a session lifecycle transition reported by the auth
// backend.
type EventKind string

const (
	// EventInitial is emitted once at startup with whatever session (if
	// any) could be restored from the local cache.
	EventInitial EventKind = "INITIAL_SESSION"

	// EventSignedIn is emitted after a successful sign-in or a sign-up
	// that produced an immediate session.
	EventSignedIn EventKind = "SIGNED_IN"

	// EventSignedOut is emitted after sign-out. The event carries no
	// session.
	EventSignedOut EventKind = "SIGNED_OUT"

	// EventUserUpdated is emitted when the identity's attributes changed
	// server-side and holders should re-derive their view of the user.
	EventUserUpdated EventKind = "USER_UPDATED"

	// EventTokenRefreshed is emitted when the access token was exchanged.
	// The session is replaced wholesale; the subject stays the same.
	EventTokenRefreshed EventKind = "TOKEN_REFRESHED"

	// EventPasswordRecovery is emitted when the identity entered the
	// password-recovery flow. Informational only.
	EventPasswordRecovery EventKind = "PASSWORD_RECOVERY"
)

// AuthEvent is a single session lifecycle notification. Session is nil for
// kinds that carry no session (signed-out).
type AuthEvent struct {
	Kind    EventKind
	Session *models.Session
}

// subscriber pairs a handler with its registration id so removal keeps the
// delivery order of the remaining handlers stable.
type subscriber struct {
	id      int
	handler func(AuthEvent)
}

// eventBroker fans lifecycle events out to subscribers.
//
// Dispatch is strictly sequential: emit delivers the event to every
// subscriber and returns before the next emit proceeds, so a subscriber
// never observes two events of the same stream interleaved.
type eventBroker struct {
	emitMu sync.Mutex // held for the duration of an emit

	mu          sync.Mutex // guards subscribers and nextID
	subscribers []subscriber
	nextID      int
}

func newEventBroker() *eventBroker {
	return &eventBroker{}
}

// Subscribe registers handler and returns its removal func. The handler is
// invoked synchronously from emit, one event at a time, in registration
// order.
func (b *eventBroker) Subscribe(handler func(AuthEvent)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subscribers = append(b.subscribers, subscriber{id: id, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, sub := range b.subscribers {
			if sub.id == id {
				b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
				return
			}
		}
	}
}

// emit delivers event to every subscriber in turn. Concurrent emits are
// serialized; the second caller blocks until the first dispatch finished.
func (b *eventBroker) emit(event AuthEvent) {
	b.emitMu.Lock()
	defer b.emitMu.Unlock()

	b.mu.Lock()
	handlers := make([]func(AuthEvent), len(b.subscribers))
	for i, sub := range b.subscribers {
		handlers[i] = sub.handler
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}
