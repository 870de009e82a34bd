package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBroker_DispatchOrder(t *testing.T) {
	broker := newEventBroker()

	var order []string
	broker.Subscribe(func(e AuthEvent) { order = append(order, "first:"+string(e.Kind)) })
	broker.Subscribe(func(e AuthEvent) { order = append(order, "second:"+string(e.Kind)) })

	broker.emit(AuthEvent{Kind: EventSignedIn})
	broker.emit(AuthEvent{Kind: EventSignedOut})

	assert.Equal(t, []string{
		"first:SIGNED_IN", "second:SIGNED_IN",
		"first:SIGNED_OUT", "second:SIGNED_OUT",
	}, order)
}

func TestEventBroker_Unsubscribe(t *testing.T) {
	broker := newEventBroker()

	var got int
	unsubscribe := broker.Subscribe(func(AuthEvent) { got++ })

	broker.emit(AuthEvent{Kind: EventSignedIn})
	unsubscribe()
	broker.emit(AuthEvent{Kind: EventSignedOut})

	assert.Equal(t, 1, got)
}

func TestEventBroker_EmitFromHandlerQueuesBehindCurrentDispatch(t *testing.T) {
	broker := newEventBroker()

	var order []EventKind
	broker.Subscribe(func(e AuthEvent) {
		order = append(order, e.Kind)
		if e.Kind == EventSignedIn {
			// Re-entrant emit must not interleave with the dispatch in
			// flight.
			go broker.emit(AuthEvent{Kind: EventTokenRefreshed})
		}
	})
	done := make(chan struct{})
	broker.Subscribe(func(e AuthEvent) {
		if e.Kind == EventTokenRefreshed {
			close(done)
		}
	})

	broker.emit(AuthEvent{Kind: EventSignedIn})
	<-done

	require.Len(t, order, 2)
	assert.Equal(t, EventSignedIn, order[0])
	assert.Equal(t, EventTokenRefreshed, order[1])
}
