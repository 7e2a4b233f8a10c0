package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeAndPublishFanOut(t *testing.T) {
	b := NewBroadcaster()

	_, first := b.Subscribe()
	_, second := b.Subscribe()
	assert.Equal(t, 2, b.SubscriberCount())

	b.Publish(NewEvent("notification", `{"message":"hello"}`))

	assert.Equal(t, "notification", (<-first).Event)
	assert.Equal(t, "notification", (<-second).Event)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster()

	id, events := b.Subscribe()
	b.Unsubscribe(id)

	_, open := <-events
	assert.False(t, open)
	assert.Equal(t, 0, b.SubscriberCount())

	// Unsubscribing twice is a no-op.
	b.Unsubscribe(id)
}

func TestPublishNeverBlocksOnSlowSubscriber(t *testing.T) {
	b := NewBroadcaster()

	// Nobody reads from this subscriber; its buffer fills up and further
	// events are dropped instead of stalling the publisher.
	id, events := b.Subscribe()
	for i := 0; i < subscriberBuffer+5; i++ {
		b.Publish(NewEvent("notification", "spam"))
	}

	drained := 0
	for len(events) > 0 {
		<-events
		drained++
	}
	require.Equal(t, subscriberBuffer, drained)
	b.Unsubscribe(id)
}
