// Package notifications, as part of the notifications module.
// This file, `broadcaster.go`, defines the `Broadcaster` which manages SSE
// subscriber connections and fans notification events out to them. This is a
// common pattern for implementing SSE servers: each subscriber gets its own
// buffered channel, and sends never block the publisher.
package notifications

import (
	"log"
	// `sync` provides the RWMutex guarding the subscriber registry.
	"sync"

	// `uuid` is used to generate unique identifiers for subscribers.
	"github.com/google/uuid"
)

// subscriberBuffer is the per-subscriber event channel capacity. A subscriber
// that falls further behind than this starts dropping events.
const subscriberBuffer = 32

// Broadcaster manages SSE subscribers and event fan-out.
type Broadcaster struct {
	// subscribers maps a subscriber ID to its personal event channel. The
	// RWMutex allows concurrent fan-out (reads) while registration and removal
	// (writes) are exclusive.
	mu          sync.RWMutex
	subscribers map[string]chan Event
}

// NewBroadcaster creates and returns a new Broadcaster instance.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan Event),
	}
}

// Subscribe registers a new subscriber and returns its ID together with the
// receive-only channel events for it will arrive on.
func (b *Broadcaster) Subscribe() (string, <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.New().String()
	ch := make(chan Event, subscriberBuffer)
	b.subscribers[id] = ch
	log.Printf("SSE subscriber registered: %s", id)
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel. Closing unblocks
// the stream handler's receive loop. Unknown IDs are ignored.
func (b *Broadcaster) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
		log.Printf("SSE subscriber removed: %s", id)
	}
}

// Publish fans an event out to every subscriber. The send on each channel is
// non-blocking: a subscriber whose buffer is full misses the event instead of
// stalling the publisher.
func (b *Broadcaster) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			log.Printf("SSE subscriber %s is not keeping up, dropping event", id)
		}
	}
}

// SubscriberCount returns the number of currently connected subscribers.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
