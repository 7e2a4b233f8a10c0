// Package notifications, as part of the notifications module.
// This file, `event.go`, defines the event envelope pushed to connected
// Server-Sent Events (SSE) subscribers.
package notifications

// Event represents a Server-Sent Event as streamed to a subscriber. Event maps
// to the "event:" field of the stream and Data to the "data:" field.
type Event struct {
	Event string
	Data  string
}

// NewEvent creates a new Event with the given name and payload.
func NewEvent(name, data string) Event {
	return Event{Event: name, Data: data}
}
