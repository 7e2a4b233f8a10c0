// Package notifications, as part of the notifications module.
// This file, `models.go`, defines the notification entity as persisted in the
// store.
package notifications

import "time"

// Notification kinds. Stored as plain strings so the collection needs no
// schema migration when a kind is added.
const (
	TypeLike    = "like"
	TypeComment = "comment"
	TypeFriend  = "friend"
	TypeSystem  = "system"
)

// Notification is one entry of the viewer's notification list. Dismissal
// deletes the entry outright, it is not tombstoned.
type Notification struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	// Actor is the username whose action produced the notification;
	// Recipient is the username it is addressed to. Seeded sample entries
	// carry no recipient and are shown to whoever is browsing.
	Actor     string    `json:"actor,omitempty"`
	Recipient string    `json:"recipient,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
