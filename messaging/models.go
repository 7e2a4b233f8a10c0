// Package messaging, as part of the messaging module.
// This file, `models.go`, defines the conversation and message entities as
// persisted in the store.
package messaging

import "time"

// Message is one entry of a conversation's message sequence. Sender holds the
// username of whoever wrote it, including the simulated remote participant.
type Message struct {
	ID        int64     `json:"id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversation is a two-party thread between the viewer and a sample
// participant. The message sequence is append-only and ordered by insertion.
type Conversation struct {
	ID              string    `json:"id"`
	Participant     string    `json:"participant"`
	ParticipantName string    `json:"participant_name"`
	Avatar          string    `json:"avatar"`
	Messages        []Message `json:"messages"`
}

// lastMessage returns the most recent message of the conversation, or nil for
// an empty thread.
func (c *Conversation) lastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}
