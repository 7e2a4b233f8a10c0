// Package messaging, as part of the messaging module.
// This file, `service.go`, contains the business logic for conversations and
// the send-message path. Sending appends and persists the outgoing message
// synchronously, then hands the synthetic reply off to the background worker.
package messaging

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/storage"
)

// MessagingService manages the conversation collection.
type MessagingService struct {
	store *storage.Store
	// worker may be nil (e.g. in tests that don't exercise replies), in which
	// case sent messages simply never receive one.
	worker *ReplyWorker
	now    func() time.Time
}

// NewMessagingService creates a new MessagingService backed by the given store
// and reply worker.
func NewMessagingService(store *storage.Store, worker *ReplyWorker) *MessagingService {
	return &MessagingService{store: store, worker: worker, now: time.Now}
}

// Conversations returns the conversation collection in stored order.
func (s *MessagingService) Conversations() ([]Conversation, error) {
	all, err := storage.Get[[]Conversation](s.store, storage.KeyConversations)
	if err != nil {
		return nil, apperror.NewStorageError("failed to load conversations", err)
	}
	if all == nil {
		all = []Conversation{}
	}
	return all, nil
}

// GetConversation returns a single conversation by id.
func (s *MessagingService) GetConversation(conversationID string) (*Conversation, error) {
	all, err := storage.Get[[]Conversation](s.store, storage.KeyConversations)
	if err != nil {
		return nil, apperror.NewStorageError("failed to load conversations", err)
	}
	idx := findConversation(all, conversationID)
	if idx < 0 {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("conversation %s not found", conversationID), nil)
	}
	return &all[idx], nil
}

// SendMessage appends a message from sender to the conversation and persists
// it, then schedules exactly one synthetic reply. Blank text (after trimming)
// is rejected; an unknown conversation id is surfaced as not found. The reply
// lands after the configured delay with no ordering guarantee between closely
// scheduled replies.
func (s *MessagingService) SendMessage(conversationID, sender, text string) (*Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperror.NewValidationError("message cannot be empty", nil)
	}

	s.store.Lock()
	all, err := storage.Get[[]Conversation](s.store, storage.KeyConversations)
	if err != nil {
		s.store.Unlock()
		return nil, apperror.NewStorageError("failed to load conversations", err)
	}

	idx := findConversation(all, conversationID)
	if idx < 0 {
		s.store.Unlock()
		return nil, apperror.NewNotFoundError(fmt.Sprintf("conversation %s not found", conversationID), nil)
	}
	conv := &all[idx]

	now := s.now().UTC()
	message := Message{
		ID:        nextMessageID(conv.Messages, now),
		Sender:    sender,
		Text:      text,
		CreatedAt: now,
	}
	conv.Messages = append(conv.Messages, message)

	if err := storage.Set(s.store, storage.KeyConversations, all); err != nil {
		s.store.Unlock()
		return nil, apperror.NewStorageError("failed to save conversations", err)
	}
	s.store.Unlock()

	if s.worker != nil {
		s.worker.Enqueue(conversationID)
	}
	return &message, nil
}

// SeedDefaults populates the conversation collection with sample threads the
// first time the store is used. An existing key is left alone so message
// history survives a restart.
func (s *MessagingService) SeedDefaults() error {
	s.store.Lock()
	defer s.store.Unlock()

	exists, err := s.store.Has(storage.KeyConversations)
	if err != nil {
		return apperror.NewStorageError("failed to check conversations", err)
	}
	if exists {
		return nil
	}

	now := s.now().UTC()
	seeded := []Conversation{
		{
			ID:              uuid.New().String(),
			Participant:     "sarah_connor",
			ParticipantName: "Sarah Connor",
			Avatar:          "https://i.pravatar.cc/150?u=sarah_connor",
			Messages: []Message{
				{ID: now.Add(-50 * time.Hour).UnixMilli(), Sender: "sarah_connor", Text: "Hey! Did you see the photos from the weekend?", CreatedAt: now.Add(-50 * time.Hour)},
				{ID: now.Add(-49 * time.Hour).UnixMilli(), Sender: "sarah_connor", Text: "They came out really well.", CreatedAt: now.Add(-49 * time.Hour)},
			},
		},
		{
			ID:              uuid.New().String(),
			Participant:     "mike_jones",
			ParticipantName: "Mike Jones",
			Avatar:          "https://i.pravatar.cc/150?u=mike_jones",
			Messages: []Message{
				{ID: now.Add(-20 * time.Hour).UnixMilli(), Sender: "mike_jones", Text: "Are we still on for Friday?", CreatedAt: now.Add(-20 * time.Hour)},
			},
		},
		{
			ID:              uuid.New().String(),
			Participant:     "emily_chen",
			ParticipantName: "Emily Chen",
			Avatar:          "https://i.pravatar.cc/150?u=emily_chen",
			Messages:        []Message{},
		},
	}
	if err := storage.Set(s.store, storage.KeyConversations, seeded); err != nil {
		return apperror.NewStorageError("failed to seed conversations", err)
	}
	return nil
}

// findConversation returns the index of the conversation with the given id,
// or -1.
func findConversation(conversations []Conversation, id string) int {
	for i := range conversations {
		if conversations[i].ID == id {
			return i
		}
	}
	return -1
}

// nextMessageID derives a unique id from the creation timestamp
// (milliseconds), bumping by one while the candidate collides with an existing
// message in the same conversation.
func nextMessageID(messages []Message, now time.Time) int64 {
	id := now.UnixMilli()
	for {
		collision := false
		for i := range messages {
			if messages[i].ID == id {
				collision = true
				break
			}
		}
		if !collision {
			return id
		}
		id++
	}
}
