// Package notifications, as part of the notifications module.
// This file, `service.go`, contains the business logic for the notification
// list and implements the feed's Notifier contract so likes and comments on a
// user's posts surface here.
package notifications

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/storage"
)

// NotificationService manages the notification collection and pushes new
// entries to connected SSE subscribers.
type NotificationService struct {
	store       *storage.Store
	broadcaster *Broadcaster
	now         func() time.Time
}

// NewNotificationService creates a new NotificationService backed by the given
// store and broadcaster.
func NewNotificationService(store *storage.Store, broadcaster *Broadcaster) *NotificationService {
	return &NotificationService{store: store, broadcaster: broadcaster, now: time.Now}
}

// List returns the notification collection, newest first.
func (s *NotificationService) List() ([]Notification, error) {
	all, err := storage.Get[[]Notification](s.store, storage.KeyNotifications)
	if err != nil {
		return nil, apperror.NewStorageError("failed to load notifications", err)
	}
	if all == nil {
		all = []Notification{}
	}
	return all, nil
}

// Dismiss removes the notification with the given id. An unknown id is
// surfaced as a not-found error rather than silently ignored.
func (s *NotificationService) Dismiss(notificationID string) error {
	s.store.Lock()
	defer s.store.Unlock()

	all, err := storage.Get[[]Notification](s.store, storage.KeyNotifications)
	if err != nil {
		return apperror.NewStorageError("failed to load notifications", err)
	}

	for i := range all {
		if all[i].ID == notificationID {
			all = append(all[:i], all[i+1:]...)
			if err := storage.Set(s.store, storage.KeyNotifications, all); err != nil {
				return apperror.NewStorageError("failed to save notifications", err)
			}
			return nil
		}
	}
	return apperror.NewNotFoundError(fmt.Sprintf("notification %s not found", notificationID), nil)
}

// Publish persists a new notification at the head of the collection and fans
// it out to SSE subscribers. The id and timestamp are assigned here.
func (s *NotificationService) Publish(kind, actor, recipient, message string) (*Notification, error) {
	n := Notification{
		ID:        uuid.New().String(),
		Type:      kind,
		Actor:     actor,
		Recipient: recipient,
		Message:   message,
		CreatedAt: s.now().UTC(),
	}

	s.store.Lock()
	all, err := storage.Get[[]Notification](s.store, storage.KeyNotifications)
	if err != nil {
		s.store.Unlock()
		return nil, apperror.NewStorageError("failed to load notifications", err)
	}
	// Prepend: the list is newest-first by insertion.
	all = append([]Notification{n}, all...)
	if err := storage.Set(s.store, storage.KeyNotifications, all); err != nil {
		s.store.Unlock()
		return nil, apperror.NewStorageError("failed to save notifications", err)
	}
	s.store.Unlock()

	if s.broadcaster != nil {
		payload, err := json.Marshal(n)
		if err == nil {
			s.broadcaster.Publish(NewEvent("notification", string(payload)))
		}
	}
	return &n, nil
}

// NotifyLike records a like on one of owner's posts, addressed to the owner.
// Part of the feed's Notifier contract; a publish failure is logged, never
// propagated back into the feed mutation that triggered it.
func (s *NotificationService) NotifyLike(owner, actor string, postID int64) {
	message := fmt.Sprintf("%s liked your post", actor)
	if _, err := s.Publish(TypeLike, actor, owner, message); err != nil {
		log.Printf("failed to publish like notification for post %d: %v", postID, err)
	}
}

// NotifyComment records a comment on one of owner's posts.
func (s *NotificationService) NotifyComment(owner, actor string, postID int64) {
	message := fmt.Sprintf("%s commented on your post", actor)
	if _, err := s.Publish(TypeComment, actor, owner, message); err != nil {
		log.Printf("failed to publish comment notification for post %d: %v", postID, err)
	}
}

// SeedDefaults populates the notification collection with sample entries the
// first time the store is used. An existing key, even an empty list, is left
// alone so dismissals survive a restart.
func (s *NotificationService) SeedDefaults() error {
	s.store.Lock()
	defer s.store.Unlock()

	exists, err := s.store.Has(storage.KeyNotifications)
	if err != nil {
		return apperror.NewStorageError("failed to check notifications", err)
	}
	if exists {
		return nil
	}

	now := s.now().UTC()
	seeded := []Notification{
		{ID: uuid.New().String(), Type: TypeFriend, Actor: "emily_chen", Message: "Emily Chen accepted your friend request", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: uuid.New().String(), Type: TypeLike, Actor: "mike_jones", Message: "mike_jones liked your post", CreatedAt: now.Add(-26 * time.Hour)},
		{ID: uuid.New().String(), Type: TypeSystem, Message: "Welcome to V-Nexus! Complete your profile to get started.", CreatedAt: now.Add(-72 * time.Hour)},
	}
	if err := storage.Set(s.store, storage.KeyNotifications, seeded); err != nil {
		return apperror.NewStorageError("failed to seed notifications", err)
	}
	return nil
}
