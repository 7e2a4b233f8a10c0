// Package friends, as part of the friends module.
// This file, `service.go`, contains the business logic for the friends list.
package friends

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/storage"
)

// FriendService manages the viewer's friends collection.
type FriendService struct {
	store *storage.Store
}

// NewFriendService creates a new FriendService backed by the given store.
func NewFriendService(store *storage.Store) *FriendService {
	return &FriendService{store: store}
}

// List returns the friends collection in stored order.
func (s *FriendService) List() ([]Friend, error) {
	all, err := storage.Get[[]Friend](s.store, storage.KeyFriends)
	if err != nil {
		return nil, apperror.NewStorageError("failed to load friends", err)
	}
	if all == nil {
		all = []Friend{}
	}
	return all, nil
}

// Remove deletes the friend edge with the given id. An unknown id is surfaced
// as a not-found error rather than silently ignored.
func (s *FriendService) Remove(friendID string) error {
	s.store.Lock()
	defer s.store.Unlock()

	all, err := storage.Get[[]Friend](s.store, storage.KeyFriends)
	if err != nil {
		return apperror.NewStorageError("failed to load friends", err)
	}

	for i := range all {
		if all[i].ID == friendID {
			all = append(all[:i], all[i+1:]...)
			if err := storage.Set(s.store, storage.KeyFriends, all); err != nil {
				return apperror.NewStorageError("failed to save friends", err)
			}
			return nil
		}
	}
	return apperror.NewNotFoundError(fmt.Sprintf("friend %s not found", friendID), nil)
}

// SeedDefaults populates the friends collection with sample entries the first
// time the store is used. A store that already carries the key, even with an
// empty list, is left alone so removals survive a restart.
func (s *FriendService) SeedDefaults() error {
	s.store.Lock()
	defer s.store.Unlock()

	exists, err := s.store.Has(storage.KeyFriends)
	if err != nil {
		return apperror.NewStorageError("failed to check friends", err)
	}
	if exists {
		return nil
	}

	now := time.Now().UTC()
	seeded := []Friend{
		{ID: uuid.New().String(), Username: "sarah_connor", DisplayName: "Sarah Connor", Avatar: "https://i.pravatar.cc/150?u=sarah_connor", Since: now.AddDate(0, -8, 0)},
		{ID: uuid.New().String(), Username: "mike_jones", DisplayName: "Mike Jones", Avatar: "https://i.pravatar.cc/150?u=mike_jones", Since: now.AddDate(0, -5, -12)},
		{ID: uuid.New().String(), Username: "emily_chen", DisplayName: "Emily Chen", Avatar: "https://i.pravatar.cc/150?u=emily_chen", Since: now.AddDate(0, -3, -2)},
		{ID: uuid.New().String(), Username: "alex_rivera", DisplayName: "Alex Rivera", Avatar: "https://i.pravatar.cc/150?u=alex_rivera", Since: now.AddDate(0, -1, -20)},
	}
	if err := storage.Set(s.store, storage.KeyFriends, seeded); err != nil {
		return apperror.NewStorageError("failed to seed friends", err)
	}
	return nil
}
