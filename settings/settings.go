// Package settings, as part of the settings module.
// This file, `settings.go`, defines the flat settings record and its service.
// The record is written wholesale on every save (last-write-wins, no merge)
// and read back over a defaults struct so any missing field keeps its default.
package settings

import (
	"time"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/storage"
)

// Settings is the flat user-preferences record. Enum-valued fields (post
// visibility, theme, language) carry whatever string was stored; values are
// trusted, not validated against an allowed set.
type Settings struct {
	PrivateAccount     bool   `json:"private_account"`
	EmailNotifications bool   `json:"email_notifications"`
	PushNotifications  bool   `json:"push_notifications"`
	PostVisibility     string `json:"post_visibility" example:"public"`
	Theme              string `json:"theme" example:"light"`
	Language           string `json:"language" example:"en"`
}

// DefaultSettings returns the record applied when nothing has been saved yet.
func DefaultSettings() Settings {
	return Settings{
		PrivateAccount:     false,
		EmailNotifications: true,
		PushNotifications:  true,
		PostVisibility:     "public",
		Theme:              "light",
		Language:           "en",
	}
}

// SettingsService manages the settings record.
type SettingsService struct {
	store *storage.Store
	now   func() time.Time
}

// NewSettingsService creates a new SettingsService backed by the given store.
func NewSettingsService(store *storage.Store) *SettingsService {
	return &SettingsService{store: store, now: time.Now}
}

// Load reads the settings record, filling any field absent from the stored
// document with its default.
func (s *SettingsService) Load() (Settings, error) {
	record := DefaultSettings()
	if err := storage.GetInto(s.store, storage.KeySettings, &record); err != nil {
		return record, apperror.NewStorageError("failed to load settings", err)
	}
	return record, nil
}

// Save writes the record wholesale, replacing whatever was stored before.
func (s *SettingsService) Save(record Settings) error {
	if err := storage.Set(s.store, storage.KeySettings, record); err != nil {
		return apperror.NewStorageError("failed to save settings", err)
	}
	return nil
}
