// Package auth handles authentication: registration, login, the persisted
// current-session marker, and token issuing/validation for the HTTP surface.
// This file, `models.go`, defines the entities of the authentication domain.
package auth

import "time"

// DefaultProfilePicture is the avatar every new account starts with: a small
// inline SVG encoded as a data URL, so no file hosting is involved.
const DefaultProfilePicture = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iMjAwIiBoZWlnaHQ9IjIwMCIgdmlld0JveD0iMCAwIDIwMCAyMDAiIGZpbGw9Im5vbmUiIHhtbG5zPSJodHRwOi8vd3d3LnczLm9yZy8yMDAwL3N2ZyI+CjxyZWN0IHdpZHRoPSIyMDAiIGhlaWdodD0iMjAwIiBmaWxsPSIjNDQ3NmZmIi8+CjxjaXJjbGUgY3g9IjEwMCIgY3k9Ijg1IiByPSI0MCIgZmlsbD0id2hpdGUiLz4KPHBhdGggZD0iTTEwMCAxNDBDMTE2LjU2OSAxNDAgMTMwIDE1My40MzEgMTMwIDE3MEg3MEM3MCAxNTMuNDMxIDgzLjQzMSAxNDAgMTAwIDE0MFoiIGZpbGw9IndoaXRlIi8+Cjwvc3ZnPgo="

// DefaultBio is the bio every new account starts with.
const DefaultBio = "Hello! I am new to V-Nexus."

// User represents a registered account. The username is the unique key of the
// collection and the foreign key every other entity refers back to (posts,
// likes, comments carry usernames, not ownership). Users are created at
// registration, mutated on profile edits, and never deleted.
type User struct {
	Username string `json:"username"`
	// HashedPassword is the bcrypt hash of the account password. It must be
	// serialized into the store, so it carries a JSON tag; handlers blank it
	// before writing a User into an HTTP response.
	HashedPassword string `json:"password,omitempty"`
	Email          string `json:"email"`
	Bio            string `json:"bio"`
	// ProfilePicture is a data-URL string (the image bytes travel inline).
	ProfilePicture string    `json:"profile_picture"`
	JoinDate       time.Time `json:"join_date"`
}

// Session is the persisted current-session marker. There is no expiry and no
// token in the marker itself: the session exists exactly as long as a username
// is recorded under the session storage key.
type Session struct {
	Username   string    `json:"username"`
	LoggedInAt time.Time `json:"logged_in_at"`
}
