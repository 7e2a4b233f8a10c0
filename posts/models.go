// Package posts implements the post feed: creating posts, toggling likes,
// appending comments, and projecting the stored collection into feed views.
// This file, `models.go`, defines the entities of the feed domain as they are
// persisted in the store.
package posts

import "time"

// Post is a feed entry. Its ID is derived from the creation timestamp
// (milliseconds, bumped on collision) and is unique within the collection.
// The author is a weak reference by username: the post carries no ownership of
// the user record, only a lookup key. Posts are prepended on creation, so the
// stored order is most-recent-first by insertion, and are never deleted.
type Post struct {
	ID     int64  `json:"id"`
	Author string `json:"author"`
	Text   string `json:"text"`
	// Image is an optional data-URL string.
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	// Likes is a set of usernames: each username appears at most once, and the
	// like toggle is its own inverse.
	Likes []string `json:"likes"`
	// Comments are insertion-ordered and append-only: never reordered, never
	// deleted.
	Comments []Comment `json:"comments"`
}

// Comment is an append-only child of a Post.
type Comment struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// likedBy reports whether username is in the post's like set.
func (p *Post) likedBy(username string) bool {
	for _, u := range p.Likes {
		if u == username {
			return true
		}
	}
	return false
}
