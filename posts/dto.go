// Package posts, as part of the feed module.
// This file, `dto.go`, defines the request payloads and the projected views
// the feed returns. Views are pure projections of store state: clients hold
// display copies only and never write back through them.
package posts

import "time"

// NewPostRequest represents the create-post request payload. A post needs at
// least one of text and image.
type NewPostRequest struct {
	Text string `json:"text" example:"hello"`
	// Image is an optional data-URL string produced by the image loader.
	Image string `json:"image,omitempty" example:"data:image/png;base64,iVBOR..."`
}

// NewCommentRequest represents the add-comment request payload.
type NewCommentRequest struct {
	Text string `json:"text" example:"nice post!"`
}

// CommentView is the projection of a single comment.
type CommentView struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	// TimeLabel is the relative age label ("Just now", "5m ago", ...).
	TimeLabel string `json:"time_label" example:"5m ago"`
}

// PostView is the projection of a single post for a given viewer: like count,
// whether the viewer has liked it, comment count, and the relative age label
// are all derived, never stored.
type PostView struct {
	ID            int64  `json:"id"`
	Author        string `json:"author"`
	AuthorPicture string `json:"author_picture"`
	Text          string `json:"text"`
	Image         string `json:"image,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	TimeLabel     string    `json:"time_label" example:"3h ago"`
	LikeCount     int       `json:"like_count" example:"1"`
	LikedByViewer bool      `json:"liked_by_viewer"`
	CommentCount  int       `json:"comment_count" example:"2"`
	Comments      []CommentView `json:"comments"`
}

// FeedResponse wraps the projected feed.
type FeedResponse struct {
	Posts []PostView `json:"posts"`
}
