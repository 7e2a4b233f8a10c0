// Package users, as part of the profile module.
// This file, `dto.go`, defines Data Transfer Objects for profile views and
// profile updates.
package users

import "time"

// ProfileStats are the derived counters shown on a profile. They are
// recomputed from the post collection on every view; nothing is cached.
type ProfileStats struct {
	// Posts is the number of posts authored by the user.
	Posts int `json:"posts" example:"3"`
	// LikesReceived is the total size of the like sets across the user's posts.
	LikesReceived int `json:"likes_received" example:"12"`
	// CommentsReceived is the total number of comments across the user's posts.
	CommentsReceived int `json:"comments_received" example:"5"`
}

// ProfilePostSummary is the compact projection of one of the user's own posts
// shown on the profile page.
type ProfilePostSummary struct {
	ID           int64     `json:"id"`
	Text         string    `json:"text"`
	Image        string    `json:"image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	TimeLabel    string    `json:"time_label" example:"2d ago"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
}

// ProfileResponse represents a full profile view.
type ProfileResponse struct {
	Username       string               `json:"username" example:"alice"`
	Email          string               `json:"email" example:"alice@example.com"`
	Bio            string               `json:"bio" example:"Hello! I am new to V-Nexus."`
	ProfilePicture string               `json:"profile_picture"`
	JoinDate       time.Time            `json:"join_date"`
	Stats          ProfileStats         `json:"stats"`
	RecentPosts    []ProfilePostSummary `json:"recent_posts"`
}

// UpdateProfileRequest represents the data for updating a profile.
// Pointer fields allow partial updates: a nil field means "leave unchanged",
// while a pointer to the empty string clears the field.
type UpdateProfileRequest struct {
	Email *string `json:"email,omitempty" example:"alice@new.example.com"`
	Bio   *string `json:"bio,omitempty" example:"Updated bio."`
	// ProfilePicture is a data-URL string, usually produced by the picture
	// upload endpoint.
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// PictureResponse is returned by the picture upload endpoint.
type PictureResponse struct {
	// DataURL is the uploaded image encoded as a data URL.
	DataURL string `json:"data_url" example:"data:image/png;base64,iVBOR..."`
}
