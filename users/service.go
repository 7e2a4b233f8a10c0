// Package users encapsulates profile management: the aggregated profile view
// and profile editing. This file, `service.go`, contains the business logic.
package users

import (
	"fmt"
	"strings"
	"time"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/auth"
	"github.com/alpha0014/V-Nexus/posts"
	"github.com/alpha0014/V-Nexus/storage"
)

// UserService provides methods for profile management.
type UserService struct {
	store *storage.Store
	now   func() time.Time
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Store) *UserService {
	return &UserService{store: store, now: time.Now}
}

// GetProfile retrieves a user's profile with derived stats. The stats (posts
// authored, likes received, comments received) come from a full scan of the
// post collection on every call — consistency is guaranteed by recomputing
// from source, at the cost of redundant scans, which is fine at this scale.
func (s *UserService) GetProfile(username string) (*ProfileResponse, error) {
	user, err := s.findUser(username)
	if err != nil {
		return nil, err
	}

	allPosts, err := storage.Get[[]posts.Post](s.store, storage.KeyPosts)
	if err != nil {
		return nil, apperror.NewStorageError("failed to load posts", err)
	}

	now := s.now()
	stats := ProfileStats{}
	// Non-nil so a postless profile serializes as an empty array, not null.
	recent := make([]ProfilePostSummary, 0)
	// The post collection is stored most-recent-first, so a single in-order
	// scan yields both the stats and the ordered post summaries.
	for i := range allPosts {
		p := &allPosts[i]
		if p.Author != username {
			continue
		}
		stats.Posts++
		stats.LikesReceived += len(p.Likes)
		stats.CommentsReceived += len(p.Comments)
		recent = append(recent, ProfilePostSummary{
			ID:           p.ID,
			Text:         p.Text,
			Image:        p.Image,
			CreatedAt:    p.CreatedAt,
			TimeLabel:    posts.RelativeTimeLabel(p.CreatedAt, now),
			LikeCount:    len(p.Likes),
			CommentCount: len(p.Comments),
		})
	}

	picture := user.ProfilePicture
	if picture == "" {
		picture = auth.DefaultProfilePicture
	}

	return &ProfileResponse{
		Username:       user.Username,
		Email:          user.Email,
		Bio:            user.Bio,
		ProfilePicture: picture,
		JoinDate:       user.JoinDate,
		Stats:          stats,
		RecentPosts:    recent,
	}, nil
}

// UpdateProfile applies a partial update (email, bio, profile picture) to the
// user record and persists the collection. Usernames are immutable; they are
// the collection key and the foreign key everything else points at.
func (s *UserService) UpdateProfile(username string, req *UpdateProfileRequest) (*ProfileResponse, error) {
	s.store.Lock()

	users, err := storage.Get[[]auth.User](s.store, storage.KeyUsers)
	if err != nil {
		s.store.Unlock()
		return nil, apperror.NewStorageError("failed to load users", err)
	}

	idx := -1
	for i := range users {
		if users[i].Username == username {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.store.Unlock()
		return nil, apperror.NewNotFoundError(fmt.Sprintf("user '%s' not found", username), nil)
	}

	if req.Email != nil {
		users[idx].Email = strings.ToLower(*req.Email)
	}
	if req.Bio != nil {
		users[idx].Bio = *req.Bio
	}
	if req.ProfilePicture != nil {
		users[idx].ProfilePicture = *req.ProfilePicture
	}

	if err := storage.Set(s.store, storage.KeyUsers, users); err != nil {
		s.store.Unlock()
		return nil, apperror.NewStorageError("failed to save users", err)
	}
	s.store.Unlock()

	// Re-read through GetProfile so the response carries fresh derived stats.
	return s.GetProfile(username)
}

// findUser looks a user up by exact username.
func (s *UserService) findUser(username string) (*auth.User, error) {
	users, err := storage.Get[[]auth.User](s.store, storage.KeyUsers)
	if err != nil {
		return nil, apperror.NewStorageError("failed to load users", err)
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, apperror.NewNotFoundError(fmt.Sprintf("user '%s' not found", username), nil)
}
