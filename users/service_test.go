package users

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/auth"
	"github.com/alpha0014/V-Nexus/config"
	"github.com/alpha0014/V-Nexus/posts"
	"github.com/alpha0014/V-Nexus/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(&config.StorageConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func registerUser(t *testing.T, store *storage.Store, username string) {
	t.Helper()
	authService := auth.NewAuthService(store, config.AuthConfig{
		JWTSecret:            "test-secret",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 24 * time.Hour,
	})
	_, err := authService.Register(auth.RegisterRequest{Username: username, Email: username + "@example.com", Password: "s3cret"})
	require.NoError(t, err)
}

func TestGetProfileUnknownUserIsNotFound(t *testing.T) {
	service := NewUserService(newTestStore(t))

	_, err := service.GetProfile("ghost")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetProfileAggregatesStatsFromPosts(t *testing.T) {
	store := newTestStore(t)
	registerUser(t, store, "alice")
	registerUser(t, store, "bob")

	postService := posts.NewPostService(store, nil)
	first, err := postService.CreatePost("alice", posts.NewPostRequest{Text: "first"})
	require.NoError(t, err)
	second, err := postService.CreatePost("alice", posts.NewPostRequest{Text: "second"})
	require.NoError(t, err)
	// A post by someone else must not count towards alice's stats.
	_, err = postService.CreatePost("bob", posts.NewPostRequest{Text: "not alice's"})
	require.NoError(t, err)

	_, err = postService.ToggleLike(first.ID, "bob")
	require.NoError(t, err)
	_, err = postService.ToggleLike(second.ID, "bob")
	require.NoError(t, err)
	_, err = postService.AddComment(first.ID, "bob", "nice")
	require.NoError(t, err)

	profile, err := NewUserService(store).GetProfile("alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, auth.DefaultBio, profile.Bio)
	assert.Equal(t, 2, profile.Stats.Posts)
	assert.Equal(t, 2, profile.Stats.LikesReceived)
	assert.Equal(t, 1, profile.Stats.CommentsReceived)

	// Recent posts are the user's own, in feed (most-recent-first) order.
	require.Len(t, profile.RecentPosts, 2)
	assert.Equal(t, "second", profile.RecentPosts[0].Text)
	assert.Equal(t, "first", profile.RecentPosts[1].Text)
	assert.Equal(t, 1, profile.RecentPosts[1].LikeCount)
	assert.Equal(t, 1, profile.RecentPosts[1].CommentCount)
}

func TestGetProfileWithNoPostsHasEmptyRecentList(t *testing.T) {
	store := newTestStore(t)
	registerUser(t, store, "alice")

	profile, err := NewUserService(store).GetProfile("alice")
	require.NoError(t, err)
	assert.Equal(t, ProfileStats{}, profile.Stats)
	// Empty, not nil: the JSON projection must carry [] rather than null.
	assert.NotNil(t, profile.RecentPosts)
	assert.Empty(t, profile.RecentPosts)
}

func TestUpdateProfileAppliesPartialChanges(t *testing.T) {
	store := newTestStore(t)
	registerUser(t, store, "alice")
	service := NewUserService(store)

	newBio := "Exploring V-Nexus."
	updated, err := service.UpdateProfile("alice", &UpdateProfileRequest{Bio: &newBio})
	require.NoError(t, err)
	assert.Equal(t, newBio, updated.Bio)
	// Untouched fields keep their values.
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, auth.DefaultProfilePicture, updated.ProfilePicture)

	newEmail := "Alice@New.Example.com"
	updated, err = service.UpdateProfile("alice", &UpdateProfileRequest{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, "alice@new.example.com", updated.Email)
	assert.Equal(t, newBio, updated.Bio)

	// The update is persisted, not just projected.
	reread, err := service.GetProfile("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@new.example.com", reread.Email)
	assert.Equal(t, newBio, reread.Bio)
}

func TestUpdateProfileUnknownUserIsNotFound(t *testing.T) {
	service := NewUserService(newTestStore(t))

	bio := "hello"
	_, err := service.UpdateProfile("ghost", &UpdateProfileRequest{Bio: &bio})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
