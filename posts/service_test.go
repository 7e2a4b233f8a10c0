package posts

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/config"
	"github.com/alpha0014/V-Nexus/notifications"
	"github.com/alpha0014/V-Nexus/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(&config.StorageConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// recordingNotifier captures feed events for assertions.
type recordingNotifier struct {
	likes    []string
	comments []string
}

func (n *recordingNotifier) NotifyLike(owner, actor string, postID int64)    { n.likes = append(n.likes, actor) }
func (n *recordingNotifier) NotifyComment(owner, actor string, postID int64) { n.comments = append(n.comments, actor) }

func TestCreatePostRejectsEmpty(t *testing.T) {
	service := NewPostService(newTestStore(t), nil)

	_, err := service.CreatePost("alice", NewPostRequest{Text: "   "})
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))

	feed, err := service.Feed("alice")
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestCreatePostWithOnlyImageIsAllowed(t *testing.T) {
	service := NewPostService(newTestStore(t), nil)

	view, err := service.CreatePost("alice", NewPostRequest{Image: "data:image/png;base64,AAAA"})
	require.NoError(t, err)
	assert.Empty(t, view.Text)
	assert.NotEmpty(t, view.Image)
}

func TestFeedIsMostRecentFirst(t *testing.T) {
	service := NewPostService(newTestStore(t), nil)

	_, err := service.CreatePost("alice", NewPostRequest{Text: "first"})
	require.NoError(t, err)
	_, err = service.CreatePost("alice", NewPostRequest{Text: "second"})
	require.NoError(t, err)

	feed, err := service.Feed("alice")
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "second", feed[0].Text)
	assert.Equal(t, "first", feed[1].Text)
	assert.NotEqual(t, feed[0].ID, feed[1].ID)
}

func TestToggleLikeIsAnInvolution(t *testing.T) {
	service := NewPostService(newTestStore(t), nil)

	created, err := service.CreatePost("alice", NewPostRequest{Text: "hello"})
	require.NoError(t, err)

	liked, err := service.ToggleLike(created.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, 1, liked.LikeCount)
	assert.True(t, liked.LikedByViewer)

	unliked, err := service.ToggleLike(created.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, 0, unliked.LikeCount)
	assert.False(t, unliked.LikedByViewer)
}

func TestToggleLikeUnknownPostIsNotFound(t *testing.T) {
	service := NewPostService(newTestStore(t), nil)

	_, err := service.ToggleLike(12345, "bob")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestLikeNotifiesOwnerButNotSelfOrUnlike(t *testing.T) {
	notifier := &recordingNotifier{}
	service := NewPostService(newTestStore(t), notifier)

	created, err := service.CreatePost("alice", NewPostRequest{Text: "hello"})
	require.NoError(t, err)

	// A self-like produces no notification.
	_, err = service.ToggleLike(created.ID, "alice")
	require.NoError(t, err)
	assert.Empty(t, notifier.likes)

	// A fresh like by someone else does.
	_, err = service.ToggleLike(created.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, notifier.likes)

	// The unlike does not.
	_, err = service.ToggleLike(created.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, notifier.likes)
}

func TestAddCommentValidatesAndAppends(t *testing.T) {
	service := NewPostService(newTestStore(t), nil)

	created, err := service.CreatePost("alice", NewPostRequest{Text: "hello"})
	require.NoError(t, err)

	_, err = service.AddComment(created.ID, "bob", "   ")
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))

	comment, err := service.AddComment(created.ID, "bob", "hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", comment.Text)
	assert.Equal(t, "bob", comment.Author)

	view, err := service.GetPost(created.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, view.CommentCount)
	require.Len(t, view.Comments, 1)
	assert.Equal(t, "hi", view.Comments[0].Text)
}

// The production wiring hands the feed a store-backed notification service
// that runs its own locked read-modify-write cycle against the same store, so
// this test exercises that pairing rather than a fake. The timeout guard turns
// a lock-ordering regression into a failure instead of a hung test run.
func TestLikeAndCommentWithStoreBackedNotifier(t *testing.T) {
	store := newTestStore(t)
	notificationService := notifications.NewNotificationService(store, nil)
	service := NewPostService(store, notificationService)

	created, err := service.CreatePost("alice", NewPostRequest{Text: "hello"})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := service.ToggleLike(created.ID, "bob"); err != nil {
			t.Errorf("ToggleLike failed: %v", err)
			return
		}
		if _, err := service.AddComment(created.ID, "bob", "nice"); err != nil {
			t.Errorf("AddComment failed: %v", err)
		}
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("feed mutation did not complete with a store-backed notifier")
	}

	list, err := notificationService.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, notifications.TypeComment, list[0].Type)
	assert.Equal(t, "bob", list[0].Actor)
	assert.Equal(t, "alice", list[0].Recipient)
	assert.Equal(t, notifications.TypeLike, list[1].Type)
	assert.Equal(t, "bob", list[1].Actor)
	assert.Equal(t, "alice", list[1].Recipient)
}

func TestAddCommentUnknownPostIsNotFound(t *testing.T) {
	service := NewPostService(newTestStore(t), nil)

	_, err := service.AddComment(999, "bob", "hi")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestFeedSurvivesStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := storage.Open(&config.StorageConfig{Path: path})
	require.NoError(t, err)
	service := NewPostService(store, nil)

	created, err := service.CreatePost("alice", NewPostRequest{Text: "durable"})
	require.NoError(t, err)
	_, err = service.ToggleLike(created.ID, "bob")
	require.NoError(t, err)
	_, err = service.AddComment(created.ID, "bob", "still here")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := storage.Open(&config.StorageConfig{Path: path})
	require.NoError(t, err)
	defer reopened.Close()

	view, err := NewPostService(reopened, nil).GetPost(created.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, "durable", view.Text)
	assert.Equal(t, 1, view.LikeCount)
	assert.True(t, view.LikedByViewer)
	assert.Equal(t, 1, view.CommentCount)
}
