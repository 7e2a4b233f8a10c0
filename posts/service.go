// Package posts, as part of the feed module.
// This file, `service.go`, contains the business logic for feed operations.
// It acts as the "Service" layer: handlers decode requests and delegate here.
package posts

import (
	"fmt"
	"strings"
	"time"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/auth"
	"github.com/alpha0014/V-Nexus/storage"
)

// PostService defines the feed operations.
// Handlers depend on this interface rather than the concrete implementation,
// which keeps them testable in isolation.
type PostService interface {
	CreatePost(author string, req NewPostRequest) (*PostView, error)
	ToggleLike(postID int64, username string) (*PostView, error)
	AddComment(postID int64, author string, text string) (*Comment, error)
	Feed(viewer string) ([]PostView, error)
	GetPost(postID int64, viewer string) (*PostView, error)
}

// Notifier receives feed events that should surface as notifications.
// The notifications module implements it; the feed only knows the interface,
// so the dependency points outward.
type Notifier interface {
	NotifyLike(owner, actor string, postID int64)
	NotifyComment(owner, actor string, postID int64)
}

// postServiceImpl is the store-backed implementation of PostService.
// The `Impl` suffix is a common convention for concrete implementations of
// interfaces.
type postServiceImpl struct {
	store *storage.Store
	// notifier may be nil (e.g. in tests that don't care about notifications).
	notifier Notifier
	// now is the clock; injectable so projections are deterministic in tests.
	now func() time.Time
}

// NewPostService creates a new PostService backed by the given store.
func NewPostService(store *storage.Store, notifier Notifier) PostService {
	return &postServiceImpl{store: store, notifier: notifier, now: time.Now}
}

// CreatePost validates and prepends a new post to the collection.
// A post with neither text nor image is rejected. The collection is ordered by
// insertion, newest first; insertion order and recency are assumed to coincide.
func (s *postServiceImpl) CreatePost(author string, req NewPostRequest) (*PostView, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" && req.Image == "" {
		return nil, apperror.NewValidationError("post cannot be empty", nil)
	}

	s.store.Lock()
	defer s.store.Unlock()

	allPosts, err := storage.Get[[]Post](s.store, storage.KeyPosts)
	if err != nil {
		return nil, apperror.NewStorageError("failed to load posts", err)
	}

	now := s.now().UTC()
	post := Post{
		ID:        nextPostID(allPosts, now),
		Author:    author,
		Text:      text,
		Image:     req.Image,
		CreatedAt: now,
		Likes:     []string{},
		Comments:  []Comment{},
	}

	// Prepend: the feed is most-recent-first by insertion.
	allPosts = append([]Post{post}, allPosts...)
	if err := storage.Set(s.store, storage.KeyPosts, allPosts); err != nil {
		return nil, apperror.NewStorageError("failed to save posts", err)
	}

	view := s.project(&post, author)
	return &view, nil
}

// ToggleLike flips the presence of username in the post's like set: present
// becomes absent, absent becomes present. Two consecutive calls with the same
// arguments return the post to its original state. An unknown post id is
// surfaced as a not-found error.
func (s *postServiceImpl) ToggleLike(postID int64, username string) (*PostView, error) {
	s.store.Lock()

	allPosts, err := storage.Get[[]Post](s.store, storage.KeyPosts)
	if err != nil {
		s.store.Unlock()
		return nil, apperror.NewStorageError("failed to load posts", err)
	}

	idx := findPost(allPosts, postID)
	if idx < 0 {
		s.store.Unlock()
		return nil, apperror.NewNotFoundError(fmt.Sprintf("post %d not found", postID), nil)
	}
	post := &allPosts[idx]

	liked := false
	for i, u := range post.Likes {
		if u == username {
			// Unlike: remove the username from the set.
			post.Likes = append(post.Likes[:i], post.Likes[i+1:]...)
			liked = true
			break
		}
	}
	if !liked {
		post.Likes = append(post.Likes, username)
	}

	if err := storage.Set(s.store, storage.KeyPosts, allPosts); err != nil {
		s.store.Unlock()
		return nil, apperror.NewStorageError("failed to save posts", err)
	}
	// The notifier runs its own read-modify-write cycle against the store, so
	// it must only be called once this cycle's lock is released.
	s.store.Unlock()

	// A fresh like on someone else's post surfaces as a notification; an
	// unlike does not.
	if !liked && s.notifier != nil && post.Author != username {
		s.notifier.NotifyLike(post.Author, username, post.ID)
	}

	view := s.project(post, username)
	return &view, nil
}

// AddComment appends a comment to the post's comment sequence. Blank text
// (after trimming) is rejected; an unknown post id is surfaced as not found.
func (s *postServiceImpl) AddComment(postID int64, author string, text string) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperror.NewValidationError("comment cannot be empty", nil)
	}

	s.store.Lock()

	allPosts, err := storage.Get[[]Post](s.store, storage.KeyPosts)
	if err != nil {
		s.store.Unlock()
		return nil, apperror.NewStorageError("failed to load posts", err)
	}

	idx := findPost(allPosts, postID)
	if idx < 0 {
		s.store.Unlock()
		return nil, apperror.NewNotFoundError(fmt.Sprintf("post %d not found", postID), nil)
	}
	post := &allPosts[idx]

	now := s.now().UTC()
	comment := Comment{
		ID:        nextCommentID(post.Comments, now),
		Author:    author,
		Text:      text,
		CreatedAt: now,
	}
	post.Comments = append(post.Comments, comment)

	if err := storage.Set(s.store, storage.KeyPosts, allPosts); err != nil {
		s.store.Unlock()
		return nil, apperror.NewStorageError("failed to save posts", err)
	}
	// Same ordering constraint as ToggleLike: the notifier takes the store
	// lock itself.
	s.store.Unlock()

	if s.notifier != nil && post.Author != author {
		s.notifier.NotifyComment(post.Author, author, post.ID)
	}

	return &comment, nil
}

// Feed returns the projected post collection for the given viewer, in stored
// (most-recent-first) order.
func (s *postServiceImpl) Feed(viewer string) ([]PostView, error) {
	allPosts, err := storage.Get[[]Post](s.store, storage.KeyPosts)
	if err != nil {
		return nil, apperror.NewStorageError("failed to load posts", err)
	}

	views := make([]PostView, 0, len(allPosts))
	for i := range allPosts {
		views = append(views, s.project(&allPosts[i], viewer))
	}
	return views, nil
}

// GetPost returns the projection of a single post for the given viewer.
func (s *postServiceImpl) GetPost(postID int64, viewer string) (*PostView, error) {
	allPosts, err := storage.Get[[]Post](s.store, storage.KeyPosts)
	if err != nil {
		return nil, apperror.NewStorageError("failed to load posts", err)
	}
	idx := findPost(allPosts, postID)
	if idx < 0 {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("post %d not found", postID), nil)
	}
	view := s.project(&allPosts[idx], viewer)
	return &view, nil
}

// project computes the viewer-dependent projection of a post. Every derived
// number (like count, comment count, liked flag, time label) is recomputed
// from the stored entity on every call; nothing derived is cached.
func (s *postServiceImpl) project(post *Post, viewer string) PostView {
	now := s.now()

	comments := make([]CommentView, 0, len(post.Comments))
	for _, c := range post.Comments {
		comments = append(comments, CommentView{
			ID:        c.ID,
			Author:    c.Author,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
			TimeLabel: RelativeTimeLabel(c.CreatedAt, now),
		})
	}

	return PostView{
		ID:            post.ID,
		Author:        post.Author,
		AuthorPicture: s.profilePicture(post.Author),
		Text:          post.Text,
		Image:         post.Image,
		CreatedAt:     post.CreatedAt,
		TimeLabel:     RelativeTimeLabel(post.CreatedAt, now),
		LikeCount:     len(post.Likes),
		LikedByViewer: post.likedBy(viewer),
		CommentCount:  len(post.Comments),
		Comments:      comments,
	}
}

// profilePicture resolves an author's avatar, falling back to the default when
// the user record is missing or has no picture. The author field is a weak
// reference, so a missing user is not an error here.
func (s *postServiceImpl) profilePicture(username string) string {
	users, err := storage.Get[[]auth.User](s.store, storage.KeyUsers)
	if err != nil {
		return auth.DefaultProfilePicture
	}
	for i := range users {
		if users[i].Username == username {
			if users[i].ProfilePicture != "" {
				return users[i].ProfilePicture
			}
			break
		}
	}
	return auth.DefaultProfilePicture
}

// findPost returns the index of the post with the given id, or -1.
func findPost(posts []Post, id int64) int {
	for i := range posts {
		if posts[i].ID == id {
			return i
		}
	}
	return -1
}

// nextPostID derives a unique id from the creation timestamp (milliseconds),
// bumping by one while the candidate collides with an existing post. Two posts
// created within the same millisecond therefore still get distinct ids.
func nextPostID(posts []Post, now time.Time) int64 {
	id := now.UnixMilli()
	for findPost(posts, id) >= 0 {
		id++
	}
	return id
}

// nextCommentID derives a unique comment id the same way, scoped to one post.
func nextCommentID(comments []Comment, now time.Time) int64 {
	id := now.UnixMilli()
	for {
		collision := false
		for i := range comments {
			if comments[i].ID == id {
				collision = true
				break
			}
		}
		if !collision {
			return id
		}
		id++
	}
}
