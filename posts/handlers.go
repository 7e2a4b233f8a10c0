// Package posts, as part of the feed module.
// This file, `handlers.go`, handles HTTP requests for the feed. It acts as the
// "Controller" layer: decode, delegate to PostService, encode.
package posts

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/auth"
)

// PostHandler handles HTTP requests for posts.
type PostHandler struct {
	service PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service PostService) *PostHandler {
	return &PostHandler{service: service}
}

// RegisterRoutes registers the feed API routes with a chi router. The group
// is expected to be mounted behind the JWT middleware, so every handler can
// rely on an authenticated username in the context.
func (h *PostHandler) RegisterRoutes(router chi.Router) {
	router.Get("/", h.feed)
	router.Post("/", h.createPost)
	router.Get("/{postID}", h.getPost)
	router.Post("/{postID}/like", h.toggleLike)
	router.Post("/{postID}/comments", h.addComment)
}

// feed godoc
// @Summary Get the post feed
// @Description Returns all posts, most recent first, projected for the authenticated viewer.
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} posts.FeedResponse "The projected feed"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/posts [get]
func (h *PostHandler) feed(w http.ResponseWriter, r *http.Request) {
	viewer, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("user not authenticated", nil))
		return
	}

	views, err := h.service.Feed(viewer)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, FeedResponse{Posts: views})
}

// createPost godoc
// @Summary Create a post
// @Description Creates a new post with text and/or an image data URL; prepends it to the feed.
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postBody body posts.NewPostRequest true "Post contents"
// @Success 201 {object} posts.PostView "The created post, projected"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Post is empty"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/posts [post]
func (h *PostHandler) createPost(w http.ResponseWriter, r *http.Request) {
	author, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("user not authenticated", nil))
		return
	}

	var req NewPostRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields() // Error if extra fields are sent.
	if err := decoder.Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
		return
	}
	defer r.Body.Close()

	view, err := h.service.CreatePost(author, req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, view)
}

// getPost godoc
// @Summary Get a single post
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param postID path int true "Post ID"
// @Success 200 {object} posts.PostView "The projected post"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - Unknown post id"
// @Router /api/v1/posts/{postID} [get]
func (h *PostHandler) getPost(w http.ResponseWriter, r *http.Request) {
	viewer, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("user not authenticated", nil))
		return
	}

	postID, err := parsePostID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	view, err := h.service.GetPost(postID, viewer)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// toggleLike godoc
// @Summary Toggle a like
// @Description Adds the viewer to the post's like set if absent, removes them if present.
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param postID path int true "Post ID"
// @Success 200 {object} posts.PostView "The projected post after the toggle"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - Unknown post id"
// @Router /api/v1/posts/{postID}/like [post]
func (h *PostHandler) toggleLike(w http.ResponseWriter, r *http.Request) {
	username, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("user not authenticated", nil))
		return
	}

	postID, err := parsePostID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	view, err := h.service.ToggleLike(postID, username)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// addComment godoc
// @Summary Add a comment
// @Description Appends a comment to the post's comment sequence.
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postID path int true "Post ID"
// @Param commentBody body posts.NewCommentRequest true "Comment text"
// @Success 201 {object} posts.Comment "The created comment"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Comment is blank"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - Unknown post id"
// @Router /api/v1/posts/{postID}/comments [post]
func (h *PostHandler) addComment(w http.ResponseWriter, r *http.Request) {
	author, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("user not authenticated", nil))
		return
	}

	postID, err := parsePostID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	var req NewCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
		return
	}
	defer r.Body.Close()

	comment, err := h.service.AddComment(postID, author, req.Text)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

// parsePostID extracts and parses the {postID} URL parameter.
func parsePostID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "postID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.NewBadRequestError("invalid post id: "+raw, err)
	}
	return id, nil
}

// writeJSON serializes data to JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}
