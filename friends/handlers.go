// Package friends, as part of the friends module.
// This file, `handlers.go`, handles HTTP requests for the friends list.
package friends

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alpha0014/V-Nexus/auth"
)

// FriendHandlers provides HTTP handlers for the friends list.
type FriendHandlers struct {
	service *FriendService
}

// NewFriendHandlers creates new FriendHandlers.
func NewFriendHandlers(service *FriendService) *FriendHandlers {
	return &FriendHandlers{service: service}
}

// RegisterRoutes registers the friends routes. The group is mounted behind the
// JWT middleware.
func (h *FriendHandlers) RegisterRoutes(router chi.Router) {
	router.Get("/", h.listFriends)
	router.Delete("/{friendID}", h.removeFriend)
}

// FriendsResponse wraps the friends collection.
type FriendsResponse struct {
	Friends []Friend `json:"friends"`
}

// listFriends godoc
// @Summary List friends
// @Description Returns the authenticated user's friends list in stored order.
// @Tags Friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} friends.FriendsResponse "The friends list"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/friends [get]
func (h *FriendHandlers) listFriends(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List()
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(FriendsResponse{Friends: list})
}

// removeFriend godoc
// @Summary Remove a friend
// @Description Deletes the friend edge with the given id.
// @Tags Friends
// @Security BearerAuth
// @Param friendID path string true "Friend ID"
// @Success 204 "No Content"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - Friend not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/friends/{friendID} [delete]
func (h *FriendHandlers) removeFriend(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Remove(chi.URLParam(r, "friendID")); err != nil {
		auth.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
