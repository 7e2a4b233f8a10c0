// Package users, as part of the profile module.
// This file, `handlers.go`, handles HTTP requests related to profiles.
package users

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/auth"
)

// UserHandlers provides HTTP handlers for profile management.
type UserHandlers struct {
	service *UserService
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{service: service}
}

// RegisterRoutes registers the profile routes. The group is mounted behind the
// JWT middleware.
func (h *UserHandlers) RegisterRoutes(router chi.Router) {
	router.Get("/me", h.getOwnProfile)
	router.Put("/me", h.updateOwnProfile)
	router.Post("/me/picture", h.uploadPicture)
	router.Get("/{username}", h.getProfile)
}

// getOwnProfile godoc
// @Summary Get current user's profile
// @Description Retrieves the aggregated profile view (derived stats, recent posts) for the authenticated user.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users.ProfileResponse "The profile view"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - User not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/users/me [get]
func (h *UserHandlers) getOwnProfile(w http.ResponseWriter, r *http.Request) {
	username, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("user not authenticated", nil))
		return
	}
	h.respondWithProfile(w, r, username)
}

// getProfile godoc
// @Summary Get a user's profile
// @Description Retrieves the aggregated profile view for any user by username.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} users.ProfileResponse "The profile view"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - User not found"
// @Router /api/v1/users/{username} [get]
func (h *UserHandlers) getProfile(w http.ResponseWriter, r *http.Request) {
	h.respondWithProfile(w, r, chi.URLParam(r, "username"))
}

func (h *UserHandlers) respondWithProfile(w http.ResponseWriter, r *http.Request, username string) {
	profile, err := h.service.GetProfile(username)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(profile)
}

// updateOwnProfile godoc
// @Summary Update current user's profile
// @Description Applies a partial update (email, bio, profile picture) to the authenticated user's record.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileBody body users.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} users.ProfileResponse "The updated profile view"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - No fields provided"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - User not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/users/me [put]
func (h *UserHandlers) updateOwnProfile(w http.ResponseWriter, r *http.Request) {
	username, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("user not authenticated", nil))
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("invalid request payload", err))
		return
	}
	defer r.Body.Close()

	if req.Email == nil && req.Bio == nil && req.ProfilePicture == nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("no fields provided for update", nil))
		return
	}

	profile, err := h.service.UpdateProfile(username, &req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(profile)
}

// uploadPicture godoc
// @Summary Upload a profile picture
// @Description Accepts a multipart image upload, converts it to a data URL, stores it on the user record, and returns it.
// @Tags Users
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 200 {object} users.PictureResponse "The stored data URL"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Missing or non-image file"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/users/me/picture [post]
func (h *UserHandlers) uploadPicture(w http.ResponseWriter, r *http.Request) {
	username, ok := auth.UsernameFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("user not authenticated", nil))
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("missing 'image' form file", err))
		return
	}
	defer file.Close()

	dataURL, err := DataURLFromUpload(file)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	if _, err := h.service.UpdateProfile(username, &UpdateProfileRequest{ProfilePicture: &dataURL}); err != nil {
		auth.WriteError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(PictureResponse{DataURL: dataURL})
}
