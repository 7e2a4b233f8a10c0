// Package auth, as part of the authentication module.
// This file, `handlers.go`, handles HTTP requests related to authentication.
// It acts as the "Controller" layer: decode the request, delegate to the
// service, encode the response or the error.
package auth

import (
	"encoding/json"
	"net/http"

	"github.com/alpha0014/V-Nexus/apperror"
)

// Handlers wraps the AuthService to provide HTTP handlers.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary User Registration
// @Description Registers a new user with a default profile picture and bio. Does not log the user in.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "User registration details"
// @Success 201 {object} auth.User "User created successfully"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Invalid input or missing fields"
// @Failure 409 {object} apperror.ErrorResponse "Conflict - Username already exists"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /auth/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		// Basic validation; richer rules live in the service.
		if req.Username == "" || req.Email == "" || req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("username, email, and password are required", nil))
			return
		}

		user, err := h.service.Register(req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		// Ensure the hashed password never leaves the store through a response.
		user.HashedPassword = ""
		writeJSON(w, http.StatusCreated, user)
	}
}

// HandleLogin godoc
// @Summary User Login
// @Description Logs in an existing user, records the session marker, and returns access and refresh tokens.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.TokenResponse "Login successful, tokens provided"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Invalid input or missing fields"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid credentials"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Username == "" || req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("username and password are required", nil))
			return
		}

		resp, err := h.service.Login(req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleLogout godoc
// @Summary User Logout
// @Description Removes the persisted session marker.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 204 "Session marker removed"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /auth/logout [post]
func (h *Handlers) HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.service.Logout(); err != nil {
			WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleSession godoc
// @Summary Current Session
// @Description Returns the persisted session marker, if any.
// @Tags Auth
// @Produce json
// @Success 200 {object} auth.SessionResponse "Active session"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - No active session"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /auth/session [get]
func (h *Handlers) HandleSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := h.service.Current()
		if err != nil {
			WriteError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SessionResponse{
			Username:   session.Username,
			LoggedInAt: session.LoggedInAt,
		})
	}
}

// HandleRefreshToken godoc
// @Summary Refresh Access Token
// @Description Provides a new access token using a valid refresh token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param refreshBody body auth.RefreshTokenRequest true "Refresh token details"
// @Success 200 {object} auth.TokenResponse "Tokens refreshed successfully"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Invalid input or missing refresh token"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid or expired refresh token"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /auth/refresh [post]
func (h *Handlers) HandleRefreshToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()
		if req.RefreshToken == "" {
			WriteError(w, r, apperror.NewBadRequestError("refresh_token is required", nil))
			return
		}

		resp, err := h.service.RefreshToken(req.RefreshToken)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// Helper functions for writing responses.
// These helpers centralize response writing logic.

// writeJSON serializes `data` to JSON and writes it with the given status.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil { // Avoid writing nil, which would produce a "null" body
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError uses the apperror system to write standardized error responses.
// It converts any error into a standardized `apperror.ErrorResponse`; errors
// that are not already AppErrors are wrapped as internal errors so every
// failure leaves the API in the same JSON shape.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred: "+err.Error(), err)
	}
	writeJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
