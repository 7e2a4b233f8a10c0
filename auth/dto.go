// Package auth provides authentication and authorization functionality.
// This file, `dto.go` (Data Transfer Object), defines structures used for
// transferring data in API requests and responses related to authentication.
package auth

import "time"

// RegisterRequest represents the registration request payload.
// Struct tags `json:"..."` define how these fields map to JSON keys;
// `example:"..."` tags feed the generated API documentation.
type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"pw123"`
}

// LoginRequest represents the login request payload. Login is by exact
// username match only.
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"pw123"`
}

// TokenResponse represents the authentication token response returned to the
// client upon successful login or token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType    string `json:"token_type" example:"Bearer"`
	// ExpiresIn is the unix timestamp at which the access token expires.
	ExpiresIn int64 `json:"expires_in" example:"1735689600"`
}

// RefreshTokenRequest represents the token refresh request payload.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// SessionResponse describes the persisted session marker for API clients.
type SessionResponse struct {
	Username   string    `json:"username" example:"alice"`
	LoggedInAt time.Time `json:"logged_in_at" example:"2024-06-01T10:30:00Z"`
}
