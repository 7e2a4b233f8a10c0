// Package auth is responsible for handling authentication and authorization
// logic: user registration, login against the stored user collection, the
// persisted session marker, and JWT generation/validation for the HTTP surface.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	// Third-party library for JWT handling. `jwt/v5` indicates version 5.
	"github.com/golang-jwt/jwt/v5"
	// Library for password hashing using bcrypt.
	"golang.org/x/crypto/bcrypt"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/config"
	"github.com/alpha0014/V-Nexus/storage"
)

// Constants defining token types.
const (
	// tokenTypeAccess is a string constant for access tokens.
	tokenTypeAccess = "access"
	// tokenTypeRefresh is a string constant for refresh tokens.
	tokenTypeRefresh = "refresh"
)

// AuthService provides authentication-related services.
// Dependencies (the store and the auth configuration) are injected explicitly
// via the constructor, the usual Go substitute for a DI container.
type AuthService struct {
	store      *storage.Store
	authConfig config.AuthConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(store *storage.Store, authConfig config.AuthConfig) *AuthService {
	return &AuthService{
		store:      store,
		authConfig: authConfig,
	}
}

// CustomClaims embeds jwt.RegisteredClaims and adds custom fields.
// The username is the application's natural user key, so it is the identity
// claim carried by every token.
type CustomClaims struct {
	Username  string `json:"username"`
	TokenType string `json:"token_type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// Register creates a new user. The username must be unique within the user
// collection; a duplicate fails with a conflict error. Registration does NOT
// log the new user in — the client is expected to go through Login afterwards.
func (s *AuthService) Register(req RegisterRequest) (*User, error) {
	// Hash the user's password using bcrypt. bcrypt is a strong, adaptive hashing algorithm.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		// `fmt.Errorf` with `%w` wraps the original error, allowing `errors.Is`
		// or `errors.As` to inspect the error chain.
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := User{
		Username:       req.Username,
		HashedPassword: string(hashedPassword),
		// It's good practice to store emails in a consistent case, usually lowercase.
		Email:          strings.ToLower(req.Email),
		Bio:            DefaultBio,
		ProfilePicture: DefaultProfilePicture,
		JoinDate:       time.Now().UTC(),
	}

	// The whole read-check-append-write cycle runs under the store lock so two
	// racing registrations cannot both pass the uniqueness check.
	s.store.Lock()
	defer s.store.Unlock()

	users, err := storage.Get[[]User](s.store, storage.KeyUsers)
	if err != nil {
		return nil, apperror.NewStorageError("failed to load users", err)
	}

	for _, existing := range users {
		if existing.Username == req.Username {
			return nil, apperror.NewConflictError("username already exists", nil)
		}
	}

	users = append(users, user)
	if err := storage.Set(s.store, storage.KeyUsers, users); err != nil {
		return nil, apperror.NewStorageError("failed to save users", err)
	}

	return &user, nil
}

// Login authenticates a user by exact username match and password comparison.
// On success it persists the session marker and returns tokens. Both "no such
// user" and "wrong password" collapse into the same invalid-credentials error,
// to avoid revealing which half was wrong.
func (s *AuthService) Login(req LoginRequest) (*TokenResponse, error) {
	s.store.Lock()
	defer s.store.Unlock()

	users, err := storage.Get[[]User](s.store, storage.KeyUsers)
	if err != nil {
		return nil, apperror.NewStorageError("failed to load users", err)
	}

	var user *User
	for i := range users {
		if users[i].Username == req.Username {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return nil, apperror.NewAuthError("invalid username or password", nil)
	}

	// `bcrypt.CompareHashAndPassword` handles the comparison securely; a
	// mismatch yields `bcrypt.ErrMismatchedHashAndPassword`.
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, apperror.NewAuthError("invalid username or password", nil)
	}

	// Record the session marker. Its presence is the whole of the session
	// state; there is no separate expiry of the marker.
	session := Session{Username: user.Username, LoggedInAt: time.Now().UTC()}
	if err := storage.Set(s.store, storage.KeySession, session); err != nil {
		return nil, apperror.NewStorageError("failed to save session", err)
	}

	return s.generateTokens(user.Username)
}

// Logout removes the persisted session marker. Logging out without an active
// session is a no-op, matching remove semantics of the storage surface.
func (s *AuthService) Logout() error {
	s.store.Lock()
	defer s.store.Unlock()
	if err := s.store.Remove(storage.KeySession); err != nil {
		return apperror.NewStorageError("failed to remove session", err)
	}
	return nil
}

// Current returns the persisted session marker, or a not-found error when no
// username is recorded.
func (s *AuthService) Current() (*Session, error) {
	session, err := storage.Get[Session](s.store, storage.KeySession)
	if err != nil {
		return nil, apperror.NewStorageError("failed to load session", err)
	}
	if session.Username == "" {
		return nil, apperror.NewNotFoundError("no active session", nil)
	}
	return &session, nil
}

// GetUserByUsername retrieves a user by their username.
func (s *AuthService) GetUserByUsername(username string) (*User, error) {
	users, err := storage.Get[[]User](s.store, storage.KeyUsers)
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

// RefreshToken generates a new access token based on a valid refresh token.
func (s *AuthService) RefreshToken(refreshTokenString string) (*TokenResponse, error) {
	// Validate the incoming refresh token.
	claims, err := s.validateToken(refreshTokenString, tokenTypeRefresh)
	if err != nil {
		return nil, apperror.NewAuthError(fmt.Sprintf("invalid refresh token: %s", err.Error()), err)
	}

	// Generate a new access token; the refresh token is returned unchanged
	// rather than rotated.
	newAccessToken, newAccessExpiresAt, err := s.generateSpecificToken(claims.Username, tokenTypeAccess, s.authConfig.AccessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new access token: %w", err)
	}

	return &TokenResponse{
		AccessToken:  newAccessToken,
		RefreshToken: refreshTokenString,
		TokenType:    "Bearer",
		ExpiresIn:    newAccessExpiresAt.Unix(),
	}, nil
}

// generateTokens is a helper function to create both access and refresh tokens for a user.
func (s *AuthService) generateTokens(username string) (*TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.generateSpecificToken(username, tokenTypeAccess, s.authConfig.AccessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := s.generateSpecificToken(username, tokenTypeRefresh, s.authConfig.RefreshTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		// `ExpiresIn` refers to the access token's expiration.
		ExpiresIn: accessExpiresAt.Unix(),
	}, nil
}

// generateSpecificToken creates a JWT with specified claims, type, and duration.
func (s *AuthService) generateSpecificToken(username string, tokenType string, duration time.Duration) (string, time.Time, error) {
	expirationTime := time.Now().Add(duration)
	claims := &CustomClaims{
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "vnexus",
			Subject:   username,
		},
	}

	// Create a new token object with the HS256 signing method and sign it with
	// the configured secret.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.authConfig.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, expirationTime, nil
}

// validateToken parses and validates a JWT string.
// It checks the signature, expiration, and expected token type.
func (s *AuthService) validateToken(tokenString string, expectedTokenType string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	// The key function provides the secret used for signature verification.
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			// Ensure the token's signing method is HMAC, as expected.
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.authConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	// Verify that the token type matches the expected type ("access" or "refresh").
	if claims.TokenType != expectedTokenType {
		return nil, fmt.Errorf("invalid token type: expected %s, got %s", expectedTokenType, claims.TokenType)
	}

	return claims, nil
}
