// Package auth, as part of the authentication module.
// This file, `middleware.go`, defines HTTP middleware related to authentication.
// Middleware process requests before they reach the route handlers and are used
// for cross-cutting concerns such as verifying tokens.
package auth

import (
	"context"
	"fmt"
	"net/http"
	// `strings` for string manipulation (e.g., splitting the Authorization header).
	"strings"

	// `jwt` library for JWT parsing and validation.
	"github.com/golang-jwt/jwt/v5"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/config"
)

// ContextKey is a type used for context keys to avoid collisions.
// Using a custom type for context keys is a Go idiom that prevents key
// collisions between different packages.
type ContextKey string

const (
	// UsernameKey is the key under which the authenticated username is stored
	// in the request context.
	UsernameKey ContextKey = "username"
)

// JWTMiddleware creates a new JWT authentication middleware.
// It verifies the token from the Authorization header and adds the
// authenticated username to the request context. The returned middleware
// conforms to the standard `func(next http.Handler) http.Handler` pattern.
func JWTMiddleware(cfg *config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError("Authorization header is missing", nil))
				return
			}

			// The Authorization header should be in the format "Bearer {token}".
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				WriteError(w, r, apperror.NewAuthError("Authorization header format must be Bearer {token}", nil))
				return
			}

			tokenString := parts[1]
			claims := &CustomClaims{}

			// Parse and validate the token. The key function provides the
			// secret key used for verifying the token's signature.
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(cfg.JWTSecret), nil
			})

			if err != nil {
				WriteError(w, r, apperror.NewAuthError(fmt.Sprintf("Invalid token: %v", err), err))
				return
			}

			if !token.Valid {
				WriteError(w, r, apperror.NewAuthError("Invalid token", nil))
				return
			}

			// Only access tokens may authenticate requests; a refresh token in
			// the Authorization header is rejected.
			if claims.TokenType != tokenTypeAccess {
				WriteError(w, r, apperror.NewAuthError("Invalid token: not an access token", nil))
				return
			}

			if claims.Username == "" {
				WriteError(w, r, apperror.NewAuthError("Invalid token: username claim is missing", nil))
				return
			}

			// Make the username available to subsequent handlers in the chain.
			ctx := context.WithValue(r.Context(), UsernameKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UsernameFromContext retrieves the authenticated username from the request
// context. Returns "" and false if no username was recorded.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}
