package auth

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpha0014/V-Nexus/config"
	"github.com/alpha0014/V-Nexus/storage"
)

func newMiddlewareFixture(t *testing.T) (*AuthService, *config.AuthConfig) {
	t.Helper()
	store, err := storage.Open(&config.StorageConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := &config.AuthConfig{
		JWTSecret:            "test-secret",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 24 * time.Hour,
	}
	return NewAuthService(store, *cfg), cfg
}

// recordingHandler records whether it ran and the username it saw.
func recordingHandler(ran *bool, username *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*ran = true
		*username, _ = UsernameFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestJWTMiddlewarePassesAccessToken(t *testing.T) {
	service, cfg := newMiddlewareFixture(t)

	_, err := service.Register(RegisterRequest{Username: "alice", Email: "a@example.com", Password: "s3cret"})
	require.NoError(t, err)
	tokens, err := service.Login(LoginRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	var ran bool
	var username string
	handler := JWTMiddleware(cfg)(recordingHandler(&ran, &username))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ran)
	assert.Equal(t, "alice", username)
}

func TestJWTMiddlewareRejectsRefreshToken(t *testing.T) {
	service, cfg := newMiddlewareFixture(t)

	_, err := service.Register(RegisterRequest{Username: "alice", Email: "a@example.com", Password: "s3cret"})
	require.NoError(t, err)
	tokens, err := service.Login(LoginRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	var ran bool
	var username string
	handler := JWTMiddleware(cfg)(recordingHandler(&ran, &username))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.RefreshToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ran)
}

func TestJWTMiddlewareRejectsMissingOrMalformedHeader(t *testing.T) {
	_, cfg := newMiddlewareFixture(t)

	var ran bool
	var username string
	handler := JWTMiddleware(cfg)(recordingHandler(&ran, &username))

	// No header at all.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Not a Bearer scheme.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.False(t, ran)
}
