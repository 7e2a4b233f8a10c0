package auth

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/config"
	"github.com/alpha0014/V-Nexus/storage"
)

func newTestService(t *testing.T) (*AuthService, *storage.Store) {
	t.Helper()
	store, err := storage.Open(&config.StorageConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	service := NewAuthService(store, config.AuthConfig{
		JWTSecret:            "test-secret",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 24 * time.Hour,
	})
	return service, store
}

func TestRegisterPersistsUserWithDefaults(t *testing.T) {
	service, store := newTestService(t)

	user, err := service.Register(RegisterRequest{Username: "alice", Email: "Alice@Example.com", Password: "s3cret"})
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, DefaultBio, user.Bio)
	assert.Equal(t, DefaultProfilePicture, user.ProfilePicture)
	assert.NotEqual(t, "s3cret", user.HashedPassword)
	assert.False(t, user.JoinDate.IsZero())

	users, err := storage.Get[[]User](store, storage.KeyUsers)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	service, store := newTestService(t)

	_, err := service.Register(RegisterRequest{Username: "alice", Email: "a@example.com", Password: "one"})
	require.NoError(t, err)

	_, err = service.Register(RegisterRequest{Username: "alice", Email: "b@example.com", Password: "two"})
	require.Error(t, err)
	assert.True(t, apperror.IsConflictError(err))

	// The failed registration must not have touched the collection.
	users, err := storage.Get[[]User](store, storage.KeyUsers)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRegisterDoesNotLogIn(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Register(RegisterRequest{Username: "alice", Email: "a@example.com", Password: "s3cret"})
	require.NoError(t, err)

	_, err = service.Current()
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestLoginSuccessIssuesTokensAndSession(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Register(RegisterRequest{Username: "alice", Email: "a@example.com", Password: "s3cret"})
	require.NoError(t, err)

	tokens, err := service.Login(LoginRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "Bearer", tokens.TokenType)

	session, err := service.Current()
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username)
	assert.False(t, session.LoggedInAt.IsZero())
}

func TestLoginFailuresCollapseIntoOneError(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Register(RegisterRequest{Username: "alice", Email: "a@example.com", Password: "s3cret"})
	require.NoError(t, err)

	_, wrongPassword := service.Login(LoginRequest{Username: "alice", Password: "nope"})
	require.Error(t, wrongPassword)
	assert.True(t, apperror.IsAuthError(wrongPassword))

	_, unknownUser := service.Login(LoginRequest{Username: "bob", Password: "s3cret"})
	require.Error(t, unknownUser)
	assert.True(t, apperror.IsAuthError(unknownUser))

	// Same message for both, so responses don't reveal which half was wrong.
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())

	// A failed login must not create a session.
	_, err = service.Current()
	assert.True(t, apperror.IsNotFound(err))
}

func TestLogoutClearsSession(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Register(RegisterRequest{Username: "alice", Email: "a@example.com", Password: "s3cret"})
	require.NoError(t, err)
	_, err = service.Login(LoginRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	require.NoError(t, service.Logout())
	_, err = service.Current()
	assert.True(t, apperror.IsNotFound(err))

	// Logging out twice is a no-op, not an error.
	require.NoError(t, service.Logout())
}

func TestRefreshTokenIssuesNewAccessToken(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Register(RegisterRequest{Username: "alice", Email: "a@example.com", Password: "s3cret"})
	require.NoError(t, err)
	tokens, err := service.Login(LoginRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	refreshed, err := service.RefreshToken(tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	// The refresh token is returned unchanged, not rotated.
	assert.Equal(t, tokens.RefreshToken, refreshed.RefreshToken)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Register(RegisterRequest{Username: "alice", Email: "a@example.com", Password: "s3cret"})
	require.NoError(t, err)
	tokens, err := service.Login(LoginRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	_, err = service.RefreshToken(tokens.AccessToken)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestUsersSurviveStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	authCfg := config.AuthConfig{
		JWTSecret:            "test-secret",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 24 * time.Hour,
	}

	store, err := storage.Open(&config.StorageConfig{Path: path})
	require.NoError(t, err)
	_, err = NewAuthService(store, authCfg).Register(RegisterRequest{Username: "alice", Email: "a@example.com", Password: "s3cret"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := storage.Open(&config.StorageConfig{Path: path})
	require.NoError(t, err)
	defer reopened.Close()

	_, err = NewAuthService(reopened, authCfg).Login(LoginRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
}
