package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpha0014/V-Nexus/config"
)

func newTestStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(&config.StorageConfig{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGetAbsentKeyYieldsZeroValue(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "test.db"))

	users, err := Get[[]string](store, "users")
	require.NoError(t, err)
	assert.Nil(t, users)

	type record struct {
		Name string `json:"name"`
	}
	r, err := Get[record](store, "record")
	require.NoError(t, err)
	assert.Equal(t, record{}, r)
}

func TestSetGetRoundTrip(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "test.db"))

	require.NoError(t, Set(store, "posts", []string{"a", "b"}))

	got, err := Get[[]string](store, "posts")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	// Last write wins.
	require.NoError(t, Set(store, "posts", []string{"c"}))
	got, err = Get[[]string](store, "posts")
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, got)
}

func TestGetIntoKeepsDefaultsForMissingFields(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "test.db"))

	type prefs struct {
		Theme    string `json:"theme"`
		Language string `json:"language"`
	}

	// Stored document carries only one of the two fields.
	require.NoError(t, Set(store, "settings", map[string]string{"theme": "dark"}))

	got := prefs{Theme: "light", Language: "en"}
	require.NoError(t, GetInto(store, "settings", &got))
	assert.Equal(t, "dark", got.Theme)
	assert.Equal(t, "en", got.Language)

	// Absent key leaves the value untouched.
	untouched := prefs{Theme: "light", Language: "en"}
	require.NoError(t, GetInto(store, "missing", &untouched))
	assert.Equal(t, prefs{Theme: "light", Language: "en"}, untouched)
}

func TestRemoveAndHas(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "test.db"))

	require.NoError(t, Set(store, "session", "alice"))

	ok, err := store.Has("session")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Remove("session"))
	ok, err = store.Has("session")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is a no-op.
	require.NoError(t, store.Remove("session"))
}

func TestDocumentsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(&config.StorageConfig{Path: path})
	require.NoError(t, err)
	require.NoError(t, Set(store, "users", []string{"alice"}))
	require.NoError(t, store.Close())

	reopened := newTestStore(t, path)
	got, err := Get[[]string](reopened, "users")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, got)
}
