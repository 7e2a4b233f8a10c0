package friends

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/config"
	"github.com/alpha0014/V-Nexus/storage"
)

func newTestService(t *testing.T) *FriendService {
	t.Helper()
	store, err := storage.Open(&config.StorageConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewFriendService(store)
}

func TestListBeforeSeedingIsEmpty(t *testing.T) {
	service := newTestService(t)

	list, err := service.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSeedDefaultsPopulatesOnce(t *testing.T) {
	service := newTestService(t)

	require.NoError(t, service.SeedDefaults())
	seeded, err := service.List()
	require.NoError(t, err)
	require.NotEmpty(t, seeded)

	// A second seeding leaves the collection alone.
	require.NoError(t, service.SeedDefaults())
	again, err := service.List()
	require.NoError(t, err)
	assert.Equal(t, seeded, again)
}

func TestRemoveDeletesEdge(t *testing.T) {
	service := newTestService(t)
	require.NoError(t, service.SeedDefaults())

	before, err := service.List()
	require.NoError(t, err)
	require.NotEmpty(t, before)
	removed := before[0]

	require.NoError(t, service.Remove(removed.ID))

	after, err := service.List()
	require.NoError(t, err)
	assert.Len(t, after, len(before)-1)
	for _, f := range after {
		assert.NotEqual(t, removed.ID, f.ID)
	}

	// The edge is gone, not tombstoned: removing it again is not found.
	err = service.Remove(removed.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestRemoveUnknownIDIsNotFound(t *testing.T) {
	service := newTestService(t)
	require.NoError(t, service.SeedDefaults())

	err := service.Remove("no-such-id")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestRemovalsSurviveReseeding(t *testing.T) {
	service := newTestService(t)
	require.NoError(t, service.SeedDefaults())

	all, err := service.List()
	require.NoError(t, err)
	for _, f := range all {
		require.NoError(t, service.Remove(f.ID))
	}

	// An emptied collection still counts as present: startup seeding must not
	// resurrect removed friends.
	require.NoError(t, service.SeedDefaults())
	list, err := service.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}
