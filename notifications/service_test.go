package notifications

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/config"
	"github.com/alpha0014/V-Nexus/storage"
)

func newTestService(t *testing.T, broadcaster *Broadcaster) *NotificationService {
	t.Helper()
	store, err := storage.Open(&config.StorageConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewNotificationService(store, broadcaster)
}

func TestPublishPrependsNewestFirst(t *testing.T) {
	service := newTestService(t, nil)

	_, err := service.Publish(TypeSystem, "", "", "older")
	require.NoError(t, err)
	_, err = service.Publish(TypeLike, "bob", "alice", "newer")
	require.NoError(t, err)

	list, err := service.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "newer", list[0].Message)
	assert.Equal(t, "older", list[1].Message)
	assert.NotEmpty(t, list[0].ID)
	assert.NotEqual(t, list[0].ID, list[1].ID)
}

func TestDismissRemovesEntry(t *testing.T) {
	service := newTestService(t, nil)

	n, err := service.Publish(TypeSystem, "", "", "dismiss me")
	require.NoError(t, err)

	require.NoError(t, service.Dismiss(n.ID))

	list, err := service.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	err = service.Dismiss(n.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDismissUnknownIDIsNotFound(t *testing.T) {
	service := newTestService(t, nil)

	err := service.Dismiss("no-such-id")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestPublishBroadcastsToSubscribers(t *testing.T) {
	broadcaster := NewBroadcaster()
	service := newTestService(t, broadcaster)

	_, events := broadcaster.Subscribe()

	published, err := service.Publish(TypeComment, "bob", "alice", "bob commented on your post")
	require.NoError(t, err)

	// The subscriber channel is buffered, so the event is already there.
	event := <-events
	assert.Equal(t, "notification", event.Event)

	var received Notification
	require.NoError(t, json.Unmarshal([]byte(event.Data), &received))
	assert.Equal(t, published.ID, received.ID)
	assert.Equal(t, TypeComment, received.Type)
	assert.Equal(t, "bob", received.Actor)
	assert.Equal(t, "alice", received.Recipient)
}

func TestNotifierContractPublishesEntries(t *testing.T) {
	service := newTestService(t, nil)

	service.NotifyLike("alice", "bob", 42)
	service.NotifyComment("alice", "carol", 42)

	list, err := service.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, TypeComment, list[0].Type)
	assert.Equal(t, "carol", list[0].Actor)
	assert.Equal(t, "alice", list[0].Recipient)
	assert.Equal(t, TypeLike, list[1].Type)
	assert.Equal(t, "bob", list[1].Actor)
	assert.Equal(t, "alice", list[1].Recipient)
}

func TestSeedDefaultsPopulatesOnce(t *testing.T) {
	service := newTestService(t, nil)

	require.NoError(t, service.SeedDefaults())
	seeded, err := service.List()
	require.NoError(t, err)
	require.NotEmpty(t, seeded)

	require.NoError(t, service.SeedDefaults())
	again, err := service.List()
	require.NoError(t, err)
	assert.Equal(t, seeded, again)
}
