package messaging

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

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(&config.StorageConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestConversationsBeforeSeedingIsEmpty(t *testing.T) {
	service := NewMessagingService(newTestStore(t), nil)

	list, err := service.Conversations()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSeedDefaultsPopulatesOnce(t *testing.T) {
	service := NewMessagingService(newTestStore(t), nil)

	require.NoError(t, service.SeedDefaults())
	seeded, err := service.Conversations()
	require.NoError(t, err)
	require.NotEmpty(t, seeded)

	require.NoError(t, service.SeedDefaults())
	again, err := service.Conversations()
	require.NoError(t, err)
	assert.Equal(t, seeded, again)
}

func TestSendMessageRejectsEmptyText(t *testing.T) {
	service := NewMessagingService(newTestStore(t), nil)
	require.NoError(t, service.SeedDefaults())

	conversations, err := service.Conversations()
	require.NoError(t, err)

	_, err = service.SendMessage(conversations[0].ID, "alice", "   ")
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
}

func TestSendMessageUnknownConversationIsNotFound(t *testing.T) {
	service := NewMessagingService(newTestStore(t), nil)
	require.NoError(t, service.SeedDefaults())

	_, err := service.SendMessage("no-such-id", "alice", "hello")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestSendMessageAppendsAndPersists(t *testing.T) {
	service := NewMessagingService(newTestStore(t), nil)
	require.NoError(t, service.SeedDefaults())

	conversations, err := service.Conversations()
	require.NoError(t, err)
	convID := conversations[0].ID
	before, err := service.GetConversation(convID)
	require.NoError(t, err)

	message, err := service.SendMessage(convID, "alice", "hey there")
	require.NoError(t, err)
	assert.Equal(t, "alice", message.Sender)
	assert.Equal(t, "hey there", message.Text)

	after, err := service.GetConversation(convID)
	require.NoError(t, err)
	require.Len(t, after.Messages, len(before.Messages)+1)
	last := after.Messages[len(after.Messages)-1]
	assert.Equal(t, message.ID, last.ID)
	assert.Equal(t, "hey there", last.Text)
}

func TestSentMessageReceivesSyntheticReply(t *testing.T) {
	store := newTestStore(t)

	worker := NewReplyWorker(store, config.MessagingConfig{ReplyDelay: 10 * time.Millisecond, ReplyWorkers: 1})
	stopChan := make(chan struct{})
	worker.Start(stopChan)
	defer close(stopChan)

	service := NewMessagingService(store, worker)
	require.NoError(t, service.SeedDefaults())

	conversations, err := service.Conversations()
	require.NoError(t, err)
	convID := conversations[0].ID
	participant := conversations[0].Participant

	_, err = service.SendMessage(convID, "alice", "are you there?")
	require.NoError(t, err)

	// Exactly one reply lands after the configured delay, authored by the
	// conversation's remote participant and persisted like any message.
	require.Eventually(t, func() bool {
		conv, err := service.GetConversation(convID)
		if err != nil {
			return false
		}
		last := conv.Messages[len(conv.Messages)-1]
		return last.Sender == participant && last.Text != "are you there?"
	}, 2*time.Second, 10*time.Millisecond)

	conv, err := service.GetConversation(convID)
	require.NoError(t, err)
	last := conv.Messages[len(conv.Messages)-1]
	assert.Equal(t, participant, last.Sender)
	assert.Contains(t, cannedReplies, last.Text)
}

func TestEnqueueAfterStopIsRejected(t *testing.T) {
	store := newTestStore(t)

	worker := NewReplyWorker(store, config.MessagingConfig{ReplyDelay: time.Millisecond, ReplyWorkers: 1})
	stopChan := make(chan struct{})
	worker.Start(stopChan)
	close(stopChan)

	// Give the watcher a moment to flip the stopped flag.
	require.Eventually(t, func() bool {
		return !worker.Enqueue("any")
	}, time.Second, 5*time.Millisecond)
}
