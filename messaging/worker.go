// Package messaging, as part of the messaging module.
// This file, `worker.go`, contains the background reply worker. Sent messages
// enqueue a reply job; a small pool of workers picks jobs up, waits the
// configured delay, and appends a synthetic reply to the conversation. The
// pool shuts down gracefully via a stop channel, finishing in-flight replies
// before exiting.
package messaging

import (
	"fmt"
	"log"
	"math/rand"
	// `sync` provides the WaitGroup tracking worker goroutines and the mutex
	// guarding the enqueue/stop race.
	"sync"
	"time"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/config"
	"github.com/alpha0014/V-Nexus/storage"
)

// replyJobBuffer is the capacity of the job queue. Enqueueing is non-blocking;
// a full queue drops the reply rather than stalling the send path.
const replyJobBuffer = 16

// cannedReplies is the fixed reply set a synthetic reply is drawn from,
// uniformly at random.
var cannedReplies = []string{
	"That sounds great!",
	"Haha, totally agree.",
	"Tell me more about that!",
	"Nice! I was just thinking the same thing.",
	"Sounds good, let's do it.",
	"Oh wow, I didn't know that!",
	"Catch you later!",
}

// replyJob is a work order for one synthetic reply.
type replyJob struct {
	ConversationID string
}

// ReplyWorker owns the job queue and the worker pool behind the messaging
// simulation.
type ReplyWorker struct {
	store *storage.Store
	cfg   config.MessagingConfig
	jobs  chan replyJob

	// mu guards stopped: Enqueue must never send on a closed jobs channel, so
	// the shutdown path flips stopped under the same lock before closing.
	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

// NewReplyWorker creates a ReplyWorker. Call Start to launch the pool.
func NewReplyWorker(store *storage.Store, cfg config.MessagingConfig) *ReplyWorker {
	return &ReplyWorker{
		store: store,
		cfg:   cfg,
		jobs:  make(chan replyJob, replyJobBuffer),
	}
}

// Start launches the worker pool and a watcher that shuts the pool down when
// stopChan is closed. It returns immediately; the pool runs in the background.
func (w *ReplyWorker) Start(stopChan <-chan struct{}) {
	log.Printf("Reply worker pool starting with %d workers", w.cfg.ReplyWorkers)

	for i := 0; i < w.cfg.ReplyWorkers; i++ {
		w.wg.Add(1)
		go func(workerID int) {
			defer w.wg.Done()
			// Each worker drains the job queue until it is closed, so jobs
			// already accepted still produce their reply during shutdown.
			for job := range w.jobs {
				w.deliverReply(workerID, job)
			}
			log.Printf("Reply worker %d: job queue closed, exiting", workerID)
		}(i)
	}

	go func() {
		<-stopChan
		log.Println("Reply worker pool: stop signal received, draining jobs...")

		w.mu.Lock()
		w.stopped = true
		close(w.jobs)
		w.mu.Unlock()

		w.wg.Wait()
		log.Println("Reply worker pool stopped.")
	}()
}

// Enqueue schedules a synthetic reply for the given conversation. The send is
// non-blocking: it reports false when the queue is full or the pool has been
// stopped, and the reply is simply not delivered.
func (w *ReplyWorker) Enqueue(conversationID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return false
	}
	select {
	case w.jobs <- replyJob{ConversationID: conversationID}:
		return true
	default:
		log.Printf("Reply queue full, dropping reply for conversation %s", conversationID)
		return false
	}
}

// deliverReply waits the configured delay, then appends one reply drawn from
// the canned set to the conversation and persists it. A conversation deleted
// in the meantime makes the job a no-op.
func (w *ReplyWorker) deliverReply(workerID int, job replyJob) {
	time.Sleep(w.cfg.ReplyDelay)

	reply := cannedReplies[rand.Intn(len(cannedReplies))]
	if err := w.appendReply(job.ConversationID, reply); err != nil {
		log.Printf("Reply worker %d: failed to deliver reply to conversation %s: %v", workerID, job.ConversationID, err)
		return
	}
	log.Printf("Reply worker %d: delivered reply to conversation %s", workerID, job.ConversationID)
}

// appendReply is the read-modify-write cycle storing the synthetic reply under
// the sender of the conversation's remote participant.
func (w *ReplyWorker) appendReply(conversationID, text string) error {
	w.store.Lock()
	defer w.store.Unlock()

	all, err := storage.Get[[]Conversation](w.store, storage.KeyConversations)
	if err != nil {
		return apperror.NewStorageError("failed to load conversations", err)
	}

	idx := findConversation(all, conversationID)
	if idx < 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("conversation %s not found", conversationID), nil)
	}
	conv := &all[idx]

	now := time.Now().UTC()
	conv.Messages = append(conv.Messages, Message{
		ID:        nextMessageID(conv.Messages, now),
		Sender:    conv.Participant,
		Text:      text,
		CreatedAt: now,
	})

	if err := storage.Set(w.store, storage.KeyConversations, all); err != nil {
		return apperror.NewStorageError("failed to save conversations", err)
	}
	return nil
}
