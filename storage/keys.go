package storage

// Storage keys for every persisted document. Centralizing them here means a
// storage-layout change touches one file instead of rippling through call
// sites in every service.
const (
	// KeyUsers holds the User collection.
	KeyUsers = "users"
	// KeyPosts holds the Post collection (most-recent-first).
	KeyPosts = "posts"
	// KeySession holds the current-session marker. Its presence IS the
	// session: no token, no expiry, removed on logout.
	KeySession = "session"
	// KeySettings holds the flat settings record.
	KeySettings = "settings"
	// KeyFriends holds the friends collection.
	KeyFriends = "friends"
	// KeyNotifications holds the notifications collection.
	KeyNotifications = "notifications"
	// KeyConversations holds the conversations collection.
	KeyConversations = "conversations"
)
