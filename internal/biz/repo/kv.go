package repo

import "context"

// KeyValueStore is the device-local persistence interface.
// String-keyed, JSON-valued; no transactional guarantees.
type KeyValueStore interface {
	// Get returns the stored value for key, or (nil, nil) when absent
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Close closes the underlying store
	Close() error
}

// Persistence keys. The identity record is write-once; the saved set is
// read-modify-written on every toggle; the visited flag is a one-shot
// sentinel.
const (
	KeyIdentity   = "fsociety_identity_v2"
	KeySavedPosts = "fsociety_saved_posts_v1"
	KeyVisited    = "fsociety_visited_v1"
)
