package security

import "context"

// Cache is the key/value capability the authorizer stores decisions in.
// Implementations must tolerate concurrent use; no locking happens on this side.
type Cache interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// NopCache never stores anything. It stands in when no cache is configured.
type NopCache struct{}

// Get always misses.
func (NopCache) Get(context.Context, string) (string, bool, error) {
	return "", false, nil
}

// Set discards the value.
func (NopCache) Set(context.Context, string, string) error {
	return nil
}
