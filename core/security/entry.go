package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
)

// Decision is the cached outcome of a remote authorization call.
type Decision struct {
	Authorized bool            `json:"authorized"`
	Context    json.RawMessage `json:"context"`
}

var errEmptyValue = errors.New("empty cached value")

// Keygen derives the cache key for a credential token: prefix + hex(sha256(token)).
func Keygen(token, prefix string) string {
	sum := sha256.Sum256([]byte(token))
	return prefix + hex.EncodeToString(sum[:])
}

// CacheEntry reads and writes the Decision cached for one credential token.
// Backend failures are logged and never returned.
type CacheEntry struct {
	key     string
	backend Cache
	logger  *zap.Logger
	value   *Decision
}

// NewCacheEntry builds the entry for token. A nil backend behaves like NopCache.
func NewCacheEntry(token, prefix string, backend Cache, logger *zap.Logger) *CacheEntry {
	if backend == nil {
		backend = NopCache{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheEntry{
		key:     Keygen(token, prefix),
		backend: backend,
		logger:  logger,
	}
}

// Key returns the derived cache key.
func (e *CacheEntry) Key() string {
	return e.key
}

// Value returns the decision loaded or stored by the last Get or Set.
func (e *CacheEntry) Value() *Decision {
	return e.value
}

// Exists reports whether a decision is cached for this entry.
func (e *CacheEntry) Exists(ctx context.Context) bool {
	_, ok := e.Get(ctx)
	return ok
}

// Get loads the cached decision. Any backend or decoding error counts as a miss.
func (e *CacheEntry) Get(ctx context.Context) (*Decision, bool) {
	e.value = nil

	raw, ok, err := e.backend.Get(ctx, e.key)
	if err != nil {
		e.logger.Error("Cache read failed", zap.String("key", e.key), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	if raw == "" {
		e.logger.Error("Cache read failed", zap.String("key", e.key), zap.Error(errEmptyValue))
		return nil, false
	}

	var d Decision
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		e.logger.Error("Cached decision is malformed", zap.String("key", e.key), zap.Error(err))
		return nil, false
	}

	e.value = &d
	return e.value, true
}

// Set stores d. Write failures are logged and dropped.
func (e *CacheEntry) Set(ctx context.Context, d Decision) {
	e.value = &d

	data, err := json.Marshal(d)
	if err != nil {
		e.logger.Error("Failed to encode decision", zap.String("key", e.key), zap.Error(err))
		return
	}

	if err := e.backend.Set(ctx, e.key, string(data)); err != nil {
		e.logger.Error("Cache write failed", zap.String("key", e.key), zap.Error(err))
	}
}
