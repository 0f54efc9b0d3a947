package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// LocalsKey is where Handler stores the request-scoped connection.
const LocalsKey = "redis"

// Manager owns the Redis connection pool.
type Manager struct {
	client *redis.Client
}

// NewManager parses cfg.URL and creates the pooled client. The connection is lazy;
// use Ping to verify it.
func NewManager(cfg Config) (*Manager, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.DialTimeoutSeconds > 0 {
		opts.DialTimeout = time.Duration(cfg.DialTimeoutSeconds) * time.Second
	}

	return &Manager{client: redis.NewClient(opts)}, nil
}

// NewManagerFromClient wraps an existing client.
func NewManagerFromClient(client *redis.Client) *Manager {
	return &Manager{client: client}
}

// Client returns the pooled client.
func (m *Manager) Client() *redis.Client {
	return m.client
}

// Ping verifies connectivity.
func (m *Manager) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	return nil
}

// Close releases the pool.
func (m *Manager) Close() error {
	return m.client.Close()
}

// Handler checks out a dedicated connection for the request and returns it to the
// pool after the rest of the chain has run, whatever the outcome.
func (m *Manager) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		conn := m.client.Conn()
		defer conn.Close()

		c.Locals(LocalsKey, conn)
		return c.Next()
	}
}

// ConnFromLocals returns the connection stored by Handler.
func ConnFromLocals(c *fiber.Ctx) (*redis.Conn, bool) {
	conn, ok := c.Locals(LocalsKey).(*redis.Conn)
	return conn, ok
}
