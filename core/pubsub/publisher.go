package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrEmptyRecipient is returned when no recipient is given.
var ErrEmptyRecipient = errors.New("recipient is required")

// Publisher sends a message to a recipient and returns the message ID.
type Publisher interface {
	Publish(ctx context.Context, recipient string, message any, attrs map[string]string) (string, error)
}

// Envelope is the wire form of a published message.
type Envelope struct {
	ID         string            `json:"id"`
	Data       json.RawMessage   `json:"data"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// RedisClient is the subset of go-redis used for publishing.
type RedisClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher publishes envelopes on Redis channels.
type RedisPublisher struct {
	client RedisClient
	prefix string
}

// NewRedisPublisher creates a publisher over client.
func NewRedisPublisher(client RedisClient, cfg Config) *RedisPublisher {
	return &RedisPublisher{client: client, prefix: cfg.ChannelPrefix}
}

// Channel returns the Redis channel used for recipient.
func (p *RedisPublisher) Channel(recipient string) string {
	return p.prefix + recipient
}

// Publish encodes message as JSON and publishes it. Delivery is fire-and-forget:
// a message published while nobody is subscribed is dropped by Redis.
func (p *RedisPublisher) Publish(ctx context.Context, recipient string, message any, attrs map[string]string) (string, error) {
	if recipient == "" {
		return "", ErrEmptyRecipient
	}

	data, err := json.Marshal(message)
	if err != nil {
		return "", fmt.Errorf("failed to encode message: %w", err)
	}

	env := Envelope{ID: uuid.NewString(), Data: data, Attributes: attrs}
	payload, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("failed to encode envelope: %w", err)
	}

	if err := p.client.Publish(ctx, p.Channel(recipient), payload).Err(); err != nil {
		return "", fmt.Errorf("failed to publish to %s: %w", recipient, err)
	}
	return env.ID, nil
}
