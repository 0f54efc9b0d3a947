// Package pubsub publishes JSON messages to named recipients.
//
// Publisher is the capability features depend on. RedisPublisher implements it
// over Redis PUBLISH: every message is wrapped in an envelope carrying a
// generated ID, the JSON-encoded payload and optional string attributes.
//
// # Envelope
//
//	{"id":"<uuid>","data":{...},"attributes":{"origin":"api"}}
//
// # Usage
//
//	pub := pubsub.NewRedisPublisher(mgr.Client(), cfg.PubSub)
//	id, err := pub.Publish(ctx, "orders", order, map[string]string{"origin": "api"})
package pubsub
