package cache

import "time"

// Config holds configuration for the Redis connection.
type Config struct {
	// URL is the redis:// or rediss:// connection URL.
	URL string `mapstructure:"url" default:"redis://localhost:6379/0"`
	// PoolSize overrides the pool size parsed from the URL when positive.
	PoolSize int `mapstructure:"pool_size" default:"0"`
	// DialTimeoutSeconds is the connection setup timeout in seconds.
	DialTimeoutSeconds int `mapstructure:"dial_timeout_seconds" default:"5"`
	// RequestScoped hands every request its own pooled connection (see Manager.Handler).
	RequestScoped bool `mapstructure:"request_scoped" default:"false"`
	// CacheTTLSeconds is how long cached decisions live. Zero keeps them forever.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// TTL returns CacheTTLSeconds as a duration.
func (c Config) TTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
