package security

import (
	"time"
)

// Config holds configuration for remote authorization.
type Config struct {
	// URL is the authorization endpoint. Authorization is disabled when empty.
	URL string `mapstructure:"url" default:""`
	// Scheme is where the credential is read from (header, cookie, query).
	Scheme string `mapstructure:"scheme" default:"header"`
	// Name is the header, cookie or query parameter carrying the credential.
	Name string `mapstructure:"name" default:"Authorization"`
	// APIKey is forwarded to the authority in APIKeyHeader when set.
	APIKey string `mapstructure:"api_key" default:""`
	// APIKeyHeader is the header name used for APIKey.
	APIKeyHeader string `mapstructure:"api_key_header" default:"x-api-key"`
	// TimeoutSeconds bounds each call to the authority. Zero disables the bound.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// Cache selects the decision cache backend (none, memory, redis).
	Cache string `mapstructure:"cache" default:"none"`
	// KeyPrefix namespaces decision keys.
	KeyPrefix string `mapstructure:"key_prefix" default:"authorizer:"`
}

// Enabled reports whether an authority is configured.
func (c Config) Enabled() bool {
	return c.URL != ""
}

// Options translates the configuration into Authorizer options. The cache
// backend is chosen by the caller because it owns the backend's lifecycle.
func (c Config) Options() ([]Option, error) {
	scheme, err := ParseScheme(c.Scheme, c.Name)
	if err != nil {
		return nil, err
	}

	opts := []Option{WithScheme(scheme)}
	if c.KeyPrefix != "" {
		opts = append(opts, WithKeyPrefix(c.KeyPrefix))
	}
	if c.APIKey != "" && c.APIKeyHeader != "" {
		opts = append(opts, WithAuthorityHeader(c.APIKeyHeader, c.APIKey))
	}
	if c.TimeoutSeconds > 0 {
		opts = append(opts, WithAuthorityTimeout(time.Duration(c.TimeoutSeconds)*time.Second))
	}
	return opts, nil
}
