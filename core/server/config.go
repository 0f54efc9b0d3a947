package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// PathPrefix is stripped from request paths when the service is mounted
	// under a sub-path behind a proxy (e.g. /api).
	PathPrefix string `mapstructure:"path_prefix" default:""`
	// StripTraceHeaders drops inbound trace propagation headers.
	StripTraceHeaders bool `mapstructure:"strip_trace_headers" default:"true"`
	// ShutdownTimeoutSeconds bounds graceful shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"10"`
}

// Addr returns the listen address.
func (c Config) Addr() string {
	if c.Port == "" {
		return ":8080"
	}
	return ":" + c.Port
}

// HasPathPrefix reports whether a non-root prefix is configured.
func (c Config) HasPathPrefix() bool {
	return c.PathPrefix != "" && c.PathPrefix != "/"
}
