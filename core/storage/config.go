package storage

// Config holds configuration for the object storage provider.
type Config struct {
	// Endpoint is the host[:port] of the S3 compatible service. A scheme prefix is ignored.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL enables TLS.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket receives uploads. Empty disables the uploads feature.
	Bucket string `mapstructure:"bucket" default:"uploads"`
	// Region is used when a missing bucket is created (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, TLS handshakes and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
