package pubsub

// Config holds configuration for message publishing.
type Config struct {
	// ChannelPrefix is prepended to every recipient to form the channel name.
	ChannelPrefix string `mapstructure:"channel_prefix" default:""`
}
