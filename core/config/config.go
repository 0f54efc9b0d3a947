package config

import (
	"reflect"
	"strings"

	"fiber-extras/core/cache"
	"fiber-extras/core/database"
	"fiber-extras/core/logger"
	"fiber-extras/core/pubsub"
	"fiber-extras/core/security"
	"fiber-extras/core/server"
	"fiber-extras/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations owned by each package.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the optional database connection.
	Database database.Config `mapstructure:"database"`
	// Redis holds configuration for the Redis pool and decision cache.
	Redis cache.Config `mapstructure:"redis"`
	// Auth holds configuration for remote authorization.
	Auth security.Config `mapstructure:"auth"`
	// PubSub holds configuration for message publishing.
	PubSub pubsub.Config `mapstructure:"pubsub"`
}

// LoadConfig loads configuration from environment variables and a .env file in path.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is fine; production sets real environment variables.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. AUTH_URL -> auth.url)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every mapstructure key in Viper with
// its 'default' tag, recursing into nested structs.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set, even when empty, so AutomaticEnv can resolve the key.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
