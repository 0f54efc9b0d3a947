// Package config provides configuration management for the service.
//
// It uses Viper for environment variables and godotenv for an optional .env
// file. Defaults come from the `default` struct tags of each section, and
// nested keys map to upper-case environment names (auth.url -> AUTH_URL).
//
// # Configuration Structure
//
//   - Server: port, path prefix, trace header stripping
//   - Log: level and format
//   - Storage: S3/MinIO credentials and bucket
//   - Database: optional MySQL or SQLite connection
//   - Redis: connection URL, pool size, decision cache TTL
//   - Auth: authority URL, credential scheme, cache backend
//   - PubSub: channel prefix
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
