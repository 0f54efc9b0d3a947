// Package cache provides the key/value backends used for authorization decisions
// and the Redis connection provider for request handlers.
//
// # Manager
//
// Manager owns one pooled go-redis client built from a redis:// URL. Its Handler
// middleware checks a dedicated connection out of the pool for each request,
// exposes it through c.Locals("redis") and returns it once the chain completes.
//
// # Backends
//
//   - Redis: stores values with an optional TTL; redis.Nil is reported as a miss.
//   - Memory: process-local map, mostly for tests and single-instance deployments.
//
// Both satisfy security.Cache.
//
// # Usage
//
//	mgr, err := cache.NewManager(cfg.Redis)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer mgr.Close()
//	app.Use(mgr.Handler())
//	decisions := cache.NewRedis(mgr.Client(), cfg.Redis.TTL())
package cache
