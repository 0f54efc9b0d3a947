package cmd

import (
	"fmt"
	"strings"

	"fiber-extras/core/cache"
	"fiber-extras/core/config"
	"fiber-extras/core/loader"
	"fiber-extras/core/logger"
	"fiber-extras/core/middleware/auth"
	"fiber-extras/core/middleware/rayid"
	"fiber-extras/core/middleware/stripprefix"
	"fiber-extras/core/middleware/tracehdr"
	"fiber-extras/core/pubsub"
	"fiber-extras/core/security"
	"fiber-extras/core/storage"
	"fiber-extras/feature/authinfo"
	"fiber-extras/feature/items"
	"fiber-extras/feature/messaging"
	"fiber-extras/feature/uploads"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// services are the connected backends the app is built from. Any of them may
// be nil, which disables the features depending on it.
type services struct {
	logger *zap.Logger
	redis  *cache.Manager
	store  storage.Client
	db     *gorm.DB
}

// newDecisionCache picks the decision cache backend named by cfg.Auth.Cache.
func newDecisionCache(cfg *config.Config, redis *cache.Manager) (security.Cache, error) {
	switch strings.ToLower(cfg.Auth.Cache) {
	case "", "none":
		return nil, nil
	case "memory":
		return cache.NewMemory(), nil
	case "redis":
		if redis == nil {
			return nil, fmt.Errorf("auth cache %q requires redis", cfg.Auth.Cache)
		}
		return cache.NewRedis(redis.Client(), cfg.Redis.TTL()), nil
	default:
		return nil, fmt.Errorf("unknown auth cache %q", cfg.Auth.Cache)
	}
}

// newAuthorizer builds the authorizer described by cfg.Auth.
func newAuthorizer(cfg *config.Config, redis *cache.Manager, l *zap.Logger) (*security.Authorizer, error) {
	opts, err := cfg.Auth.Options()
	if err != nil {
		return nil, err
	}

	decisions, err := newDecisionCache(cfg, redis)
	if err != nil {
		return nil, err
	}
	opts = append(opts, security.WithCache(decisions), security.WithLogger(l))

	return security.NewAuthorizer(cfg.Auth.URL, opts...)
}

// newApp assembles the Fiber application: middleware in order, then features.
func newApp(cfg *config.Config, svc services) (*fiber.App, error) {
	l := svc.logger
	if l == nil {
		l = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every later log line carries it.
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		rl := logger.WithRayID(l, c)
		rl.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			rl.Error("Request error", zap.Error(err))
		}
		return err
	})

	if cfg.Server.StripTraceHeaders {
		app.Use(tracehdr.New())
	}
	if cfg.Server.HasPathPrefix() {
		app.Use(stripprefix.New(cfg.Server.PathPrefix))
	}
	if svc.redis != nil && cfg.Redis.RequestScoped {
		app.Use(svc.redis.Handler())
	}

	app.Get("/swagger/*", swagger.HandlerDefault)

	if cfg.Auth.Enabled() {
		authz, err := newAuthorizer(cfg, svc.redis, l)
		if err != nil {
			return nil, fmt.Errorf("failed to configure authorization: %w", err)
		}
		app.Use(auth.New(auth.Config{
			Authorizer: authz,
			Logger:     l,
			Next: func(c *fiber.Ctx) bool {
				return c.Path() == authinfo.HealthPath
			},
		}))
		l.Info("Remote authorization enabled",
			zap.String("scheme", authz.Scheme().String()),
			zap.String("cache", cfg.Auth.Cache))
	} else {
		l.Warn("Remote authorization disabled, all routes are public")
	}

	var publisher pubsub.Publisher
	if svc.redis != nil {
		publisher = pubsub.NewRedisPublisher(svc.redis.Client(), cfg.PubSub)
	}

	mgr := loader.NewManager(l)
	mgr.Register(authinfo.NewFeature(l))
	mgr.Register(messaging.NewFeature(publisher, l))
	if svc.store != nil {
		mgr.Register(uploads.NewFeature(svc.store, cfg.Storage.Bucket, cfg.Storage.Region, l))
	}
	mgr.Register(items.NewFeature(svc.db, cfg.Database.AutoMigrate, l))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}
