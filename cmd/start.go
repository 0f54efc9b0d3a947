package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fiber-extras/core/cache"
	"fiber-extras/core/config"
	"fiber-extras/core/database"
	"fiber-extras/core/logger"
	"fiber-extras/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "fiber-extras/docs/swagger"
)

// @title Fiber Extras API
// @version 1.0
// @description Remote authorization, storage and messaging helpers for Fiber services.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		svc := services{logger: logg}

		// Redis (optional): decision cache and pub/sub.
		if mgr, err := cache.NewManager(cfg.Redis); err != nil {
			logg.Warn("Invalid redis configuration", zap.Error(err))
		} else if err := pingWithTimeout(mgr.Ping, cfg.Redis.DialTimeoutSeconds); err != nil {
			logg.Warn("Optional redis connection failed", zap.Error(err))
			_ = mgr.Close()
		} else {
			svc.redis = mgr
			defer mgr.Close()
			logg.Info("Connected to redis")
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		svc.store = store

		// Database (optional)
		if cfg.Database.Enabled() {
			if db, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed", zap.Error(err))
			} else {
				svc.db = db
				defer database.Close(db)
				logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
			}
		}

		app, err := newApp(cfg, svc)
		if err != nil {
			logg.Fatal("Failed to build application", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")

		timeout := time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		if err := app.ShutdownWithTimeout(timeout); err != nil {
			logg.Error("Shutdown did not complete", zap.Error(err))
		}
	},
}

func pingWithTimeout(ping func(context.Context) error, seconds int) error {
	if seconds <= 0 {
		seconds = 5
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(seconds)*time.Second)
	defer cancel()
	return ping(ctx)
}

func init() {
	RootCmd.AddCommand(startCmd)
}
