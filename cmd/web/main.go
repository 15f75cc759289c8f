package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-web/config"
	"todo-web/internal/httpserver"
	"todo-web/pkg/log"
	"todo-web/pkg/storage"
	"todo-web/pkg/storage/memory"
	"todo-web/pkg/storage/redis"
)

// @title       Todo Web
// @description Server-rendered to-do manager in front of the to-do REST backend.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting todo-web...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.BaseURL)

	// 3. Session storage
	var kv storage.Storage
	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		store := redis.New(redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		defer store.Close()
		if err := store.Ping(ctx); err != nil {
			logger.Warnf(ctx, "Redis not reachable yet at %s: %v", cfg.Redis.Addr, err)
		}
		kv = store
	default:
		store, err := memory.New(cfg.Storage.Size)
		if err != nil {
			logger.Error(ctx, "Failed to initialize memory storage: ", err)
			return
		}
		kv = store
	}
	logger.Infof(ctx, "Session storage: %s", cfg.Storage.Driver)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Storage:      kv,
		Backend:      cfg.Backend,
		Session:      cfg.Session,
		Auth:         cfg.Auth,
		Confirmation: cfg.Confirmation,
		TaskList:     cfg.TaskList,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
