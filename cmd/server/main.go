// Package main runs the community hub HTTP server with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/blkout/hub/config"
	"github.com/blkout/hub/internal/hotseats"
	"github.com/blkout/hub/internal/matching"
	"github.com/blkout/hub/internal/members"
	"github.com/blkout/hub/internal/seed"
	"github.com/blkout/hub/internal/server"
	"github.com/blkout/hub/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger, _ := zap.NewProduction()
		bootLogger.Fatal("load config", zap.Error(err))
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		bootLogger, _ := zap.NewProduction()
		bootLogger.Fatal("build logger", zap.Error(err))
	}
	defer log.Sync()

	gin.SetMode(cfg.Server.Mode)
	now := time.Now()

	// Members
	directory, err := members.NewDirectory(seed.Members(now))
	if err != nil {
		log.Fatal("seed members", zap.Error(err))
	}
	presence := members.NewPresence(cfg.Presence.Window, nil)
	memberHandler := members.NewHandler(members.NewService(directory, presence, log), log)

	// Matching
	matchService := matching.NewService(directory, matching.NewEngine(nil), cfg.Matching.TopN, log)
	matchHandler := matching.NewHandler(matchService, log)

	// Hotseats
	sessions := seed.Hotseats(now)
	store, err := hotseats.NewStore(sessions)
	if err != nil {
		log.Fatal("seed hotseats", zap.Error(err))
	}
	coordinator := hotseats.NewCoordinator(store, directory, log)
	hotseatHandler := hotseats.NewHandler(coordinator, directory, cfg.Hotseats.DefaultCapacity, log)

	log.Info("seed loaded", zap.Int("members", directory.Len()), zap.Int("hotseats", len(sessions)))

	router := server.NewRouter(server.Handlers{
		Members:  memberHandler,
		Matching: matchHandler,
		Hotseats: hotseatHandler,
	}, cfg.Server.AllowedOrigins(), log)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
