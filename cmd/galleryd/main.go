package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/galleryd-dev/galleryd/internal/config"
	"github.com/galleryd-dev/galleryd/internal/handler"
	"github.com/galleryd-dev/galleryd/internal/logger"
	"github.com/galleryd-dev/galleryd/internal/router"
	"github.com/galleryd-dev/galleryd/internal/service"
	"github.com/galleryd-dev/galleryd/internal/storage/fs"
	"github.com/galleryd-dev/galleryd/internal/storage/pg"
)

func main() {
	// Production sets env vars directly; a .env file is a dev convenience.
	if err := godotenv.Load(); err != nil {
		logger.Log.Info("no .env file found, reading from environment")
	}

	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	storage, err := pg.New(cfg)
	if err != nil {
		logger.Log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer storage.Cleanup()

	media, err := fs.New(cfg.Public.UploadDir)
	if err != nil {
		logger.Log.Error("failed to init media storage", "error", err)
		os.Exit(1)
	}

	account := service.NewAccount(storage)
	post := service.NewPost(storage, service.NewMedia(media, &cfg.Public))

	h := handler.New(account, post, storage, cfg)
	r := router.New(h, &cfg.Public, media.Root())

	httpPort := os.Getenv("PORT")
	if httpPort == "" {
		httpPort = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + httpPort,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Log.Info("server started", "port", httpPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	logger.Log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	logger.Log.Info("server exited")
}
