package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/arabic-tutor/tts-gateway/internal/api"
	"github.com/arabic-tutor/tts-gateway/internal/cache"
	"github.com/arabic-tutor/tts-gateway/internal/config"
	"github.com/arabic-tutor/tts-gateway/internal/tts"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg.Debug))

	audioCache, err := cache.New(cfg.Cache.Dir)
	if err != nil {
		slog.Error("failed to create cache dir", "dir", cfg.Cache.Dir, "error", err)
		os.Exit(1)
	}

	// Polly is optional at startup: without working credentials the gateway
	// runs degraded and synthesis endpoints report the provider unavailable.
	var provider tts.Provider
	initCtx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
	pollyProvider, err := tts.NewPolly(initCtx, tts.PollyConfig{
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Region:          cfg.AWS.Region,
	})
	cancelInit()
	if err != nil {
		slog.Warn("polly unavailable, running degraded", "error", err)
	} else {
		provider = pollyProvider
		slog.Info("polly client initialized", "region", pollyProvider.Region())
	}

	svc := tts.NewService(provider, audioCache)

	router := api.NewRouter(svc)
	handler := router.Setup()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("starting TTS gateway",
			"addr", cfg.Addr(),
			"cache_dir", audioCache.Dir(),
			"voices", tts.VoiceKeys(),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
	}
	slog.Info("server stopped")
}

func newLogger(debug bool) *slog.Logger {
	if debug {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
