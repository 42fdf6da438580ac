package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/HarvestCodex_Go/internal/auth"
	"github.com/osse101/HarvestCodex_Go/internal/bootstrap"
	"github.com/osse101/HarvestCodex_Go/internal/completion"
	"github.com/osse101/HarvestCodex_Go/internal/config"
	"github.com/osse101/HarvestCodex_Go/internal/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	cat, err := bootstrap.LoadCatalog(ctx, store, cfg.SyncCatalog)
	if err != nil {
		store.Close()
		return err
	}

	bus, hub := bootstrap.InitializeEventSystem(cfg.AllowedOrigins)

	completions := completion.NewService(store, cat, bus, completion.Options{
		CacheSize:    cfg.SessionCacheSize,
		SessionTTL:   cfg.SessionTTL,
		StoreTimeout: cfg.StoreTimeout,
	})

	verifier, err := auth.NewVerifier(auth.VerifierConfig{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
	})
	if err != nil {
		store.Close()
		return err
	}

	srv := server.NewServer(
		server.Options{
			Port:           cfg.Port,
			TrustedProxies: cfg.TrustedProxies,
			Version:        cfg.Version,
		},
		server.Dependencies{
			Store:       store,
			Catalog:     cat,
			Completions: completions,
			Verifier:    verifier,
			LiveFeed:    hub,
		},
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			store.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Store:  store,
	})
	return nil
}
