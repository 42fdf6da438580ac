package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/HarvestCodex_Go/internal/repository"
)

// Stopper is an HTTP server that can drain in-flight requests
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds everything that needs an orderly stop
type ShutdownComponents struct {
	Server Stopper
	Store  repository.Store
}

// GracefulShutdown stops the server first so no new writes start, then
// closes the store. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Store != nil {
		slog.Info(LogMsgClosingStore)
		components.Store.Close()
	}

	slog.Info(LogMsgServerStopped)
}
