package bootstrap

import (
	"log/slog"

	"github.com/osse101/HarvestCodex_Go/internal/event"
	"github.com/osse101/HarvestCodex_Go/internal/livefeed"
	"github.com/osse101/HarvestCodex_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process bus and subscribes the metrics
// collector and the live feed hub to it
func InitializeEventSystem(allowedOrigins []string) (event.Bus, *livefeed.Hub) {
	bus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(bus)
	slog.Debug(LogMsgMetricsCollectorRegistered)

	hub := livefeed.NewHub(allowedOrigins)
	hub.Register(bus)
	slog.Debug(LogMsgLiveFeedRegistered, "allowed_origins", allowedOrigins)

	slog.Info(LogMsgEventSystemInitialized)
	return bus, hub
}
