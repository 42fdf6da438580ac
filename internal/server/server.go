package server

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/HarvestCodex_Go/internal/auth"
	"github.com/osse101/HarvestCodex_Go/internal/catalog"
	"github.com/osse101/HarvestCodex_Go/internal/completion"
	"github.com/osse101/HarvestCodex_Go/internal/handler"
	"github.com/osse101/HarvestCodex_Go/internal/livefeed"
	"github.com/osse101/HarvestCodex_Go/internal/logger"
	"github.com/osse101/HarvestCodex_Go/internal/metrics"
)

// Options configures the listener and request handling
type Options struct {
	Port           int
	TrustedProxies []string
	Version        string
}

// Dependencies are the services the routes are served from
type Dependencies struct {
	Store       handler.Pinger
	Catalog     *catalog.Catalog
	Completions completion.Service
	Verifier    *auth.Verifier
	LiveFeed    *livefeed.Hub
}

type Server struct {
	httpServer *http.Server
	liveFeed   *livefeed.Hub
}

// NewServer builds the router and HTTP server
func NewServer(opts Options, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		liveFeed: deps.LiveFeed,
	}
}

// NewRouter wires middleware and routes
func NewRouter(opts Options, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Store))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	items := handler.NewItemHandler(deps.Catalog, deps.Completions)
	simulators := handler.NewSimulatorHandler()
	sessions := handler.NewSessionHandler(deps.Completions)
	completions := handler.NewCompletionHandler(deps.Completions, deps.Catalog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(deps.Verifier, func(req *http.Request) {
			detector.RecordFailedAuth(extractIP(req, opts.TrustedProxies))
		}))

		// the live feed is hijacked and must not pass through gzip
		if deps.LiveFeed != nil {
			r.Get("/completions/live", deps.LiveFeed.Handler())
		}

		r.Group(func(r chi.Router) {
			r.Use(compressMiddleware)

			r.Route("/items", func(r chi.Router) {
				r.Get("/", items.HandleList)
				r.Get("/summary", items.HandleSummary)
				r.Get("/hytale-ids", items.HandleHytaleIDs)
				r.Get("/{id}", items.HandleGet)
			})

			r.Route("/simulators", func(r chi.Router) {
				r.Get("/seasons/table", simulators.HandleSeasonsTable)
				r.Post("/quality", simulators.HandleQuality)
				r.Post("/seasons", simulators.HandleSeasons)
				r.Post("/comfort", simulators.HandleComfort)
				r.Post("/processing", simulators.HandleProcessing)
			})

			r.Route("/session", func(r chi.Router) {
				r.Post("/login", sessions.HandleLogin)
				r.Post("/logout", sessions.HandleLogout)
			})

			r.Route("/completions", func(r chi.Router) {
				r.Get("/", completions.HandleList)
				r.Get("/progress", completions.HandleProgress)
				r.Post("/batch", completions.HandleBatch)
				r.Post("/{itemID}/toggle", completions.HandleToggle)
			})
		})
	})

	return r
}

func compressMiddleware(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Hijack hands the connection to the websocket upgrader
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	rw.statusCode = http.StatusSwitchingProtocols
	return http.NewResponseController(rw.ResponseWriter).Hijack()
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		if log.Enabled(ctx, slog.LevelDebug) {
			log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))
		}

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// sanitizeHeaders redacts credentials before headers are logged
func sanitizeHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

// Start listens until Stop is called
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop drains HTTP requests and drops live feed connections, which
// Shutdown does not track
func (s *Server) Stop(ctx context.Context) error {
	if s.liveFeed != nil {
		s.liveFeed.Close()
	}
	return s.httpServer.Shutdown(ctx)
}
