package app

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	authhandlers "github.com/Black-And-White-Club/nascon/app/modules/auth/infrastructure/handlers"
	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
	"github.com/Black-And-White-Club/nascon/app/shared/attr"
	"github.com/Black-And-White-Club/nascon/app/shared/httpx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	correlationHeader = "X-Correlation-ID"
	requestIDHeader   = "X-Request-ID"
)

// RouterConfig controls the HTTP router.
type RouterConfig struct {
	AllowedOrigins []string
	// ServeMetrics mounts /metrics on the API router.
	ServeMetrics bool
}

// NewRouter builds the API router and mounts every module under /api.
func NewRouter(cfg RouterConfig, logger *slog.Logger, registry *prometheus.Registry, modules *ModuleRegistry) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(correlationID)
	r.Use(accessLog(logger))
	r.Use(middleware.Recoverer)
	r.Use(authhandlers.CORSMiddleware(cfg.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.ServeMetrics && registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(modules.Auth.Authenticate())
		for _, m := range modules.Routes() {
			m.RegisterRoutes(api)
		}
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, r, logger, apperr.NotFound("route %s %s not found", r.Method, r.URL.Path))
	})
	return r
}

// correlationID stores the caller's correlation id, or a fresh one, on the
// request context and echoes it back.
func correlationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(correlationHeader))
		if id == "" {
			id = strings.TrimSpace(r.Header.Get(requestIDHeader))
		}
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(correlationHeader, id)
		next.ServeHTTP(w, r.WithContext(attr.WithCorrelationID(r.Context(), id)))
	})
}

func accessLog(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.InfoContext(r.Context(), "HTTP request",
					attr.String("method", r.Method),
					attr.String("path", r.URL.Path),
					attr.Int("status", ww.Status()),
					attr.Int("bytes", ww.BytesWritten()),
					attr.Duration("duration", time.Since(start)),
					attr.String("remote_addr", r.RemoteAddr),
					attr.ExtractCorrelationID(r.Context()),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
