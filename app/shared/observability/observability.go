// Package observability builds the logger, tracer and metrics shared by all modules.
package observability

import (
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Config selects the log format and names the service.
type Config struct {
	ServiceName string
	Environment string
}

// Observability bundles the process-wide telemetry handles.
type Observability struct {
	Logger   *slog.Logger
	Metrics  OperationMetrics
	Registry *prometheus.Registry
}

// New builds the process telemetry. Development uses a text log handler,
// everything else logs JSON.
func New(cfg Config) Observability {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	logger := NewLogger(cfg.Environment).With(slog.String("service", cfg.ServiceName))

	return Observability{
		Logger:   logger,
		Metrics:  NewPrometheusMetrics(reg),
		Registry: reg,
	}
}

// NewLogger returns the slog logger for the given environment.
func NewLogger(environment string) *slog.Logger {
	if environment == "development" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// Tracer returns the named tracer from the global provider.
func (o Observability) Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
