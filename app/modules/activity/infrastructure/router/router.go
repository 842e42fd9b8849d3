package activityrouter

import (
	"fmt"
	"log/slog"
	"os"

	activityhandlers "github.com/Black-And-White-Club/nascon/app/modules/activity/infrastructure/handlers"
	"github.com/Black-And-White-Club/nascon/app/shared/events"
	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// ActivityRouter subscribes the activity feed to every domain topic.
type ActivityRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	subscriber     message.Subscriber
	metricsBuilder *metrics.PrometheusMetricsBuilder
}

func NewActivityRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber message.Subscriber,
	prometheusRegistry *prometheus.Registry,
) *ActivityRouter {
	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if prometheusRegistry != nil && os.Getenv(TestEnvironmentFlag) != TestEnvironmentValue {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		metricsBuilder = &builder
	}
	return &ActivityRouter{
		logger:         logger,
		Router:         router,
		subscriber:     subscriber,
		metricsBuilder: metricsBuilder,
	}
}

// Configure adds middleware and one handler per topic in events.All.
func (r *ActivityRouter) Configure(handlers activityhandlers.Handlers) error {
	if r.metricsBuilder != nil {
		r.logger.Info("Adding Prometheus router metrics middleware")
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	} else {
		r.logger.Info("Skipping Prometheus router metrics middleware")
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
		middleware.Retry{MaxRetries: 3}.Middleware,
	)

	for _, topic := range events.All {
		r.Router.AddNoPublisherHandler(
			fmt.Sprintf("activity.%s", topic),
			topic,
			r.subscriber,
			handlers.HandleDomainEvent,
		)
	}
	return nil
}

// Close stops the router and waits for in-flight handlers.
func (r *ActivityRouter) Close() error {
	return r.Router.Close()
}
