package activity

import (
	"context"
	"fmt"

	activityservice "github.com/Black-And-White-Club/nascon/app/modules/activity/application"
	activityhandlers "github.com/Black-And-White-Club/nascon/app/modules/activity/infrastructure/handlers"
	activitydb "github.com/Black-And-White-Club/nascon/app/modules/activity/infrastructure/repositories"
	activityrouter "github.com/Black-And-White-Club/nascon/app/modules/activity/infrastructure/router"
	authdomain "github.com/Black-And-White-Club/nascon/app/modules/auth/domain"
	authhandlers "github.com/Black-And-White-Club/nascon/app/modules/auth/infrastructure/handlers"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the activity feed module.
type Module struct {
	ActivityService activityservice.Service
	Repository      activitydb.Repository
	handlers        activityhandlers.Handlers
	router          *activityrouter.ActivityRouter
	cancelFunc      context.CancelFunc
}

// NewActivityModule creates the feed and subscribes it to every domain topic.
// Messages are consumed once Run is called.
func NewActivityModule(
	ctx context.Context,
	obs observability.Observability,
	subscriber message.Subscriber,
	db *bun.DB,
) (*Module, error) {
	logger := obs.Logger.With("module", "activity")
	tracer := obs.Tracer("activity")

	logger.InfoContext(ctx, "activity.NewActivityModule initializing")

	repo := activitydb.NewRepository(db)
	service := activityservice.NewActivityService(repo, nil, logger, obs.Metrics, tracer, db)
	handlers := activityhandlers.NewActivityHandlers(service, logger, tracer)

	wmRouter, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create activity router: %w", err)
	}
	router := activityrouter.NewActivityRouter(logger, wmRouter, subscriber, obs.Registry)
	if err := router.Configure(handlers); err != nil {
		return nil, fmt.Errorf("failed to configure activity router: %w", err)
	}

	return &Module{
		ActivityService: service,
		Repository:      repo,
		handlers:        handlers,
		router:          router,
	}, nil
}

// Run consumes domain events until ctx is cancelled or Close is called.
func (m *Module) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if err := m.router.Router.Run(ctx); err != nil {
		return fmt.Errorf("activity router stopped: %w", err)
	}
	return nil
}

// Running is closed once every topic handler is subscribed.
func (m *Module) Running() chan struct{} {
	return m.router.Router.Running()
}

func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	if err := m.router.Close(); err != nil {
		return fmt.Errorf("failed to close activity router: %w", err)
	}
	return nil
}

// RegisterRoutes mounts the feed endpoint on the /api router.
func (m *Module) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(authhandlers.RequireRole(authdomain.RoleOrganizer))
		r.Get("/activity", m.handlers.HandleList)
	})
}
