package event

import (
	"context"
	"fmt"

	authdomain "github.com/Black-And-White-Club/nascon/app/modules/auth/domain"
	authhandlers "github.com/Black-And-White-Club/nascon/app/modules/auth/infrastructure/handlers"
	eventservice "github.com/Black-And-White-Club/nascon/app/modules/event/application"
	eventhandlers "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/handlers"
	eventqueue "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/queue"
	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	venuedb "github.com/Black-And-White-Club/nascon/app/modules/venue/infrastructure/repositories"
	"github.com/Black-And-White-Club/nascon/app/shared/attr"
	"github.com/Black-And-White-Club/nascon/app/shared/eventbus"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/Black-And-White-Club/nascon/app/shared/timeparse"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Config controls the event module.
type Config struct {
	Service eventservice.Config
	// QueueDSN enables River reminder jobs when set.
	QueueDSN string
}

// Module represents the event module.
type Module struct {
	EventService eventservice.Service
	Repository   eventdb.Repository
	Queue        *eventqueue.Service
	handlers     eventhandlers.Handlers
	obs          observability.Observability
}

// NewEventModule creates and initializes a new event module.
func NewEventModule(
	ctx context.Context,
	obs observability.Observability,
	publisher eventbus.Publisher,
	venueRepo venuedb.Repository,
	parser *timeparse.Parser,
	cfg Config,
	db *bun.DB,
) (*Module, error) {
	logger := obs.Logger.With("module", "event")
	tracer := obs.Tracer("event")

	logger.InfoContext(ctx, "event.NewEventModule initializing")

	var (
		queue     *eventqueue.Service
		reminders eventservice.ReminderScheduler
	)
	if cfg.QueueDSN != "" {
		q, err := eventqueue.NewService(ctx, db, logger, cfg.QueueDSN, obs.Metrics, publisher)
		if err != nil {
			return nil, fmt.Errorf("failed to create event queue: %w", err)
		}
		queue = q
		reminders = q
	} else {
		logger.InfoContext(ctx, "Event reminders disabled, no queue configured")
	}

	repo := eventdb.NewRepository(db)
	service := eventservice.NewEventService(repo, venueRepo, reminders, publisher, parser, cfg.Service, logger, obs.Metrics, tracer, db)

	return &Module{
		EventService: service,
		Repository:   repo,
		Queue:        queue,
		handlers:     eventhandlers.NewEventHandlers(service, logger, tracer),
		obs:          obs,
	}, nil
}

// Run starts the reminder queue, if any.
func (m *Module) Run(ctx context.Context) error {
	if m.Queue == nil {
		return nil
	}
	if err := m.Queue.Start(ctx); err != nil {
		return fmt.Errorf("failed to start event queue: %w", err)
	}
	return nil
}

// Close stops the reminder queue.
func (m *Module) Close(ctx context.Context) error {
	if m.Queue == nil {
		return nil
	}
	if err := m.Queue.Stop(ctx); err != nil {
		m.obs.Logger.ErrorContext(ctx, "Failed to stop event queue", attr.Error(err))
		return err
	}
	return nil
}

// RegisterRoutes mounts the event endpoints on the /api router.
func (m *Module) RegisterRoutes(r chi.Router) {
	h := m.handlers
	organizer := authhandlers.RequireRole(authdomain.RoleOrganizer)

	r.Get("/events", h.HandleListEvents)
	r.Get("/events/{id}", h.HandleGetEvent)
	r.Get("/events/{id}/judges", h.HandleListJudges)

	r.With(organizer).Post("/events", h.HandleCreateEvent)
	r.With(organizer).Put("/events/{id}", h.HandleUpdateEvent)
	r.With(organizer).Delete("/events/{id}", h.HandleDeleteEvent)
}
