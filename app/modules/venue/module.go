package venue

import (
	"context"
	"time"

	authdomain "github.com/Black-And-White-Club/nascon/app/modules/auth/domain"
	authhandlers "github.com/Black-And-White-Club/nascon/app/modules/auth/infrastructure/handlers"
	venueservice "github.com/Black-And-White-Club/nascon/app/modules/venue/application"
	venuehandlers "github.com/Black-And-White-Club/nascon/app/modules/venue/infrastructure/handlers"
	venuedb "github.com/Black-And-White-Club/nascon/app/modules/venue/infrastructure/repositories"
	"github.com/Black-And-White-Club/nascon/app/shared/eventbus"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/Black-And-White-Club/nascon/app/shared/timeparse"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the venue module.
type Module struct {
	VenueService venueservice.Service
	Repository   venuedb.Repository
	handlers     venuehandlers.Handlers
}

// NewVenueModule creates and initializes a new venue module.
func NewVenueModule(
	ctx context.Context,
	obs observability.Observability,
	publisher eventbus.Publisher,
	parser *timeparse.Parser,
	conflictWindow time.Duration,
	db *bun.DB,
) *Module {
	logger := obs.Logger.With("module", "venue")
	tracer := obs.Tracer("venue")

	logger.InfoContext(ctx, "venue.NewVenueModule initializing")

	repo := venuedb.NewRepository(db)
	service := venueservice.NewVenueService(repo, publisher, parser, conflictWindow, logger, obs.Metrics, tracer, db)

	return &Module{
		VenueService: service,
		Repository:   repo,
		handlers:     venuehandlers.NewVenueHandlers(service, logger, tracer),
	}
}

// RegisterRoutes mounts the venue endpoints on the /api router.
func (m *Module) RegisterRoutes(r chi.Router) {
	h := m.handlers
	organizer := authhandlers.RequireRole(authdomain.RoleOrganizer)

	r.Get("/venues", h.HandleListVenues)
	r.Get("/venues/schedules", h.HandleSchedules)
	r.Get("/venues/utilization", h.HandleUtilization)
	r.Get("/venues/utilization/chart", h.HandleUtilizationChart)
	r.Get("/venues/{id}", h.HandleGetVenue)
	r.Get("/venues/{id}/availability", h.HandleAvailability)

	r.With(organizer).Post("/venues", h.HandleCreateVenue)
	r.With(organizer).Put("/venues/{id}", h.HandleUpdateVenue)
	r.With(organizer).Delete("/venues/{id}", h.HandleDeleteVenue)
}
