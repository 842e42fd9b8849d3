package accommodation

import (
	"context"

	accommodationservice "github.com/Black-And-White-Club/nascon/app/modules/accommodation/application"
	accommodationhandlers "github.com/Black-And-White-Club/nascon/app/modules/accommodation/infrastructure/handlers"
	accommodationdb "github.com/Black-And-White-Club/nascon/app/modules/accommodation/infrastructure/repositories"
	authdomain "github.com/Black-And-White-Club/nascon/app/modules/auth/domain"
	authhandlers "github.com/Black-And-White-Club/nascon/app/modules/auth/infrastructure/handlers"
	"github.com/Black-And-White-Club/nascon/app/shared/eventbus"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the accommodation module.
type Module struct {
	AccommodationService accommodationservice.Service
	Repository           accommodationdb.Repository
	handlers             accommodationhandlers.Handlers
}

// NewAccommodationModule creates and initializes a new accommodation module.
func NewAccommodationModule(
	ctx context.Context,
	obs observability.Observability,
	publisher eventbus.Publisher,
	dates accommodationservice.DateParser,
	db *bun.DB,
) *Module {
	logger := obs.Logger.With("module", "accommodation")
	tracer := obs.Tracer("accommodation")

	logger.InfoContext(ctx, "accommodation.NewAccommodationModule initializing")

	repo := accommodationdb.NewRepository(db)
	service := accommodationservice.NewAccommodationService(repo, dates, nil, publisher, logger, obs.Metrics, tracer, db)

	return &Module{
		AccommodationService: service,
		Repository:           repo,
		handlers:             accommodationhandlers.NewAccommodationHandlers(service, logger, tracer),
	}
}

// RegisterRoutes mounts the accommodation endpoints on the /api router.
func (m *Module) RegisterRoutes(r chi.Router) {
	h := m.handlers

	r.Group(func(r chi.Router) {
		r.Use(authhandlers.RequireSession)
		r.Post("/accommodations", h.HandleRequest)
		r.Delete("/accommodations/{id}", h.HandleDelete)
		r.Get("/users/{id}/accommodation", h.HandleListUserAccommodation)
	})

	r.Group(func(r chi.Router) {
		r.Use(authhandlers.RequireRole(authdomain.RoleOrganizer))
		r.Put("/accommodations/{id}", h.HandleUpdate)
		r.Get("/accommodations/search", h.HandleSearch)
		r.Get("/reports/accommodations", h.HandleReport)
	})
}
