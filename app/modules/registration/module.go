package registration

import (
	"context"

	authhandlers "github.com/Black-And-White-Club/nascon/app/modules/auth/infrastructure/handlers"
	registrationservice "github.com/Black-And-White-Club/nascon/app/modules/registration/application"
	registrationhandlers "github.com/Black-And-White-Club/nascon/app/modules/registration/infrastructure/handlers"
	registrationdb "github.com/Black-And-White-Club/nascon/app/modules/registration/infrastructure/repositories"
	"github.com/Black-And-White-Club/nascon/app/shared/eventbus"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the registration module.
type Module struct {
	RegistrationService registrationservice.Service
	Repository          registrationdb.Repository
	handlers            registrationhandlers.Handlers
}

// NewRegistrationModule creates and initializes a new registration module.
func NewRegistrationModule(
	ctx context.Context,
	obs observability.Observability,
	publisher eventbus.Publisher,
	events registrationservice.EventLocker,
	db *bun.DB,
) *Module {
	logger := obs.Logger.With("module", "registration")
	tracer := obs.Tracer("registration")

	logger.InfoContext(ctx, "registration.NewRegistrationModule initializing")

	repo := registrationdb.NewRepository(db)
	service := registrationservice.NewRegistrationService(repo, events, publisher, logger, obs.Metrics, tracer, db)

	return &Module{
		RegistrationService: service,
		Repository:          repo,
		handlers:            registrationhandlers.NewRegistrationHandlers(service, logger, tracer),
	}
}

// RegisterRoutes mounts the registration and team endpoints on the /api router.
func (m *Module) RegisterRoutes(r chi.Router) {
	h := m.handlers

	r.Get("/events/{id}/registrations", h.HandleListParticipants)
	r.Get("/events/{id}/registrations/count", h.HandleCount)
	r.Get("/events/{id}/registrations/{userId}", h.HandleGetRegistration)

	r.Group(func(r chi.Router) {
		r.Use(authhandlers.RequireSession)
		r.Post("/registrations", h.HandleRegister)
		r.Post("/teams", h.HandleCreateTeam)
		r.Get("/users/{id}/registrations", h.HandleListUserRegistrations)
		r.Get("/users/{id}/teams", h.HandleListUserTeams)
	})
}
