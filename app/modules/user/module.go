package user

import (
	"context"

	authhandlers "github.com/Black-And-White-Club/nascon/app/modules/auth/infrastructure/handlers"
	userservice "github.com/Black-And-White-Club/nascon/app/modules/user/application"
	userhandlers "github.com/Black-And-White-Club/nascon/app/modules/user/infrastructure/handlers"
	userdb "github.com/Black-And-White-Club/nascon/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/nascon/app/shared/eventbus"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"golang.org/x/time/rate"
)

// Module represents the user module.
type Module struct {
	UserService userservice.Service
	Repository  userdb.Repository
	handlers    userhandlers.Handlers
	limiter     *authhandlers.IPRateLimiter
	obs         observability.Observability
}

// NewUserModule creates and initializes a new user module.
func NewUserModule(
	ctx context.Context,
	obs observability.Observability,
	publisher eventbus.Publisher,
	db *bun.DB,
) *Module {
	logger := obs.Logger.With("module", "user")
	tracer := obs.Tracer("user")

	logger.InfoContext(ctx, "user.NewUserModule initializing")

	repo := userdb.NewRepository(db)
	service := userservice.NewUserService(repo, publisher, logger, obs.Metrics, tracer, db)

	return &Module{
		UserService: service,
		Repository:  repo,
		handlers:    userhandlers.NewUserHandlers(service, logger, tracer),
		limiter:     authhandlers.NewIPRateLimiter(rate.Limit(1), 5),
		obs:         obs,
	}
}

// RegisterRoutes mounts the user endpoints on the /api router.
func (m *Module) RegisterRoutes(r chi.Router) {
	r.With(authhandlers.RateLimitMiddleware(m.limiter)).Post("/register", m.handlers.HandleRegister)
	r.Get("/judges", m.handlers.HandleListJudges)
	r.With(authhandlers.RequireSession).Get("/users/{id}", m.handlers.HandleGetUser)
}
