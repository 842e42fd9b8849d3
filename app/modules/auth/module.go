package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	authservice "github.com/Black-And-White-Club/nascon/app/modules/auth/application"
	authhandlers "github.com/Black-And-White-Club/nascon/app/modules/auth/infrastructure/handlers"
	authjwt "github.com/Black-And-White-Club/nascon/app/modules/auth/infrastructure/jwt"
	userdb "github.com/Black-And-White-Club/nascon/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"golang.org/x/time/rate"
)

// Config holds the auth module settings.
type Config struct {
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

// Module represents the auth module.
type Module struct {
	AuthService authservice.Service
	Provider    authjwt.Provider
	handlers    authhandlers.Handlers
	limiter     *authhandlers.IPRateLimiter
}

// NewAuthModule creates and initializes a new auth module.
func NewAuthModule(
	ctx context.Context,
	obs observability.Observability,
	cfg Config,
	userRepo userdb.Repository,
	db *bun.DB,
) (*Module, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("auth: JWT secret is required")
	}

	logger := obs.Logger.With("module", "auth")
	tracer := obs.Tracer("auth")

	logger.InfoContext(ctx, "auth.NewAuthModule initializing")

	provider := authjwt.NewProvider(cfg.JWTSecret, cfg.Issuer)
	service := authservice.NewService(provider, userRepo, authservice.Config{TokenTTL: cfg.TokenTTL}, logger, obs.Metrics, tracer, db)

	return &Module{
		AuthService: service,
		Provider:    provider,
		handlers:    authhandlers.NewAuthHandlers(service, logger, tracer),
		limiter:     authhandlers.NewIPRateLimiter(rate.Limit(1), 5),
	}, nil
}

// Authenticate returns the bearer-token middleware for the /api router.
func (m *Module) Authenticate() func(next http.Handler) http.Handler {
	return authhandlers.Authenticate(m.Provider)
}

// RegisterRoutes mounts the auth endpoints on the /api router.
func (m *Module) RegisterRoutes(r chi.Router) {
	r.With(authhandlers.RateLimitMiddleware(m.limiter)).Post("/login", m.handlers.HandleLogin)
}
