package leaderboard

import (
	"context"

	leaderboardservice "github.com/Black-And-White-Club/nascon/app/modules/leaderboard/application"
	leaderboardhandlers "github.com/Black-And-White-Club/nascon/app/modules/leaderboard/infrastructure/handlers"
	leaderboarddb "github.com/Black-And-White-Club/nascon/app/modules/leaderboard/infrastructure/repositories"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the leaderboard module.
type Module struct {
	LeaderboardService leaderboardservice.Service
	handlers           leaderboardhandlers.Handlers
}

// NewLeaderboardModule creates and initializes a new leaderboard module.
func NewLeaderboardModule(
	ctx context.Context,
	obs observability.Observability,
	events leaderboardservice.EventReader,
	db *bun.DB,
) *Module {
	logger := obs.Logger.With("module", "leaderboard")
	tracer := obs.Tracer("leaderboard")

	logger.InfoContext(ctx, "leaderboard.NewLeaderboardModule initializing")

	service := leaderboardservice.NewLeaderboardService(leaderboarddb.NewRepository(db), events, logger, obs.Metrics, tracer, db)

	return &Module{
		LeaderboardService: service,
		handlers:           leaderboardhandlers.NewLeaderboardHandlers(service, logger, tracer),
	}
}

// RegisterRoutes mounts the leaderboard endpoints on the /api router.
func (m *Module) RegisterRoutes(r chi.Router) {
	r.Get("/events/{id}/leaderboard", m.handlers.HandleLeaderboard)
	r.Get("/events/{id}/leaderboard/export", m.handlers.HandleExport)
}
