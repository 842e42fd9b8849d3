package score

import (
	"context"

	authdomain "github.com/Black-And-White-Club/nascon/app/modules/auth/domain"
	authhandlers "github.com/Black-And-White-Club/nascon/app/modules/auth/infrastructure/handlers"
	scoreservice "github.com/Black-And-White-Club/nascon/app/modules/score/application"
	scorehandlers "github.com/Black-And-White-Club/nascon/app/modules/score/infrastructure/handlers"
	scoredb "github.com/Black-And-White-Club/nascon/app/modules/score/infrastructure/repositories"
	"github.com/Black-And-White-Club/nascon/app/shared/eventbus"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the score module.
type Module struct {
	ScoreService scoreservice.Service
	Repository   scoredb.Repository
	handlers     scorehandlers.Handlers
}

// NewScoreModule creates and initializes a new score module.
func NewScoreModule(
	ctx context.Context,
	obs observability.Observability,
	publisher eventbus.Publisher,
	events scoreservice.EventReader,
	judges scoreservice.JudgeRoster,
	participants scoreservice.ParticipantRoster,
	db *bun.DB,
) *Module {
	logger := obs.Logger.With("module", "score")
	tracer := obs.Tracer("score")

	logger.InfoContext(ctx, "score.NewScoreModule initializing")

	repo := scoredb.NewRepository(db)
	service := scoreservice.NewScoreService(repo, events, judges, participants, publisher, logger, obs.Metrics, tracer, db)

	return &Module{
		ScoreService: service,
		Repository:   repo,
		handlers:     scorehandlers.NewScoreHandlers(service, logger, tracer),
	}
}

// RegisterRoutes mounts the score endpoints on the /api router.
func (m *Module) RegisterRoutes(r chi.Router) {
	h := m.handlers

	r.With(authhandlers.RequireRole(authdomain.RoleJudge)).Post("/scores", h.HandleSubmitScore)
	r.With(authhandlers.RequireRole(authdomain.RoleJudge, authdomain.RoleOrganizer)).
		Get("/judges/{id}/events/{eventId}/scores", h.HandleJudgeScores)
	r.With(authhandlers.RequireRole(authdomain.RoleJudge, authdomain.RoleOrganizer)).
		Get("/events/{id}/coverage", h.HandleCoverage)
}
