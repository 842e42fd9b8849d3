package judge

import (
	"context"

	authdomain "github.com/Black-And-White-Club/nascon/app/modules/auth/domain"
	authhandlers "github.com/Black-And-White-Club/nascon/app/modules/auth/infrastructure/handlers"
	judgeservice "github.com/Black-And-White-Club/nascon/app/modules/judge/application"
	judgehandlers "github.com/Black-And-White-Club/nascon/app/modules/judge/infrastructure/handlers"
	judgedb "github.com/Black-And-White-Club/nascon/app/modules/judge/infrastructure/repositories"
	"github.com/Black-And-White-Club/nascon/app/shared/eventbus"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the judge assignment module.
type Module struct {
	JudgeService judgeservice.Service
	Repository   judgedb.Repository
	handlers     judgehandlers.Handlers
}

// NewJudgeModule creates and initializes a new judge module.
func NewJudgeModule(
	ctx context.Context,
	obs observability.Observability,
	publisher eventbus.Publisher,
	users judgeservice.UserReader,
	events judgeservice.EventReader,
	db *bun.DB,
) *Module {
	logger := obs.Logger.With("module", "judge")
	tracer := obs.Tracer("judge")

	logger.InfoContext(ctx, "judge.NewJudgeModule initializing")

	repo := judgedb.NewRepository(db)
	service := judgeservice.NewJudgeService(repo, users, events, publisher, logger, obs.Metrics, tracer, db)

	return &Module{
		JudgeService: service,
		Repository:   repo,
		handlers:     judgehandlers.NewJudgeHandlers(service, logger, tracer),
	}
}

// RegisterRoutes mounts the judge assignment endpoints on the /api router.
func (m *Module) RegisterRoutes(r chi.Router) {
	organizer := authhandlers.RequireRole(authdomain.RoleOrganizer)

	r.With(organizer).Post("/judge-assignments", m.handlers.HandleAssign)
	r.With(organizer).Delete("/judge-assignments/{id}", m.handlers.HandleUnassign)
	r.With(authhandlers.RequireSession).Get("/judges/{id}/assignments", m.handlers.HandleListAssignments)
}
