package app

import (
	"context"
	"fmt"

	"github.com/Black-And-White-Club/nascon/app/modules/accommodation"
	"github.com/Black-And-White-Club/nascon/app/modules/activity"
	"github.com/Black-And-White-Club/nascon/app/modules/auth"
	"github.com/Black-And-White-Club/nascon/app/modules/event"
	eventservice "github.com/Black-And-White-Club/nascon/app/modules/event/application"
	"github.com/Black-And-White-Club/nascon/app/modules/finance"
	"github.com/Black-And-White-Club/nascon/app/modules/judge"
	"github.com/Black-And-White-Club/nascon/app/modules/leaderboard"
	"github.com/Black-And-White-Club/nascon/app/modules/registration"
	"github.com/Black-And-White-Club/nascon/app/modules/score"
	"github.com/Black-And-White-Club/nascon/app/modules/user"
	"github.com/Black-And-White-Club/nascon/app/modules/venue"
	"github.com/Black-And-White-Club/nascon/app/shared/eventbus"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/Black-And-White-Club/nascon/app/shared/timeparse"
	"github.com/Black-And-White-Club/nascon/config"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// RouteRegistrar is implemented by every module that serves HTTP.
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// ModuleRegistry stores the application modules.
type ModuleRegistry struct {
	User          *user.Module
	Auth          *auth.Module
	Venue         *venue.Module
	Event         *event.Module
	Registration  *registration.Module
	Judge         *judge.Module
	Score         *score.Module
	Leaderboard   *leaderboard.Module
	Finance       *finance.Module
	Accommodation *accommodation.Module
	Activity      *activity.Module
}

// NewModuleRegistry builds every module. Modules that read another module's
// data receive its repository.
func NewModuleRegistry(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	bus eventbus.EventBus,
	db *bun.DB,
) (*ModuleRegistry, error) {
	parser := timeparse.NewParser(nil, nil)

	userModule := user.NewUserModule(ctx, obs, bus, db)

	authModule, err := auth.NewAuthModule(ctx, obs, auth.Config{
		JWTSecret: cfg.JWT.Secret,
		Issuer:    cfg.JWT.Issuer,
		TokenTTL:  cfg.JWT.DefaultTTL,
	}, userModule.Repository, db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth module: %w", err)
	}

	venueModule := venue.NewVenueModule(ctx, obs, bus, parser, cfg.Scheduling.ConflictWindow, db)

	eventCfg := event.Config{
		Service: eventservice.Config{
			ConflictWindow: cfg.Scheduling.ConflictWindow,
			ReminderLead:   cfg.Queue.ReminderLead,
		},
	}
	if cfg.Queue.Enabled {
		eventCfg.QueueDSN = cfg.Postgres.DSN
	}
	eventModule, err := event.NewEventModule(ctx, obs, bus, venueModule.Repository, parser, eventCfg, db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event module: %w", err)
	}

	registrationModule := registration.NewRegistrationModule(ctx, obs, bus, eventModule.Repository, db)
	judgeModule := judge.NewJudgeModule(ctx, obs, bus, userModule.Repository, eventModule.Repository, db)
	scoreModule := score.NewScoreModule(ctx, obs, bus, eventModule.Repository, judgeModule.Repository, registrationModule.Repository, db)
	leaderboardModule := leaderboard.NewLeaderboardModule(ctx, obs, eventModule.Repository, db)
	financeModule := finance.NewFinanceModule(ctx, obs, bus, eventModule.Repository, db)
	accommodationModule := accommodation.NewAccommodationModule(ctx, obs, bus, parser, db)

	activityModule, err := activity.NewActivityModule(ctx, obs, bus, db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize activity module: %w", err)
	}

	return &ModuleRegistry{
		User:          userModule,
		Auth:          authModule,
		Venue:         venueModule,
		Event:         eventModule,
		Registration:  registrationModule,
		Judge:         judgeModule,
		Score:         scoreModule,
		Leaderboard:   leaderboardModule,
		Finance:       financeModule,
		Accommodation: accommodationModule,
		Activity:      activityModule,
	}, nil
}

// Routes lists the modules in mount order.
func (m *ModuleRegistry) Routes() []RouteRegistrar {
	return []RouteRegistrar{
		m.User, m.Auth, m.Venue, m.Event, m.Registration, m.Judge,
		m.Score, m.Leaderboard, m.Finance, m.Accommodation, m.Activity,
	}
}
