package finance

import (
	"context"

	authdomain "github.com/Black-And-White-Club/nascon/app/modules/auth/domain"
	authhandlers "github.com/Black-And-White-Club/nascon/app/modules/auth/infrastructure/handlers"
	financeservice "github.com/Black-And-White-Club/nascon/app/modules/finance/application"
	financehandlers "github.com/Black-And-White-Club/nascon/app/modules/finance/infrastructure/handlers"
	financedb "github.com/Black-And-White-Club/nascon/app/modules/finance/infrastructure/repositories"
	"github.com/Black-And-White-Club/nascon/app/shared/eventbus"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the finance module: payments, sponsorship contracts and
// finance reports.
type Module struct {
	FinanceService financeservice.Service
	Repository     financedb.Repository
	handlers       financehandlers.Handlers
}

// NewFinanceModule creates and initializes a new finance module.
func NewFinanceModule(
	ctx context.Context,
	obs observability.Observability,
	publisher eventbus.Publisher,
	events financeservice.EventReader,
	db *bun.DB,
) *Module {
	logger := obs.Logger.With("module", "finance")
	tracer := obs.Tracer("finance")

	logger.InfoContext(ctx, "finance.NewFinanceModule initializing")

	repo := financedb.NewRepository(db)
	service := financeservice.NewFinanceService(repo, events, publisher, nil, logger, obs.Metrics, tracer, db)

	return &Module{
		FinanceService: service,
		Repository:     repo,
		handlers:       financehandlers.NewFinanceHandlers(service, logger, tracer),
	}
}

// RegisterRoutes mounts the finance endpoints on the /api router.
func (m *Module) RegisterRoutes(r chi.Router) {
	h := m.handlers

	r.Get("/sponsorship/packages", h.HandlePackages)

	r.Group(func(r chi.Router) {
		r.Use(authhandlers.RequireSession)
		r.Post("/payments", h.HandleRecordPayment)
		r.Get("/users/{id}/payments", h.HandleListUserPayments)
	})

	r.Group(func(r chi.Router) {
		r.Use(authhandlers.RequireRole(authdomain.RoleSponsor, authdomain.RoleOrganizer))
		r.Post("/sponsorship/contracts", h.HandleSignContract)
		r.Get("/sponsorship/contracts/{id}", h.HandleListSponsorContracts)
		r.Put("/sponsorship/contracts/{id}/branding", h.HandleUpdateBranding)
	})

	r.Group(func(r chi.Router) {
		r.Use(authhandlers.RequireRole(authdomain.RoleOrganizer))
		r.Get("/sponsorship/contracts", h.HandleListContracts)
		r.Get("/sponsorship/statistics", h.HandleStatistics)
		r.Get("/finance/summary", h.HandleSummary)
		r.Get("/finance/reports/{type}", h.HandleReport)
		r.Get("/finance/reports/{type}/export", h.HandleExportReport)
	})
}
