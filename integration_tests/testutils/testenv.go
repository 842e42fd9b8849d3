package testutils

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"

	"github.com/Black-And-White-Club/nascon/app"
	"github.com/Black-And-White-Club/nascon/app/shared/database"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/Black-And-White-Club/nascon/integration_tests/containers"
	"github.com/prometheus/client_golang/prometheus"
	tcnats "github.com/testcontainers/testcontainers-go/modules/nats"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
)

// truncateOrder lists the application tables, dependents first.
var truncateOrder = []string{
	"activity_feed", "accommodations", "payments", "sponsorships", "scores",
	"judge_assignments", "registrations", "team_invitations", "teams",
	"events", "venues", "users",
}

// TestEnvironment holds the containers and connections shared by one test package.
type TestEnvironment struct {
	Ctx           context.Context
	Cancel        context.CancelFunc
	PgContainer   *postgres.PostgresContainer
	NatsContainer *tcnats.NATSContainer
	DSN           string
	NatsURL       string
	DB            *bun.DB
	Obs           observability.Observability
}

// NewTestEnvironment starts Postgres and migrates every module.
func NewTestEnvironment(ctx context.Context) (*TestEnvironment, error) {
	ctx, cancel := context.WithCancel(ctx)

	pgContainer, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}

	db := database.Open(dsn)
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		_ = pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &TestEnvironment{
		Ctx:         ctx,
		Cancel:      cancel,
		PgContainer: pgContainer,
		DSN:         dsn,
		DB:          db,
		Obs: observability.Observability{
			Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
			Metrics:  observability.NewNoop(),
			Registry: prometheus.NewRegistry(),
		},
	}, nil
}

// StartNats starts a NATS container for tests that need the networked bus.
func (env *TestEnvironment) StartNats() error {
	if env.NatsContainer != nil {
		return nil
	}
	natsContainer, natsURL, err := containers.SetupNatsContainer(env.Ctx)
	if err != nil {
		return err
	}
	env.NatsContainer = natsContainer
	env.NatsURL = natsURL
	return nil
}

// RunMigrations applies every module's migrations in foreign-key order.
func RunMigrations(ctx context.Context, db *bun.DB) error {
	for _, set := range app.MigrationSets() {
		migrator := app.NewMigrator(db, set)
		if err := migrator.Init(ctx); err != nil {
			return fmt.Errorf("init %s migrations: %w", set.Module, err)
		}
		if _, err := migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate %s: %w", set.Module, err)
		}
	}
	return nil
}

// Reset empties every application table and restarts the id sequences.
func (env *TestEnvironment) Reset() error {
	for _, table := range truncateOrder {
		if _, err := env.DB.ExecContext(env.Ctx, "TRUNCATE TABLE "+table+" RESTART IDENTITY CASCADE"); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

// Cleanup closes the database and terminates the containers.
func (env *TestEnvironment) Cleanup() {
	if env.DB != nil {
		if err := env.DB.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
	ctx := context.Background()
	if env.NatsContainer != nil {
		if err := env.NatsContainer.Terminate(ctx); err != nil {
			log.Printf("Error terminating NATS container: %v", err)
		}
	}
	if env.PgContainer != nil {
		if err := env.PgContainer.Terminate(ctx); err != nil {
			log.Printf("Error terminating Postgres container: %v", err)
		}
	}
	env.Cancel()
}
