package app

import (
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	accommodationmigrations "github.com/Black-And-White-Club/nascon/app/modules/accommodation/infrastructure/repositories/migrations"
	activitymigrations "github.com/Black-And-White-Club/nascon/app/modules/activity/infrastructure/repositories/migrations"
	eventmigrations "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories/migrations"
	financemigrations "github.com/Black-And-White-Club/nascon/app/modules/finance/infrastructure/repositories/migrations"
	judgemigrations "github.com/Black-And-White-Club/nascon/app/modules/judge/infrastructure/repositories/migrations"
	registrationmigrations "github.com/Black-And-White-Club/nascon/app/modules/registration/infrastructure/repositories/migrations"
	scoremigrations "github.com/Black-And-White-Club/nascon/app/modules/score/infrastructure/repositories/migrations"
	usermigrations "github.com/Black-And-White-Club/nascon/app/modules/user/infrastructure/repositories/migrations"
	venuemigrations "github.com/Black-And-White-Club/nascon/app/modules/venue/infrastructure/repositories/migrations"
)

// MigrationSet is one module's migrations.
type MigrationSet struct {
	Module     string
	Migrations *migrate.Migrations
}

// MigrationSets returns every module's migrations in foreign-key order.
func MigrationSets() []MigrationSet {
	return []MigrationSet{
		{"user", usermigrations.Migrations},
		{"venue", venuemigrations.Migrations},
		{"event", eventmigrations.Migrations},
		{"registration", registrationmigrations.Migrations},
		{"judge", judgemigrations.Migrations},
		{"score", scoremigrations.Migrations},
		{"finance", financemigrations.Migrations},
		{"accommodation", accommodationmigrations.Migrations},
		{"activity", activitymigrations.Migrations},
	}
}

// NewMigrator returns the migrator for set. Each module keeps its own
// bookkeeping tables so rollbacks stay per module.
func NewMigrator(db *bun.DB, set MigrationSet) *migrate.Migrator {
	return migrate.NewMigrator(db, set.Migrations,
		migrate.WithTableName("bun_migrations_"+set.Module),
		migrate.WithLocksTableName("bun_migration_locks_"+set.Module),
	)
}
