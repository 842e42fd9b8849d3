package registrationmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating teams, team_invitations and registrations tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS teams (
					team_id BIGSERIAL PRIMARY KEY,
					team_name VARCHAR(100) NOT NULL,
					leader_id BIGINT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
					created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
				);
				CREATE INDEX IF NOT EXISTS idx_teams_leader ON teams(leader_id);
			`); err != nil {
				return fmt.Errorf("failed to create teams table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS team_invitations (
					invitation_id BIGSERIAL PRIMARY KEY,
					team_id BIGINT NOT NULL REFERENCES teams(team_id) ON DELETE CASCADE,
					email VARCHAR(100) NOT NULL,
					status VARCHAR(20) NOT NULL DEFAULT 'Pending',
					created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
				);
			`); err != nil {
				return fmt.Errorf("failed to create team_invitations table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS registrations (
					registration_id BIGSERIAL PRIMARY KEY,
					user_id BIGINT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
					event_id BIGINT NOT NULL REFERENCES events(event_id) ON DELETE RESTRICT,
					team_id BIGINT REFERENCES teams(team_id) ON DELETE SET NULL,
					registration_date TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT uq_registrations_user_event UNIQUE (user_id, event_id)
				);
				CREATE INDEX IF NOT EXISTS idx_registrations_event ON registrations(event_id);
			`); err != nil {
				return fmt.Errorf("failed to create registrations table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping registration tables...")

		_, err := db.ExecContext(ctx, `
			DROP TABLE IF EXISTS registrations CASCADE;
			DROP TABLE IF EXISTS team_invitations CASCADE;
			DROP TABLE IF EXISTS teams CASCADE;
		`)
		return err
	})
}
