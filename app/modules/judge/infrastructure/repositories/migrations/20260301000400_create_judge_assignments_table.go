package judgemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating judge_assignments table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS judge_assignments (
					assignment_id BIGSERIAL PRIMARY KEY,
					judge_id BIGINT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
					event_id BIGINT NOT NULL REFERENCES events(event_id) ON DELETE CASCADE,
					assigned_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT uq_judge_assignments_judge_event UNIQUE (judge_id, event_id)
				);
				CREATE INDEX IF NOT EXISTS idx_judge_assignments_event ON judge_assignments(event_id);
			`); err != nil {
				return fmt.Errorf("failed to create judge_assignments table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping judge_assignments table...")

		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS judge_assignments CASCADE;`)
		return err
	})
}
