package scoremigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating scores table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS scores (
					score_id BIGSERIAL PRIMARY KEY,
					judge_id BIGINT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
					participant_id BIGINT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
					event_id BIGINT NOT NULL REFERENCES events(event_id) ON DELETE RESTRICT,
					round VARCHAR(20) NOT NULL DEFAULT 'Finals'
						CHECK (round IN ('Prelims', 'Semi-Finals', 'Finals')),
					score DOUBLE PRECISION NOT NULL CHECK (score BETWEEN 0 AND 100),
					submitted_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT uq_scores_judge_participant_event_round UNIQUE (judge_id, participant_id, event_id, round)
				);
				CREATE INDEX IF NOT EXISTS idx_scores_event_round ON scores(event_id, round);
			`); err != nil {
				return fmt.Errorf("failed to create scores table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping scores table...")

		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS scores CASCADE;`)
		return err
	})
}
