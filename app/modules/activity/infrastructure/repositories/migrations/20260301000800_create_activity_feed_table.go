package activitymigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating activity_feed table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS activity_feed (
					activity_id BIGSERIAL PRIMARY KEY,
					message_id VARCHAR(64) NOT NULL,
					topic VARCHAR(64) NOT NULL,
					entity_id BIGINT NOT NULL,
					actor_id BIGINT,
					event_id BIGINT,
					summary TEXT NOT NULL,
					correlation_id VARCHAR(64),
					created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT uq_activity_feed_message UNIQUE (message_id)
				);
				CREATE INDEX IF NOT EXISTS idx_activity_feed_created ON activity_feed(created_at DESC, activity_id DESC);
			`); err != nil {
				return fmt.Errorf("failed to create activity_feed table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping activity_feed table...")

		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS activity_feed CASCADE;`)
		return err
	})
}
