package eventmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating events table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS events (
					event_id BIGSERIAL PRIMARY KEY,
					event_name VARCHAR(100) NOT NULL,
					event_type VARCHAR(20) NOT NULL
						CHECK (event_type IN ('Tech', 'Business', 'Gaming', 'General')),
					description TEXT,
					rules TEXT,
					max_participants INTEGER CHECK (max_participants IS NULL OR max_participants > 0),
					registration_fee NUMERIC(10, 2) CHECK (registration_fee IS NULL OR registration_fee >= 0),
					event_date_time TIMESTAMPTZ NOT NULL,
					venue_id BIGINT NOT NULL REFERENCES venues(venue_id) ON DELETE RESTRICT
				);
				CREATE INDEX IF NOT EXISTS idx_events_venue_time ON events(venue_id, event_date_time);
				CREATE INDEX IF NOT EXISTS idx_events_type ON events(event_type);
			`); err != nil {
				return fmt.Errorf("failed to create events table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping events table...")

		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS events CASCADE;`)
		return err
	})
}
