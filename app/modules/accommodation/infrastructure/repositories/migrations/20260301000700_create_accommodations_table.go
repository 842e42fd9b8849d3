package accommodationmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating accommodations table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS accommodations (
					accommodation_id BIGSERIAL PRIMARY KEY,
					user_id BIGINT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
					room_number VARCHAR(20),
					budget NUMERIC(10,2) CHECK (budget IS NULL OR budget >= 0),
					check_in_date DATE NOT NULL,
					check_out_date DATE NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT chk_accommodations_stay CHECK (check_out_date > check_in_date)
				);
				CREATE INDEX IF NOT EXISTS idx_accommodations_user ON accommodations(user_id, check_out_date);
			`); err != nil {
				return fmt.Errorf("failed to create accommodations table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping accommodations table...")

		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS accommodations CASCADE;`)
		return err
	})
}
