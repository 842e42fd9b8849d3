package financemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating sponsorships and payments tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS sponsorships (
					sponsorship_id BIGSERIAL PRIMARY KEY,
					sponsor_id BIGINT NOT NULL REFERENCES users(user_id) ON DELETE RESTRICT,
					sponsorship_type VARCHAR(50) NOT NULL,
					amount_paid NUMERIC(12,2) NOT NULL CHECK (amount_paid >= 0),
					contract_details TEXT,
					branding_opportunities TEXT,
					payment_date TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
				);
				CREATE INDEX IF NOT EXISTS idx_sponsorships_sponsor ON sponsorships(sponsor_id);
			`); err != nil {
				return fmt.Errorf("failed to create sponsorships table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS payments (
					payment_id BIGSERIAL PRIMARY KEY,
					user_id BIGINT NOT NULL REFERENCES users(user_id) ON DELETE RESTRICT,
					event_id BIGINT REFERENCES events(event_id) ON DELETE RESTRICT,
					sponsorship_id BIGINT REFERENCES sponsorships(sponsorship_id) ON DELETE RESTRICT,
					amount_paid NUMERIC(12,2) NOT NULL CHECK (amount_paid > 0),
					payment_date TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
					payment_method VARCHAR(50) NOT NULL,
					CONSTRAINT chk_payments_target CHECK ((event_id IS NULL) <> (sponsorship_id IS NULL))
				);
				CREATE INDEX IF NOT EXISTS idx_payments_user ON payments(user_id, payment_date DESC);
				CREATE INDEX IF NOT EXISTS idx_payments_event ON payments(event_id);
			`); err != nil {
				return fmt.Errorf("failed to create payments table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping finance tables...")

		_, err := db.ExecContext(ctx, `
			DROP TABLE IF EXISTS payments CASCADE;
			DROP TABLE IF EXISTS sponsorships CASCADE;
		`)
		return err
	})
}
