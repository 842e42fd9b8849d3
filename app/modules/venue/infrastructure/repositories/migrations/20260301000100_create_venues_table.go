package venuemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating venues table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS venues (
					venue_id BIGSERIAL PRIMARY KEY,
					venue_name VARCHAR(100) NOT NULL,
					capacity INTEGER CHECK (capacity IS NULL OR capacity >= 0),
					location VARCHAR(255),
					availability_status BOOLEAN NOT NULL DEFAULT TRUE
				);
			`); err != nil {
				return fmt.Errorf("failed to create venues table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping venues table...")

		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS venues CASCADE;`)
		return err
	})
}
