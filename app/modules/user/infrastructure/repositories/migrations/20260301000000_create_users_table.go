package usermigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating users table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS users (
					user_id BIGSERIAL PRIMARY KEY,
					full_name VARCHAR(100) NOT NULL,
					email VARCHAR(255) NOT NULL UNIQUE,
					password_hash TEXT NOT NULL,
					phone_number VARCHAR(32),
					user_type VARCHAR(20) NOT NULL
						CHECK (user_type IN ('Participant', 'Organizer', 'Sponsor', 'Judge', 'Admin')),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_users_user_type ON users(user_type);
			`); err != nil {
				return fmt.Errorf("failed to create users table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping users table...")

		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS users CASCADE;`)
		return err
	})
}
