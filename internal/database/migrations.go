package database

import (
	"context"
	"database/sql"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS books (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL,
		title TEXT NOT NULL,
		author TEXT NOT NULL,
		status TEXT NOT NULL CHECK (status IN ('Reading', 'Completed', 'Wishlist')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS books_user_created_idx ON books (user_id, created_at DESC)`,
}

// Migrate applies the schema statements in order. Every statement is
// idempotent, so running it on each startup is safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, migration := range migrations {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			return err
		}
	}
	return nil
}
