package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectDB establishes a connection to the PostgreSQL database. Unlike a
// hard dependency, a failure here is survivable: callers fall back to the
// in-memory store.
func ConnectDB(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	maxRetries := 3
	retryInterval := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(ctx, databaseURL)
		if err == nil {
			err = pool.Ping(ctx)
			if err == nil {
				return pool, nil
			}
			pool.Close()
		}
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// AutoMigrate creates the users table if it doesn't exist. The unique index
// on email is what makes registration an atomic insert-if-absent.
func AutoMigrate(ctx context.Context, db *pgxpool.Pool) error {
	sql := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('USER', 'VETERINARIAN', 'ADMIN')) DEFAULT 'USER',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}
	return nil
}
