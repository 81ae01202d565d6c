package database

import (
	"context"
	"database/sql"
	_ "embed"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ystas1205/Educational-project/internal/retry"
)

//go:embed schema.sql
var schema string

// NewPostgres opens a pool and waits for the server to answer a ping.
func NewPostgres(ctx context.Context, dsn string, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	policy := retry.Policy{Attempts: 10, BaseDelay: 500 * time.Millisecond, MaxDelay: 4 * time.Second}
	err = retry.Do(ctx, policy, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return db.PingContext(pingCtx)
	}, func(attempt int, err error, wait time.Duration) {
		if logger != nil {
			logger.Warn("database not ready", "attempt", attempt, "retry_in", wait.String(), "error", err)
		}
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema creates missing tables and indexes. It is safe to run on every start.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
