package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/HarvestCodex_Go/migrations"
)

// Migrate applies every pending migration embedded under dir and returns how many ran
func Migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect, dir string) (int, error) {
	provider, err := newProvider(db, dialect, dir)
	if err != nil {
		return 0, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}

	if len(results) == 0 {
		slog.Default().Info(LogMsgMigrationsUpToDate, "dialect", string(dialect))
	}
	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied,
			"version", r.Source.Version,
			"duration", r.Duration)
	}
	return len(results), nil
}

// MigrationStatus reports applied and pending migrations
func MigrationStatus(ctx context.Context, db *sql.DB, dialect goose.Dialect, dir string) ([]*goose.MigrationStatus, error) {
	provider, err := newProvider(db, dialect, dir)
	if err != nil {
		return nil, err
	}

	status, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadStatus, err)
	}
	return status, nil
}

// MigratePostgres runs the postgres migrations over a pgx pool
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	// Closing this handle leaves the pool open
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return Migrate(ctx, db, goose.DialectPostgres, migrations.PostgresDir)
}

// MigrateSQLite runs the sqlite migrations
func MigrateSQLite(ctx context.Context, db *sql.DB) (int, error) {
	return Migrate(ctx, db, goose.DialectSQLite3, migrations.SQLiteDir)
}

func newProvider(db *sql.DB, dialect goose.Dialect, dir string) (*goose.Provider, error) {
	sub, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenMigrations, err)
	}

	provider, err := goose.NewProvider(dialect, db, sub)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenMigrations, err)
	}
	return provider, nil
}
