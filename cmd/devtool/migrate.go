package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/osse101/HarvestCodex_Go/internal/config"
	"github.com/osse101/HarvestCodex_Go/internal/database"
	"github.com/osse101/HarvestCodex_Go/migrations"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply or inspect database migrations (up, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, status")
	}
	subcmd := args[0]
	if subcmd != "up" && subcmd != "status" {
		return fmt.Errorf("unknown subcommand %q: expected up or status", subcmd)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	db, dialect, dir, closeFn, err := openMigrationDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	PrintHeader(fmt.Sprintf("Migrations (%s)", cfg.StoreDriver))

	if subcmd == "up" {
		applied, err := database.Migrate(ctx, db, dialect, dir)
		if err != nil {
			return err
		}
		PrintSuccess("Applied %d migration(s)", applied)
		return nil
	}

	statuses, err := database.MigrationStatus(ctx, db, dialect, dir)
	if err != nil {
		return err
	}
	for _, st := range statuses {
		if st.State == goose.StateApplied {
			PrintSuccess("%-6d %s (applied %s)", st.Source.Version, st.Source.Path, st.AppliedAt.Format("2006-01-02 15:04"))
		} else {
			PrintWarning("%-6d %s (pending)", st.Source.Version, st.Source.Path)
		}
	}
	return nil
}

func openMigrationDB(ctx context.Context, cfg *config.Config) (*sql.DB, goose.Dialect, string, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(),
			database.PoolOptions{MaxConns: cfg.DBMaxConns})
		if err != nil {
			return nil, "", "", nil, err
		}
		db := stdlib.OpenDBFromPool(pool)
		return db, goose.DialectPostgres, migrations.PostgresDir, func() {
			_ = db.Close()
			pool.Close()
		}, nil

	case config.StoreDriverSQLite:
		db, err := sql.Open("sqlite", cfg.SQLitePath)
		if err != nil {
			return nil, "", "", nil, err
		}
		return db, goose.DialectSQLite3, migrations.SQLiteDir, func() { _ = db.Close() }, nil
	}

	return nil, "", "", nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}
