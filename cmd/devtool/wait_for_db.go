package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/HarvestCodex_Go/internal/config"
)

const (
	waitMaxRetries    = 30
	waitRetryInterval = 2 * time.Second
	waitPingTimeout   = 3 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for the postgres store to accept connections (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.StoreDriver != config.StoreDriverPostgres {
		PrintInfo("Store driver is %s, nothing to wait for", cfg.StoreDriver)
		return nil
	}

	PrintHeader("Waiting for database...")

	for i := 0; i < waitMaxRetries; i++ {
		err = pingOnce(cfg.GetDBConnString())
		if err == nil {
			PrintSuccess("Database is ready")
			return nil
		}

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, waitMaxRetries, err)
		time.Sleep(waitRetryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts", waitMaxRetries)
}

func pingOnce(connString string) error {
	ctx, cancel := context.WithTimeout(context.Background(), waitPingTimeout)
	defer cancel()

	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)
	return conn.Ping(ctx)
}
