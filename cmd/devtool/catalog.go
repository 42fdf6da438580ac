package main

import (
	"context"
	"fmt"

	"github.com/osse101/HarvestCodex_Go/internal/bootstrap"
	"github.com/osse101/HarvestCodex_Go/internal/catalog"
	"github.com/osse101/HarvestCodex_Go/internal/domain"
)

type CatalogCommand struct{}

func (c *CatalogCommand) Name() string {
	return "catalog"
}

func (c *CatalogCommand) Description() string {
	return "Validate the bundled catalog (check) or mirror it into the store (sync)"
}

func (c *CatalogCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: check, sync")
	}

	ctx := context.Background()
	switch args[0] {
	case "check":
		cat, err := catalog.Load(ctx)
		if err != nil {
			return err
		}
		printSummary(cat)
		return nil

	case "sync":
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := bootstrap.OpenStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		cat, err := bootstrap.LoadCatalog(ctx, store, true)
		if err != nil {
			return err
		}
		PrintSuccess("Catalog %s is in the store", cat.Hash())
		return nil
	}

	return fmt.Errorf("unknown subcommand %q: expected check or sync", args[0])
}

func printSummary(cat *catalog.Catalog) {
	summary := cat.Summarize()
	PrintHeader("Catalog")
	PrintSuccess("%d items valid against the schema (hash %s)", summary.Total, cat.Hash())
	for _, game := range domain.AllGames {
		PrintInfo("%s: %d items", game, summary.ByGame[game])
		for _, category := range domain.AllCategories {
			if n := summary.ByCategory[game][category]; n > 0 {
				fmt.Printf("    %-20s %d\n", category, n)
			}
		}
	}
	PrintInfo("%d names shared across games", summary.SharedNames)
}
