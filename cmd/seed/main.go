// Command seed creates the storefront schema and loads the demo catalog.
// It is safe to run repeatedly; existing rows are never modified.
package main

import (
	"log/slog"
	"os"

	"storefront/config"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		slog.Error("Failed to create logger", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("Failed to migrate schema", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Schema migrated")

	if err := postgres.Seed(db); err != nil {
		logger.Error("Failed to seed demo catalog", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Demo catalog seeded")
}
