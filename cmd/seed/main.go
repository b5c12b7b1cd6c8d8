// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/carterperez-dev/travel-marketplace/internal/config"
	"github.com/carterperez-dev/travel-marketplace/internal/core"
	"github.com/carterperez-dev/travel-marketplace/internal/destination"
)

// seed migrates the schema and loads the destination catalogue without
// starting the HTTP server.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}()

	if err := db.Migrate(ctx); err != nil {
		return err
	}

	n, err := destination.NewService(destination.NewRepository(db.DB)).Seed(ctx)
	if err != nil {
		return err
	}

	slog.Info("seed complete", "dialect", db.Dialect, "destinations_inserted", n)
	return nil
}
