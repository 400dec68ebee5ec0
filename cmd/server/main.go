package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/papyrus-labs/papyrusdb/internal/config"
	handler "github.com/papyrus-labs/papyrusdb/internal/handler/http"
	"github.com/papyrus-labs/papyrusdb/internal/logger"
	"github.com/papyrus-labs/papyrusdb/internal/server"
	"github.com/papyrus-labs/papyrusdb/internal/service"
	"github.com/papyrus-labs/papyrusdb/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("papyrusdb-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	entities, err := newEntityStore(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating entity store")
	}

	ctx := context.Background()
	if err = store.Bootstrap(ctx, entities); err != nil {
		log.Fatal().Err(err).Msg("error bootstrapping entity store")
	}

	services := service.NewServices(entities, log)

	// legacy category records predate the id field; assign ids once at startup
	migrated, err := services.Categories.BackfillIDs(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error backfilling category ids")
	}
	if migrated > 0 {
		log.Info().Int("categories", migrated).Msg("assigned ids to legacy categories")
	}

	handlers := handler.NewHandler(services, cfg, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func newEntityStore(cfg config.Storage) (store.EntityStore, error) {
	switch cfg.Type {
	case config.StorageTypeSQLite:
		return store.NewSQLiteStore(cfg.SQLite.Path)
	case config.StorageTypeJSON:
		return store.NewJSONFileStore(filepath.Join(cfg.JSON.Dir, cfg.JSON.File))
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
