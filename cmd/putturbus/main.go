package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"putturbus/internal/catalog"
	"putturbus/internal/config"
	"putturbus/internal/dataset"
	"putturbus/internal/match"
	"putturbus/internal/metrics"
	"putturbus/internal/physics"
	"putturbus/internal/server"
	"putturbus/internal/storage"
	"putturbus/internal/timetable"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load()

	// CLI flags
	importOnly := flag.Bool("import", false, "Import the dataset into the SQLite cache, then exit")
	flag.IntVar(&cfg.Port, "port", cfg.Port, "HTTP server port")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite dataset cache path (empty = load JSON directly)")
	flag.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "Route catalog YAML (empty = embedded default)")
	flag.Parse()
	cfg.ImportOnly = *importOnly

	if cfg.ImportOnly && cfg.DBPath == "" {
		logger.Error("-import requires a database path (-db or PUTTURBUS_DB_PATH)")
		os.Exit(1)
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	logger.Info("catalog loaded", "hub", cat.Hub, "aliases", len(cat.Aliases), "profiles", len(cat.Profiles))

	trips, err := loadTrips(cfg, logger)
	if err != nil {
		logger.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}
	if cfg.ImportOnly {
		return
	}
	logger.Info("dataset loaded", "trips", len(trips))

	resolver := match.New(dataset.Destinations(trips), match.Config{
		SlugPrefix:     cat.SlugPrefix(),
		Aliases:        cat.Aliases,
		Intercity:      cat.Intercity,
		FuzzyThreshold: cat.FuzzyThreshold,
	})
	index := timetable.NewIndex(trips, resolver, cat.Hub)
	engine := timetable.NewEngine(index, resolver, physics.NewStore(cat), cat.GraceMinutes)

	m := metrics.NewCollector()
	m.DatasetTrips.Set(float64(len(trips)))
	m.DatasetDests.Set(float64(len(index.Destinations())))

	srv := server.New(cfg, engine, index, resolver, cat, m, logger)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// loadTrips prefers the SQLite cache when configured and populated, falling
// back to the JSON fixtures. With -import it refreshes the cache and stops.
func loadTrips(cfg *config.Config, logger *slog.Logger) ([]dataset.Trip, error) {
	if cfg.DBPath == "" {
		return dataset.LoadFiles(cfg.LocalDataPath, cfg.IntercityPath)
	}

	db, err := storage.Open(cfg.DBPath, logger)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	ctx := context.Background()

	if cfg.ImportOnly || !db.HasTrips(ctx) {
		trips, err := dataset.LoadFiles(cfg.LocalDataPath, cfg.IntercityPath)
		if err != nil {
			return nil, err
		}
		if err := db.ImportTrips(ctx, trips); err != nil {
			return nil, err
		}
		return trips, nil
	}

	if ts, err := db.GetMetadata(ctx, storage.MetaImportedAt); err == nil && ts != "" {
		logger.Info("using dataset cache", "path", cfg.DBPath, "imported_at", ts)
	}
	return db.LoadTrips(ctx)
}
