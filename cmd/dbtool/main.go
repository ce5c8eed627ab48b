package main

import (
	"context"
	"flight-route-search/internal/adapters/repositories"
	"flight-route-search/internal/config"
	"flight-route-search/internal/platform/db"
	"flight-route-search/internal/platform/logger"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// dbtool creates the flights schema and loads a CSV catalog into it.
func main() {
	envErr := godotenv.Load()

	cfg, err := config.NewLoader().Load()
	if err != nil {
		slog.Error("load config failed", "err", err)
		os.Exit(1)
	}

	log, closer := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	})
	defer closer.Close()

	if envErr != nil {
		log.Info("no .env file found, using environment variables")
	}

	databaseURL := config.Get("DATABASE_URL", cfg.Database.URL)
	if strings.TrimSpace(databaseURL) == "" {
		log.Error("DATABASE_URL is required")
		closer.Close()
		os.Exit(1)
	}

	if err := runDBTool(log, databaseURL, cfg.Database); err != nil {
		log.Error("dbtool failed", "err", err)
		closer.Close()
		os.Exit(1)
	}
}

func runDBTool(log *slog.Logger, databaseURL string, dbCfg config.DatabaseConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := db.Open(ctx, databaseURL, db.Options{
		MaxConns:        dbCfg.MaxConns,
		ConnMaxLifetime: dbCfg.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	seedPath := config.Get("SEED_PATH", "data/flights.csv")
	return initAndSeed(ctx, log, pool, seedPath)
}

func initAndSeed(ctx context.Context, log *slog.Logger, conn db.DB, seedPath string) error {
	log.Info("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	log.Info("schema ready")

	log.Info("seeding database", "path", seedPath)
	n, err := repositories.SeedFromCSV(ctx, conn, seedPath)
	if err != nil {
		return err
	}
	log.Info("seeding complete", "flights", n)

	return nil
}
