package main

import (
	"context"
	"errors"
	"flight-route-search/internal/adapters/csvsource"
	"flight-route-search/internal/adapters/repositories"
	"flight-route-search/internal/api"
	"flight-route-search/internal/config"
	"flight-route-search/internal/domain"
	"flight-route-search/internal/ingest"
	"flight-route-search/internal/platform/db"
	"flight-route-search/internal/platform/logger"
	"flight-route-search/internal/platform/metrics"
	"flight-route-search/internal/platform/obs"
	"flight-route-search/internal/ports"
	"flight-route-search/internal/services"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func run(cmd *cobra.Command, opts options, args []string, stdout io.Writer) (err error) {
	envErr := godotenv.Load()

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	log, closer := logger.New(logger.Config{
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

	ctx := obs.WithRunID(cmd.Context(), uuid.NewString())
	if envErr != nil {
		log.DebugContext(ctx, "no .env file found, using environment variables")
	}

	dataset, origin, destination, err := resolveArgs(args, cfg.Database.URL)
	if err != nil {
		return err
	}
	q, err := buildQuery(opts, origin, destination)
	if err != nil {
		return err
	}

	format := cfg.Search.OutputFormat
	if opts.format != "" {
		if format, err = api.ParseFormat(opts.format); err != nil {
			return &usageError{err: err}
		}
	}

	searchOpts := services.SearchOptions{
		Workers: cfg.Search.Workers,
		Window:  services.LayoverWindow{Min: cfg.Search.MinLayover, Max: cfg.Search.MaxLayover},
	}
	if opts.workers > 0 {
		searchOpts.Workers = opts.workers
	}

	var rec *metrics.Recorder
	metricsPath := cfg.Metrics.TextfilePath
	if opts.metricsFile != "" {
		metricsPath = opts.metricsFile
	}
	if cfg.Metrics.Enabled || opts.metricsFile != "" {
		rec = metrics.NewRecorder(cfg.Metrics.Namespace)
		defer func() {
			rec.ObserveRun(err)
			if metricsPath == "" {
				return
			}
			if werr := rec.WriteTextfile(metricsPath); werr != nil {
				log.WarnContext(ctx, "write metrics failed", "path", metricsPath, "err", werr)
			}
		}()
	}

	src, release, err := openSource(ctx, dataset, cfg.Database)
	if err != nil {
		return err
	}
	defer release()

	log.InfoContext(ctx, "search started",
		"run_id", ctx.Value(obs.RunIDKey),
		"dataset", redactDataset(dataset),
		"origin", q.Origin,
		"destination", q.Destination,
		"bags", q.Bags,
		"return", q.Return,
		"workers", searchOpts.Workers,
	)

	flights, err := loadFlights(ctx, log, src, rec)
	if err != nil {
		return err
	}

	res, err := search(ctx, log, flights, q, searchOpts, rec)
	if err != nil {
		return err
	}

	out := api.NewCountingWriter(stdout)
	if err := api.Encode(out, res.Itineraries, format, cfg.Search.Indent); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	log.InfoContext(ctx, "search finished",
		"run_id", ctx.Value(obs.RunIDKey),
		"itineraries", len(res.Itineraries),
		"outward", res.Outward,
		"return", res.Return,
		"bytes", out.Bytes(),
	)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	var loaderOpts []config.LoaderOption
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, usageErrorf("config file %q could not be found", path)
		}
		loaderOpts = append(loaderOpts, config.WithConfigFile(path))
	}
	return config.NewLoader(loaderOpts...).Load()
}

// resolveArgs splits the positional arguments. With only origin and destination
// given, the configured database URL is the dataset.
func resolveArgs(args []string, databaseURL string) (dataset, origin, destination string, err error) {
	if len(args) == 3 {
		return args[0], args[1], args[2], nil
	}
	if len(args) != 2 || databaseURL == "" {
		return "", "", "", usageErrorf("expected 3 arguments (dataset origin destination), got %d", len(args))
	}
	if !isDatabaseURL(databaseURL) {
		return "", "", "", usageErrorf("database.url %q is not a postgres:// URL", redactDataset(databaseURL))
	}
	return databaseURL, args[0], args[1], nil
}

// buildQuery converts and validates the positional airports and the time flags.
func buildQuery(opts options, origin, destination string) (domain.Query, error) {
	q := domain.Query{
		Origin:      origin,
		Destination: destination,
		Bags:        opts.bags,
		Return:      opts.returnTrip,
	}

	var err error
	if q.Departure, err = parseFlagTime("departure", opts.departure); err != nil {
		return q, err
	}
	if q.Arrival, err = parseFlagTime("arrival", opts.arrival); err != nil {
		return q, err
	}
	if q.ReturnArrival, err = parseFlagTime("returnarrival", opts.returnArrival); err != nil {
		return q, err
	}

	if err := q.Validate(); err != nil {
		return q, &usageError{err: err}
	}
	return q, nil
}

func parseFlagTime(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := domain.ParseTimestamp(value)
	if err != nil {
		return nil, usageErrorf("--%s: invalid time %q, expected YYYY-MM-DDTHH:MM:SS", name, value)
	}
	return &t, nil
}

func isDatabaseURL(dataset string) bool {
	return strings.HasPrefix(dataset, "postgres://") || strings.HasPrefix(dataset, "postgresql://")
}

// redactDataset keeps credentials in a database URL out of the logs.
func redactDataset(dataset string) string {
	if !isDatabaseURL(dataset) {
		return dataset
	}
	scheme, rest, _ := strings.Cut(dataset, "://")
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		rest = rest[at+1:]
	}
	return scheme + "://" + rest
}

// openSource picks the row source for dataset. The returned func releases it.
func openSource(ctx context.Context, dataset string, dbCfg config.DatabaseConfig) (ports.FlightRowSource, func(), error) {
	if isDatabaseURL(dataset) {
		pool, err := db.Open(ctx, dataset, db.Options{
			MaxConns:        dbCfg.MaxConns,
			ConnMaxLifetime: dbCfg.ConnMaxLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewPostgresFlightSource(pool), pool.Close, nil
	}

	info, err := os.Stat(dataset)
	if err != nil || info.IsDir() {
		return nil, nil, usageErrorf("dataset %q could not be found", dataset)
	}
	return csvsource.NewFileSource(dataset), func() {}, nil
}

func loadFlights(ctx context.Context, log *slog.Logger, src ports.FlightRowSource, rec *metrics.Recorder) (flights []domain.Flight, err error) {
	done := obs.Time(ctx, log, "ingest")
	defer func() { done(&err) }()

	start := time.Now()
	flights, err = ingest.Load(ctx, src)
	if err != nil {
		var rerr *domain.RecordError
		if errors.As(err, &rerr) {
			log.ErrorContext(ctx, "rejected flight record",
				"kind", rerr.Kind, "line", rerr.Line, "column", rerr.Column, "value", rerr.Value)
		}
		return nil, err
	}
	if rec != nil {
		rec.ObserveIngest(len(flights), time.Since(start))
	}
	return flights, nil
}

func search(
	ctx context.Context,
	log *slog.Logger,
	flights []domain.Flight,
	q domain.Query,
	opts services.SearchOptions,
	rec *metrics.Recorder,
) (res *services.SearchResult, err error) {
	done := obs.Time(ctx, log, "search")
	defer func() { done(&err) }()

	start := time.Now()
	res, err = services.SearchItineraries(ctx, flights, q, opts)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		rec.ObserveGraph(res.IndexedLegs, res.Airports)
		rec.ObserveSearch(res.Outward, res.Return, time.Since(start))
	}
	return res, nil
}
