package repositories

import (
	"context"
	"errors"
	"flight-route-search/internal/adapters/csvsource"
	"flight-route-search/internal/domain"
	"flight-route-search/internal/ingest"
	"flight-route-search/internal/platform/db"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Initialize the PostgreSQL flight catalog schema.
func InitSchema(ctx context.Context, conn db.DB) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	createFlightsQuery := `
	CREATE TABLE IF NOT EXISTS flights (
		id BIGSERIAL PRIMARY KEY,
		flight_no TEXT NOT NULL,
		origin CHAR(3) NOT NULL,
		destination CHAR(3) NOT NULL,
		departure TIMESTAMP NOT NULL,
		arrival TIMESTAMP NOT NULL,
		base_price DOUBLE PRECISION NOT NULL CHECK (base_price >= 0),
		bag_price DOUBLE PRECISION NOT NULL CHECK (bag_price >= 0),
		bags_allowed INTEGER NOT NULL CHECK (bags_allowed >= 0)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_flights_origin_destination_departure
	ON flights(origin, destination, departure);
	`

	statements := []string{
		createFlightsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the catalog with flights, preserving their order.
// Returns the number of rows written.
func SeedFlights(ctx context.Context, conn db.DB, flights []domain.Flight) (int64, error) {
	if conn == nil {
		return 0, errors.New("seed flights: DB is nil")
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed flights: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE flights RESTART IDENTITY"); err != nil {
		return 0, fmt.Errorf("seed flights: truncate: %w", err)
	}

	rows := make([][]any, 0, len(flights))
	for _, f := range flights {
		rows = append(rows, []any{
			f.FlightNo,
			f.Origin,
			f.Destination,
			f.Departure,
			f.Arrival,
			f.BasePrice,
			f.BagPrice,
			f.BagsAllowed,
		})
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"flights"}, domain.FlightFields, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("seed flights: copy %d rows: %w", len(rows), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("seed flights: commit tx: %w", err)
	}

	return n, nil
}

// Load the CSV catalog at seedPath and replace the stored flights with it.
// A malformed catalog leaves the table untouched.
func SeedFromCSV(ctx context.Context, conn db.DB, seedPath string) (int64, error) {
	flights, err := ingest.Load(ctx, csvsource.NewFileSource(seedPath))
	if err != nil {
		return 0, fmt.Errorf("seed from csv %q: %w", seedPath, err)
	}
	return SeedFlights(ctx, conn, flights)
}
