package repositories

import (
	"context"
	"errors"
	"flight-route-search/internal/domain"
	"flight-route-search/internal/platform/db"
	"flight-route-search/internal/ports"
	"fmt"
	"slices"
)

// PostgreSQL-backed implementation of the FlightRowSource port.
// Values are rendered as text so they pass through the same record parser as a CSV catalog.
type PostgresFlightSource struct{ DB db.DB }

func NewPostgresFlightSource(conn db.DB) *PostgresFlightSource {
	return &PostgresFlightSource{DB: conn}
}

func (s *PostgresFlightSource) ReadRows(ctx context.Context) ([]string, []ports.Row, error) {
	if s.DB == nil {
		return nil, nil, errors.New("postgres flight source: DB is nil")
	}

	query := `
	SELECT
		flight_no,
		origin,
		destination,
		to_char(departure, 'YYYY-MM-DD"T"HH24:MI:SS'),
		to_char(arrival, 'YYYY-MM-DD"T"HH24:MI:SS'),
		base_price::text,
		bag_price::text,
		bags_allowed::text
	FROM flights
	ORDER BY id;
	`
	rows, err := s.DB.Query(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("read flights: query flights table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.Row, 0, 256)
	for rows.Next() {
		fields := make([]string, len(domain.FlightFields))
		dest := make([]any, len(fields))
		for i := range fields {
			dest[i] = &fields[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, fmt.Errorf("read flights: scan row: %w", err)
		}
		// Line numbers continue after a virtual header row, as in a CSV export.
		out = append(out, ports.Row{Line: len(out) + 2, Fields: fields})
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("read flights: row iteration: %w", err)
	}

	return slices.Clone(domain.FlightFields), out, nil
}
