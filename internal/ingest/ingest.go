// Package ingest turns a flight catalog into validated flight records.
package ingest

import (
	"context"
	"errors"
	"flight-route-search/internal/domain"
	"flight-route-search/internal/ports"
	"fmt"
)

// Load reads every row of src and parses it into a Flight.
//
// Ingestion is fail-fast: the first malformed row aborts the whole load and no
// partial result is returned.
func Load(ctx context.Context, src ports.FlightRowSource) ([]domain.Flight, error) {
	if src == nil {
		return nil, errors.New("ingest: source is nil")
	}

	names, rows, err := src.ReadRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("ingest: read rows: %w", err)
	}

	header, err := domain.NewHeader(names)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	flights := make([]domain.Flight, 0, len(rows))
	for _, row := range rows {
		f, err := header.ParseFlight(row.Line, row.Fields)
		if err != nil {
			return nil, fmt.Errorf("ingest: %w", err)
		}
		flights = append(flights, f)
	}

	return flights, nil
}
