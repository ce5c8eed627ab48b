package ports

import "context"

// One raw data row of a flight catalog.
// Line is the row's 1-based position in its source, used in error reports.
type Row struct {
	Line   int
	Fields []string
}

// Port: a boundary for reading a flight catalog as a header row followed by data rows.
// Tokenization is the source's concern; typing and validation are not.
type FlightRowSource interface {
	// Return the header row and all data rows in source order.
	ReadRows(ctx context.Context) (header []string, rows []Row, err error)
}
