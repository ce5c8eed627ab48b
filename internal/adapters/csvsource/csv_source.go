package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"flight-route-search/internal/domain"
	"flight-route-search/internal/ports"
	"fmt"
	"io"
	"os"
)

// File-backed implementation of the FlightRowSource port.
// Blank lines are skipped; rows may carry a different field count than the
// header, which the record parser reports as a malformed row.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) ReadRows(ctx context.Context) ([]string, []ports.Row, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("csv source: open %q: %w", s.Path, err)
	}
	defer f.Close()

	header, rows, err := ReadRows(ctx, f)
	if err != nil {
		return nil, nil, fmt.Errorf("csv source: %q: %w", s.Path, err)
	}
	return header, rows, nil
}

// Read a header row and all data rows from r.
func ReadRows(ctx context.Context, r io.Reader) ([]string, []ports.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, errors.New("dataset has no header row")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	rows := make([]ports.Row, 0, 256)
	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, nil, &domain.RecordError{Kind: domain.ErrMalformedRow, Line: parseErr.Line, Err: parseErr.Err}
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read row: %w", err)
		}

		line, _ := cr.FieldPos(0)
		rows = append(rows, ports.Row{Line: line, Fields: record})
	}

	return header, rows, nil
}
