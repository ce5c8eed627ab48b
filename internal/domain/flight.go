package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the second-resolution, timezone-naive format used for
// departure and arrival fields. Parsed values are treated as UTC.
const TimestampLayout = "2006-01-02T15:04:05"

// Column names of a flight catalog, in output order.
const (
	ColFlightNo    = "flight_no"
	ColOrigin      = "origin"
	ColDestination = "destination"
	ColDeparture   = "departure"
	ColArrival     = "arrival"
	ColBasePrice   = "base_price"
	ColBagPrice    = "bag_price"
	ColBagsAllowed = "bags_allowed"
)

// FlightFields is the fixed field order of a flight leg in presentation output.
// Every name is also a required column of the input header.
var FlightFields = []string{
	ColFlightNo,
	ColOrigin,
	ColDestination,
	ColDeparture,
	ColArrival,
	ColBasePrice,
	ColBagPrice,
	ColBagsAllowed,
}

// Represents one scheduled flight leg. Flights are created once during ingestion
// and never mutated afterwards; the search refers to them by index.
type Flight struct {
	FlightNo    string
	Origin      string
	Destination string
	Departure   time.Time
	Arrival     time.Time
	BasePrice   float64
	BagPrice    float64
	BagsAllowed int
}

// Header maps column names to positions as discovered from the header row.
// Columns may appear in any order; unknown columns are ignored.
type Header struct {
	index map[string]int
	width int
}

// Build a Header from the header row, failing when a required column is absent.
func NewHeader(names []string) (Header, error) {
	index := make(map[string]int, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range FlightFields {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return Header{}, &RecordError{
			Kind: ErrMissingColumns,
			Line: 1,
			Err:  fmt.Errorf("header lacks %s", strings.Join(missing, ", ")),
		}
	}

	return Header{index: index, width: len(names)}, nil
}

// Width is the number of fields every data row must carry.
func (h Header) Width() int { return h.width }

// Parse one data row into a Flight.
func (h Header) ParseFlight(line int, fields []string) (Flight, error) {
	if len(fields) != h.width {
		return Flight{}, &RecordError{
			Kind: ErrMalformedRow,
			Line: line,
			Err:  fmt.Errorf("got %d fields, header has %d", len(fields), h.width),
		}
	}

	p := rowParser{header: h, line: line, fields: fields}
	f := Flight{
		FlightNo:    p.text(ColFlightNo),
		Origin:      p.airport(ColOrigin),
		Destination: p.airport(ColDestination),
		Departure:   p.timestamp(ColDeparture),
		Arrival:     p.timestamp(ColArrival),
		BasePrice:   p.price(ColBasePrice),
		BagPrice:    p.price(ColBagPrice),
		BagsAllowed: p.count(ColBagsAllowed),
	}
	if p.err != nil {
		return Flight{}, p.err
	}
	return f, nil
}

// rowParser keeps the first failure and turns later lookups into no-ops.
type rowParser struct {
	header Header
	line   int
	fields []string
	err    error
}

// raw returns the field exactly as read.
func (p *rowParser) raw(col string) string {
	return p.fields[p.header.index[col]]
}

func (p *rowParser) text(col string) string {
	return strings.TrimSpace(p.raw(col))
}

func (p *rowParser) fail(kind error, col, value string, cause error) {
	if p.err == nil {
		p.err = &RecordError{Kind: kind, Line: p.line, Column: col, Value: value, Err: cause}
	}
}

// Airport codes and timestamps are validated untrimmed; " KSC" is not a code.
func (p *rowParser) airport(col string) string {
	v := p.raw(col)
	if p.err == nil && !ValidAirportCode(v) {
		p.fail(ErrInvalidAirportCode, col, v, nil)
	}
	return v
}

func (p *rowParser) timestamp(col string) time.Time {
	v := p.raw(col)
	if p.err != nil {
		return time.Time{}
	}
	t, err := ParseTimestamp(v)
	if err != nil {
		p.fail(ErrInvalidTimestamp, col, v, nil)
	}
	return t
}

func (p *rowParser) price(col string) float64 {
	v := p.text(col)
	if p.err != nil {
		return 0
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(ErrInvalidNumericField, col, v, err)
		return 0
	}
	if n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		p.fail(ErrInvalidNumericField, col, v, errors.New("must be a non-negative finite number"))
		return 0
	}
	return n
}

func (p *rowParser) count(col string) int {
	v := p.text(col)
	if p.err != nil {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(ErrInvalidNumericField, col, v, err)
		return 0
	}
	if n < 0 {
		p.fail(ErrInvalidNumericField, col, v, errors.New("must be non-negative"))
		return 0
	}
	return n
}

// Report whether code is exactly three uppercase ASCII letters.
func ValidAirportCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// Parse a YYYY-MM-DDTHH:MM:SS timestamp as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: want YYYY-MM-DDTHH:MM:SS: %w", s, err)
	}
	return t, nil
}

// Render t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
