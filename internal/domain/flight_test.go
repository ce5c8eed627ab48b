package domain

import (
	"errors"
	"testing"
	"time"
)

var testHeader = []string{
	"flight_no", "origin", "destination", "departure", "arrival", "base_price", "bag_price", "bags_allowed",
}

func TestHeaderParseFlight(t *testing.T) {
	h, err := NewHeader(testHeader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row := []string{"ZH214", "WIW", "RFZ", "2021-09-01T23:20:00", "2021-09-02T03:50:00", "168.0", "12", "2\n"}
	f, err := h.ParseFlight(2, row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Flight{
		FlightNo:    "ZH214",
		Origin:      "WIW",
		Destination: "RFZ",
		Departure:   time.Date(2021, 9, 1, 23, 20, 0, 0, time.UTC),
		Arrival:     time.Date(2021, 9, 2, 3, 50, 0, 0, time.UTC),
		BasePrice:   168,
		BagPrice:    12,
		BagsAllowed: 2,
	}
	if f != want {
		t.Fatalf("flight = %+v, want %+v", f, want)
	}
}

func TestHeaderColumnsInAnyOrder(t *testing.T) {
	h, err := NewHeader([]string{
		"bags_allowed", "arrival", "seat_class", "origin", "destination", "flight_no", "bag_price", "departure", "base_price",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Width() != 9 {
		t.Fatalf("width = %d, want 9", h.Width())
	}

	f, err := h.ParseFlight(2, []string{
		"1", "2021-09-01T10:00:00", "economy", "KSC", "CDG", "AB1", "9.5", "2021-09-01T08:00:00", "100",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.FlightNo != "AB1" || f.Origin != "KSC" || f.Destination != "CDG" {
		t.Fatalf("unexpected identity fields: %+v", f)
	}
	if f.BagPrice != 9.5 || f.BasePrice != 100 || f.BagsAllowed != 1 {
		t.Fatalf("unexpected numeric fields: %+v", f)
	}
}

func TestNewHeaderMissingColumns(t *testing.T) {
	_, err := NewHeader([]string{"flight_no", "origin", "destination"})
	if !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("err = %v, want ErrMissingColumns", err)
	}
}

func TestHeaderParseFlightErrors(t *testing.T) {
	h, err := NewHeader(testHeader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	valid := []string{"AB1", "KSC", "CDG", "2021-09-01T08:00:00", "2021-09-01T10:00:00", "100", "10", "1"}
	with := func(i int, v string) []string {
		row := append([]string(nil), valid...)
		row[i] = v
		return row
	}

	tests := []struct {
		name string
		row  []string
		want error
	}{
		{"too few fields", valid[:7], ErrMalformedRow},
		{"too many fields", append(append([]string(nil), valid...), "x"), ErrMalformedRow},
		{"lowercase origin", with(1, "ksc"), ErrInvalidAirportCode},
		{"long destination", with(2, "CDGX"), ErrInvalidAirportCode},
		{"digit in code", with(2, "CD1"), ErrInvalidAirportCode},
		{"leading space in origin", with(1, " KSC"), ErrInvalidAirportCode},
		{"trailing space in destination", with(2, "CDG "), ErrInvalidAirportCode},
		{"padded departure", with(3, " 2021-09-01T08:00:00"), ErrInvalidTimestamp},
		{"date only", with(3, "2021-09-01"), ErrInvalidTimestamp},
		{"bad arrival", with(4, "2021-09-01 10:00:00"), ErrInvalidTimestamp},
		{"bad base price", with(5, "ten"), ErrInvalidNumericField},
		{"negative bag price", with(6, "-1"), ErrInvalidNumericField},
		{"nan price", with(5, "NaN"), ErrInvalidNumericField},
		{"fractional bags", with(7, "1.5"), ErrInvalidNumericField},
		{"negative bags", with(7, "-2"), ErrInvalidNumericField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.ParseFlight(5, tt.row)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}

			var recErr *RecordError
			if !errors.As(err, &recErr) {
				t.Fatalf("err = %T, want *RecordError", err)
			}
			if recErr.Line != 5 {
				t.Errorf("line = %d, want 5", recErr.Line)
			}
		})
	}
}

func TestValidAirportCode(t *testing.T) {
	for code, want := range map[string]bool{
		"KSC": true,
		"CDG": true,
		"Ksc": false,
		"KS":  false,
		"":    false,
		"K C": false,
		"ÄBC": false,
	} {
		if got := ValidAirportCode(code); got != want {
			t.Errorf("ValidAirportCode(%q) = %v, want %v", code, got, want)
		}
	}
}
