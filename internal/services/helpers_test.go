package services

import (
	"flight-route-search/internal/domain"
	"testing"
	"time"
)

func ts(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := domain.ParseTimestamp(s)
	if err != nil {
		t.Fatalf("bad timestamp %q: %v", s, err)
	}
	return v
}

func tsp(t *testing.T, s string) *time.Time {
	v := ts(t, s)
	return &v
}

func leg(t *testing.T, no, from, to, dep, arr string, base, bag float64, bags int) domain.Flight {
	return domain.Flight{
		FlightNo:    no,
		Origin:      from,
		Destination: to,
		Departure:   ts(t, dep),
		Arrival:     ts(t, arr),
		BasePrice:   base,
		BagPrice:    bag,
		BagsAllowed: bags,
	}
}

func flightNos(it domain.Itinerary) []string {
	out := make([]string, 0, len(it.Flights))
	for _, f := range it.Flights {
		out = append(out, f.FlightNo)
	}
	return out
}
