package services

import (
	"flight-route-search/internal/domain"
	"slices"
	"testing"
	"time"
)

func TestDateKeyOf(t *testing.T) {
	got := DateKeyOf(time.Date(2021, 9, 1, 23, 59, 59, 0, time.UTC))
	if got != 20210901 {
		t.Fatalf("DateKeyOf = %d, want 20210901", got)
	}
}

func TestBuildRouteGraphPartitionsByDate(t *testing.T) {
	flights := []domain.Flight{
		leg(t, "A1", "KSC", "CDG", "2021-09-01T08:00:00", "2021-09-01T10:00:00", 100, 10, 1),
		leg(t, "A2", "KSC", "CDG", "2021-09-01T18:00:00", "2021-09-01T20:00:00", 100, 10, 1),
		leg(t, "A3", "KSC", "CDG", "2021-09-02T08:00:00", "2021-09-02T10:00:00", 100, 10, 1),
		leg(t, "B1", "KSC", "XYZ", "2021-09-01T08:00:00", "2021-09-01T09:00:00", 50, 5, 1),
		leg(t, "C1", "XYZ", "CDG", "2021-09-01T12:00:00", "2021-09-01T14:00:00", 50, 5, 1),
	}

	g := BuildRouteGraph(flights, 0, nil)

	if g.Legs() != 5 {
		t.Fatalf("legs = %d, want 5", g.Legs())
	}
	if got := g.Departures("KSC", "CDG", 20210901); !slices.Equal(got, []int{0, 1}) {
		t.Fatalf("KSC->CDG 2021-09-01 = %v, want [0 1]", got)
	}
	if got := g.Departures("KSC", "CDG", 20210902); !slices.Equal(got, []int{2}) {
		t.Fatalf("KSC->CDG 2021-09-02 = %v, want [2]", got)
	}
	if got := g.Destinations("KSC"); !slices.Equal(got, []string{"CDG", "XYZ"}) {
		t.Fatalf("destinations = %v, want [CDG XYZ]", got)
	}
	if got := g.Airports(); !slices.Equal(got, []string{"KSC", "CDG", "XYZ"}) {
		t.Fatalf("airports = %v, want [KSC CDG XYZ]", got)
	}
	if got := g.Destinations("CDG"); len(got) != 0 {
		t.Fatalf("CDG should have no outgoing routes, got %v", got)
	}
	if got := g.Departures("NOP", "CDG", 20210901); got != nil {
		t.Fatalf("unknown origin should have no departures, got %v", got)
	}
}

func TestBuildRouteGraphKeepsDuplicates(t *testing.T) {
	a := leg(t, "A1", "KSC", "CDG", "2021-09-01T08:00:00", "2021-09-01T10:00:00", 100, 10, 1)
	g := BuildRouteGraph([]domain.Flight{a, a}, 0, nil)

	if got := g.Departures("KSC", "CDG", 20210901); !slices.Equal(got, []int{0, 1}) {
		t.Fatalf("departures = %v, want both duplicates", got)
	}
}

func TestBuildRouteGraphStaticFilter(t *testing.T) {
	flights := []domain.Flight{
		leg(t, "A1", "KSC", "CDG", "2021-09-01T08:00:00", "2021-09-01T10:00:00", 100, 10, 1),
		leg(t, "A2", "KSC", "CDG", "2021-09-01T09:00:00", "2021-09-01T11:00:00", 100, 10, 2),
		leg(t, "A3", "KSC", "CDG", "2021-09-01T12:00:00", "2021-09-01T14:00:00", 100, 10, 3),
	}

	g := BuildRouteGraph(flights, 2, tsp(t, "2021-09-01T09:00:00"))

	// A1 lacks bag capacity, A2 departs exactly at the bound (not after it).
	if got := g.Departures("KSC", "CDG", 20210901); !slices.Equal(got, []int{2}) {
		t.Fatalf("departures = %v, want [2]", got)
	}
	if g.Legs() != 1 {
		t.Fatalf("legs = %d, want 1", g.Legs())
	}
}
