package services

import (
	"context"
	"flight-route-search/internal/domain"
	"time"

	"golang.org/x/sync/errgroup"
)

// Default layover bounds. Both are exclusive.
const (
	DefaultMinLayover = time.Hour
	DefaultMaxLayover = 6 * time.Hour
)

// LayoverWindow bounds the gap between a leg's arrival and the next leg's departure.
// A connection is valid only when Min < layover < Max.
type LayoverWindow struct {
	Min time.Duration
	Max time.Duration
}

func DefaultLayoverWindow() LayoverWindow {
	return LayoverWindow{Min: DefaultMinLayover, Max: DefaultMaxLayover}
}

func (w LayoverWindow) allows(layover time.Duration) bool {
	return layover > w.Min && layover < w.Max
}

// Traversal enumerates every itinerary from Origin to Target over Graph.
//
// An itinerary never visits an airport twice and every connection respects
// Window. When MinArrival is set, an itinerary is kept only if its last leg
// arrives strictly after it. Completed paths are handed to Assembler with
// IsReturn as the direction flag. No pruning by price happens here.
type Traversal struct {
	Graph      *RouteGraph
	Assembler  *ItineraryAssembler
	Origin     string
	Target     string
	MinArrival *time.Time
	IsReturn   bool
	Window     LayoverWindow
}

// Seeds returns every indexed leg departing Origin, in graph order.
// Legs that land back on Origin are skipped.
func (t *Traversal) Seeds() []int {
	var seeds []int
	for _, dest := range t.Graph.Destinations(t.Origin) {
		if dest == t.Origin {
			continue
		}
		for _, day := range t.Graph.Dates(t.Origin, dest) {
			seeds = append(seeds, t.Graph.Departures(t.Origin, dest, day)...)
		}
	}
	return seeds
}

// Run walks all seed branches with at most workers of them in flight and
// returns the itineraries in seed order, so the result does not depend on
// scheduling. The only possible error is cancellation of ctx.
func (t *Traversal) Run(ctx context.Context, workers int) ([]domain.Itinerary, error) {
	if workers < 1 {
		workers = 1
	}

	seeds := t.Seeds()
	perSeed := make([][]domain.Itinerary, len(seeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perSeed[i] = t.FromSeed(seed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []domain.Itinerary
	for _, its := range perSeed {
		out = append(out, its...)
	}
	return out, nil
}

// FromSeed enumerates the itineraries whose first leg is seed.
func (t *Traversal) FromSeed(seed int) []domain.Itinerary {
	s := &pathSearch{
		Traversal: t,
		visited:   map[string]struct{}{t.Origin: {}},
	}
	s.visit(seed)
	return s.found
}

// pathSearch is the mutable state of one depth-first branch.
// path and visited are pushed on entry to a leg and popped on return, so
// sibling branches always observe the state their parent left.
type pathSearch struct {
	*Traversal
	path    []int
	visited map[string]struct{}
	found   []domain.Itinerary
}

func (s *pathSearch) visit(idx int) {
	f := s.Graph.Flight(idx)
	at := f.Destination

	s.path = append(s.path, idx)
	s.visited[at] = struct{}{}
	defer func() {
		s.path = s.path[:len(s.path)-1]
		delete(s.visited, at)
	}()

	if at == s.Target {
		if s.MinArrival == nil || f.Arrival.After(*s.MinArrival) {
			s.found = append(s.found, s.Assembler.Assemble(s.path, s.IsReturn))
		}
		return
	}

	days := candidateDays(f.Arrival, s.Window.Max)

	for _, next := range s.Graph.Destinations(at) {
		if _, seen := s.visited[next]; seen {
			continue
		}
		for _, day := range days {
			s.connect(f.Arrival, s.Graph.Departures(at, next, day))
		}
	}
}

func (s *pathSearch) connect(arrival time.Time, candidates []int) {
	for _, idx := range candidates {
		if s.Window.allows(s.Graph.Flight(idx).Departure.Sub(arrival)) {
			s.visit(idx)
		}
	}
}

// candidateDays lists the calendar days from arrival's date up to the date of
// arrival+maxLayover. With a window under a day this is the arrival date, plus
// the next day when the arrival is within maxLayover of midnight.
func candidateDays(arrival time.Time, maxLayover time.Duration) []DateKey {
	last := DateKeyOf(arrival.Add(maxLayover))
	days := []DateKey{DateKeyOf(arrival)}
	for d := arrival.AddDate(0, 0, 1); days[len(days)-1] < last; d = d.AddDate(0, 0, 1) {
		days = append(days, DateKeyOf(d))
	}
	return days
}
