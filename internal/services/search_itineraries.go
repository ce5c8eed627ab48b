package services

import (
	"cmp"
	"context"
	"flight-route-search/internal/domain"
	"fmt"
	"slices"
)

type SearchOptions struct {
	// Maximum number of seed branches searched concurrently. Values below 1 mean 1.
	Workers int
	// Zero value means DefaultLayoverWindow.
	Window LayoverWindow
}

func DefaultSearchOptions() SearchOptions {
	return SearchOptions{Workers: 1, Window: DefaultLayoverWindow()}
}

// Outcome of one search, with the counters callers report.
type SearchResult struct {
	Itineraries []domain.Itinerary
	Outward     int
	Return      int
	IndexedLegs int
	Airports    int
}

// Find all itineraries satisfying q, sorted ascending by total price.
//
// The graph is built once from flights with the query's static filters. The
// outward search (Origin -> Destination) always runs; when q.Return is set a
// second, independent search runs from Destination back to Origin. Results of
// both directions are merged and stable-sorted, so equal prices keep the order
// the search produced them in. An empty result is not an error.
func SearchItineraries(
	ctx context.Context,
	flights []domain.Flight,
	q domain.Query,
	opts SearchOptions,
) (*SearchResult, error) {
	if opts.Window == (LayoverWindow{}) {
		opts.Window = DefaultLayoverWindow()
	}

	graph := BuildRouteGraph(flights, q.Bags, q.Departure)
	asm := &ItineraryAssembler{
		Graph:       graph,
		Bags:        q.Bags,
		Origin:      q.Origin,
		Destination: q.Destination,
	}

	outward := &Traversal{
		Graph:      graph,
		Assembler:  asm,
		Origin:     q.Origin,
		Target:     q.Destination,
		MinArrival: q.Arrival,
		Window:     opts.Window,
	}
	itineraries, err := outward.Run(ctx, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("search itineraries: outward %s -> %s: %w", q.Origin, q.Destination, err)
	}

	res := &SearchResult{
		Outward:     len(itineraries),
		IndexedLegs: graph.Legs(),
		Airports:    len(graph.Airports()),
	}

	if q.Return {
		back := &Traversal{
			Graph:      graph,
			Assembler:  asm,
			Origin:     q.Destination,
			Target:     q.Origin,
			MinArrival: q.ReturnArrival,
			IsReturn:   true,
			Window:     opts.Window,
		}
		returns, err := back.Run(ctx, opts.Workers)
		if err != nil {
			return nil, fmt.Errorf("search itineraries: return %s -> %s: %w", q.Destination, q.Origin, err)
		}
		res.Return = len(returns)
		itineraries = append(itineraries, returns...)
	}

	slices.SortStableFunc(itineraries, func(a, b domain.Itinerary) int {
		return cmp.Compare(a.TotalPrice, b.TotalPrice)
	})
	if itineraries == nil {
		itineraries = []domain.Itinerary{}
	}
	res.Itineraries = itineraries

	return res, nil
}
