package services

import (
	"flight-route-search/internal/domain"
	"time"
)

// DateKey is a calendar day encoded as YYYYMMDD.
type DateKey int

// Return the departure-date key of t, truncated to its calendar day.
func DateKeyOf(t time.Time) DateKey {
	y, m, d := t.Date()
	return DateKey(y*10000 + int(m)*100 + d)
}

// route holds the eligible legs of one origin -> destination pair, partitioned by departure date.
type route struct {
	dates      []DateKey
	departures map[DateKey][]int
}

// airportRoutes keeps destinations in first-seen order so traversal is deterministic.
type airportRoutes struct {
	destinations []string
	routes       map[string]*route
}

// RouteGraph is a read-only adjacency structure origin -> destination -> date -> leg indices.
//
// Indices refer to the flight slice the graph was built from. Only flights that
// pass the static eligibility filter are indexed; every other flight is invisible
// to the search. Nothing mutates a RouteGraph after BuildRouteGraph returns, so
// it may be shared by concurrent traversals.
type RouteGraph struct {
	flights  []domain.Flight
	airports []string
	adj      map[string]*airportRoutes
	legs     int
}

// Build the route graph from all ingested flights.
//
// A flight is indexed only when it allows at least bags checked bags and, if
// minDeparture is set, departs strictly after it. Legs sharing origin,
// destination and date are all retained in ingestion order.
func BuildRouteGraph(flights []domain.Flight, bags int, minDeparture *time.Time) *RouteGraph {
	g := &RouteGraph{
		flights: flights,
		adj:     make(map[string]*airportRoutes),
	}

	for i, f := range flights {
		if f.BagsAllowed < bags {
			continue
		}
		if minDeparture != nil && !f.Departure.After(*minDeparture) {
			continue
		}
		g.addLeg(i, f)
	}

	return g
}

func (g *RouteGraph) addAirport(code string) *airportRoutes {
	ar, ok := g.adj[code]
	if !ok {
		ar = &airportRoutes{routes: make(map[string]*route)}
		g.adj[code] = ar
		g.airports = append(g.airports, code)
	}
	return ar
}

func (g *RouteGraph) addLeg(idx int, f domain.Flight) {
	from := g.addAirport(f.Origin)
	g.addAirport(f.Destination)

	r, ok := from.routes[f.Destination]
	if !ok {
		r = &route{departures: make(map[DateKey][]int)}
		from.routes[f.Destination] = r
		from.destinations = append(from.destinations, f.Destination)
	}

	key := DateKeyOf(f.Departure)
	if _, ok := r.departures[key]; !ok {
		r.dates = append(r.dates, key)
	}
	r.departures[key] = append(r.departures[key], idx)
	g.legs++
}

// Flight returns the record at idx.
func (g *RouteGraph) Flight(idx int) domain.Flight {
	return g.flights[idx]
}

// Airports lists every airport touched by an indexed leg, in first-seen order.
func (g *RouteGraph) Airports() []string {
	return g.airports
}

// Legs is the number of indexed flights.
func (g *RouteGraph) Legs() int {
	return g.legs
}

// Destinations lists airports with at least one indexed leg from origin.
// The returned slice must not be modified.
func (g *RouteGraph) Destinations(origin string) []string {
	ar, ok := g.adj[origin]
	if !ok {
		return nil
	}
	return ar.destinations
}

// Dates lists the departure dates with indexed legs from origin to destination, in first-seen order.
func (g *RouteGraph) Dates(origin, destination string) []DateKey {
	r := g.route(origin, destination)
	if r == nil {
		return nil
	}
	return r.dates
}

// Departures returns indices of legs from origin to destination departing on day.
// The returned slice must not be modified.
func (g *RouteGraph) Departures(origin, destination string, day DateKey) []int {
	r := g.route(origin, destination)
	if r == nil {
		return nil
	}
	return r.departures[day]
}

func (g *RouteGraph) route(origin, destination string) *route {
	ar, ok := g.adj[origin]
	if !ok {
		return nil
	}
	return ar.routes[destination]
}
