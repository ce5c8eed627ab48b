package services

import (
	"flight-route-search/internal/domain"
)

// ItineraryAssembler turns a completed search path into a priced, timed Itinerary.
type ItineraryAssembler struct {
	Graph       *RouteGraph
	Bags        int
	Origin      string
	Destination string
}

// Assemble an itinerary from a non-empty, chronologically ordered path of leg indices.
//
// The total price is the sum of base prices plus Bags times the sum of bag
// prices. BagsAllowed is the minimum over all legs. For a return path the
// query's origin and destination are swapped so the itinerary reflects the
// direction actually flown.
func (a *ItineraryAssembler) Assemble(path []int, isReturn bool) domain.Itinerary {
	flights := make([]domain.Flight, 0, len(path))
	var basePrice, bagPrice float64
	bagsAllowed := 0

	for i, idx := range path {
		f := a.Graph.Flight(idx)
		flights = append(flights, f)
		basePrice += f.BasePrice
		bagPrice += f.BagPrice
		if i == 0 || f.BagsAllowed < bagsAllowed {
			bagsAllowed = f.BagsAllowed
		}
	}

	origin, destination := a.Origin, a.Destination
	if isReturn {
		origin, destination = destination, origin
	}

	return domain.Itinerary{
		Flights:     flights,
		BagsAllowed: bagsAllowed,
		BagsCount:   a.Bags,
		Origin:      origin,
		Destination: destination,
		TotalPrice:  basePrice + float64(a.Bags)*bagPrice,
		TravelTime:  flights[len(flights)-1].Arrival.Sub(flights[0].Departure),
	}
}
