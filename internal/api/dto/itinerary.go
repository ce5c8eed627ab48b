package dto

import (
	"flight-route-search/internal/domain"
)

// Flight renders one leg in domain.FlightFields order.
func Flight(f domain.Flight) Record {
	rec := make(Record, 0, len(domain.FlightFields))
	for _, key := range domain.FlightFields {
		var v any
		switch key {
		case domain.ColFlightNo:
			v = f.FlightNo
		case domain.ColOrigin:
			v = f.Origin
		case domain.ColDestination:
			v = f.Destination
		case domain.ColDeparture:
			v = domain.FormatTimestamp(f.Departure)
		case domain.ColArrival:
			v = domain.FormatTimestamp(f.Arrival)
		case domain.ColBasePrice:
			v = f.BasePrice
		case domain.ColBagPrice:
			v = f.BagPrice
		case domain.ColBagsAllowed:
			v = f.BagsAllowed
		}
		rec = append(rec, Field{Key: key, Value: v})
	}
	return rec
}

// Itinerary renders an itinerary in domain.ItineraryFields order.
func Itinerary(it domain.Itinerary) Record {
	rec := make(Record, 0, len(domain.ItineraryFields))
	for _, key := range domain.ItineraryFields {
		var v any
		switch key {
		case domain.FieldFlights:
			flights := make([]Record, 0, len(it.Flights))
			for _, f := range it.Flights {
				flights = append(flights, Flight(f))
			}
			v = flights
		case domain.FieldBagsAllowed:
			v = it.BagsAllowed
		case domain.FieldBagsCount:
			v = it.BagsCount
		case domain.FieldDestination:
			v = it.Destination
		case domain.FieldOrigin:
			v = it.Origin
		case domain.FieldTotalPrice:
			v = it.TotalPrice
		case domain.FieldTravelTime:
			v = domain.FormatTravelTime(it.TravelTime)
		}
		rec = append(rec, Field{Key: key, Value: v})
	}
	return rec
}

func Itineraries(its []domain.Itinerary) []Record {
	out := make([]Record, 0, len(its))
	for _, it := range its {
		out = append(out, Itinerary(it))
	}
	return out
}
