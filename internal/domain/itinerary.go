package domain

import (
	"fmt"
	"time"
)

// Column names of an itinerary, in output order.
const (
	FieldFlights     = "flights"
	FieldBagsAllowed = "bags_allowed"
	FieldBagsCount   = "bags_count"
	FieldDestination = "destination"
	FieldOrigin      = "origin"
	FieldTotalPrice  = "total_price"
	FieldTravelTime  = "travel_time"
)

// ItineraryFields is the fixed field order of an itinerary in presentation output.
var ItineraryFields = []string{
	FieldFlights,
	FieldBagsAllowed,
	FieldBagsCount,
	FieldDestination,
	FieldOrigin,
	FieldTotalPrice,
	FieldTravelTime,
}

// Represents one or more legs flown in sequence between a query's two airports.
// An Itinerary is the output of the path search; it is immutable once assembled.
// Origin and Destination reflect the direction actually flown.
type Itinerary struct {
	Flights     []Flight
	BagsAllowed int
	BagsCount   int
	Origin      string
	Destination string
	TotalPrice  float64
	TravelTime  time.Duration
}

// Render d as hours:minutes:seconds with an unbounded hour count.
func FormatTravelTime(d time.Duration) string {
	sign := ""
	total := int64(d / time.Second)
	if total < 0 {
		sign = "-"
		total = -total
	}
	return fmt.Sprintf("%s%d:%02d:%02d", sign, total/3600, total/60%60, total%60)
}
