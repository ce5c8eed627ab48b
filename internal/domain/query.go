package domain

import (
	"fmt"
	"time"
)

// Customer constraints for one search.
//
// Zero values are the documented defaults: no bags, no departure or arrival
// bounds, outward search only. Bounds are exclusive: a flight qualifies only
// when it departs (or arrives) strictly after the given instant.
type Query struct {
	// Airport the trip starts from.
	Origin string
	// Airport the trip ends at.
	Destination string
	// Number of checked bags; every leg must allow at least this many.
	Bags int
	// Earliest departure from any airport. Nil means unbounded.
	Departure *time.Time
	// Earliest acceptable arrival at Destination. Nil means unbounded.
	Arrival *time.Time
	// Earliest acceptable arrival back at Origin. Only valid with Return.
	ReturnArrival *time.Time
	// Also search Destination -> Origin after the outward search.
	Return bool
}

// Check the preconditions the search relies on.
func (q Query) Validate() error {
	if !ValidAirportCode(q.Origin) {
		return fmt.Errorf("%w: origin %q is not a 3-letter uppercase airport code", ErrInvalidQuery, q.Origin)
	}
	if !ValidAirportCode(q.Destination) {
		return fmt.Errorf("%w: destination %q is not a 3-letter uppercase airport code", ErrInvalidQuery, q.Destination)
	}
	if q.Origin == q.Destination {
		return fmt.Errorf("%w: origin and destination are both %q", ErrInvalidQuery, q.Origin)
	}
	if q.Bags < 0 {
		return fmt.Errorf("%w: bags must be non-negative, got %d", ErrInvalidQuery, q.Bags)
	}
	if q.ReturnArrival != nil && !q.Return {
		return fmt.Errorf("%w: return arrival given but no return search requested", ErrInvalidQuery)
	}
	if q.Departure != nil && q.Arrival != nil && q.Arrival.Before(*q.Departure) {
		return fmt.Errorf("%w: arrival %s is before departure %s", ErrInvalidQuery,
			FormatTimestamp(*q.Arrival), FormatTimestamp(*q.Departure))
	}
	if q.Departure != nil && q.ReturnArrival != nil && q.ReturnArrival.Before(*q.Departure) {
		return fmt.Errorf("%w: return arrival %s is before departure %s", ErrInvalidQuery,
			FormatTimestamp(*q.ReturnArrival), FormatTimestamp(*q.Departure))
	}
	return nil
}
